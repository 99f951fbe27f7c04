package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ajitpratap0/patternkit/internal/flyweight"
	"github.com/ajitpratap0/patternkit/internal/menu"
	"github.com/ajitpratap0/patternkit/internal/order"
	"github.com/ajitpratap0/patternkit/internal/upi"
)

func demoDecorator(env demoEnv) error {
	items := []menu.Item{
		menu.Burger{},
		menu.WithCheese(menu.Burger{}),
		menu.WithPaneer(menu.WithCheese(menu.Pizza{})),
	}
	for _, it := range items {
		fmt.Fprintf(env.out, "%s: %d\n", strings.Join(it.Description(), " + "), it.Cost())
	}
	return nil
}

func demoFacade(env demoEnv) error {
	inv := order.NewStockInventory(map[string]int{"laptop": 3, "phone": 1}, env.logger)
	f := order.NewFacade(
		inv,
		order.LoggingPayments{Logger: env.logger},
		order.LoggingShipping{Logger: env.logger},
		order.LoggingNotifier{Logger: env.logger},
		env.logger,
	)

	r, err := f.Process(env.ctx, order.Order{ProductID: "phone", Amount: 499, Address: "12 Main St"})
	if err != nil {
		return err
	}
	fmt.Fprintf(env.out, "order %s: %s shipped to %s\n", r.OrderID, r.ProductID, r.Address)

	_, err = f.Process(env.ctx, order.Order{ProductID: "phone", Amount: 499, Address: "12 Main St"})
	if !errors.Is(err, order.ErrOutOfStock) {
		return fmt.Errorf("expected out of stock, got %v", err)
	}
	fmt.Fprintf(env.out, "second phone: %v\n", err)

	batch := []order.Order{
		{ProductID: "laptop", Amount: 1200, Address: "1 Elm St"},
		{ProductID: "laptop", Amount: 1200, Address: "2 Oak Ave"},
		{ProductID: "laptop", Amount: 1200, Address: "3 Pine Rd"},
	}
	receipts, err := f.ProcessBatch(env.ctx, batch, env.batchLimit)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.out, "batch: %d laptops processed, %d left in stock\n", len(receipts), inv.Remaining("laptop"))
	return nil
}

func demoFlyweight(env demoEnv) error {
	f := flyweight.NewFactory()
	for i, key := range []string{"1", "2", "1", "3", "2"} {
		fmt.Fprintln(env.out, f.Get(key).Operation(i))
	}
	fmt.Fprintf(env.out, "%d uses served by %d flyweights\n", 5, f.Count())
	return nil
}

func demoAdapter(env demoEnv) error {
	hdfc := upi.NewHDFCBank(10_000)
	yes := upi.NewYesBank(5_000)

	apps := []struct {
		bank string
		app  *upi.PhonePe
	}{
		{"HDFC", upi.NewPhonePe(upi.NewHDFCAdapter(hdfc))},
		{"YES", upi.NewPhonePe(upi.NewYesAdapter(yes))},
	}
	for _, a := range apps {
		left, err := a.app.Pay(env.ctx, 1_500, "merchant@upi")
		if err != nil {
			return err
		}
		fmt.Fprintf(env.out, "%s: paid 1500 to merchant@upi, balance %d\n", a.bank, left)
	}

	_, err := apps[1].app.Pay(env.ctx, 1_000_000, "merchant@upi")
	if !errors.Is(err, upi.ErrInsufficientFunds) {
		return fmt.Errorf("expected insufficient funds, got %v", err)
	}
	fmt.Fprintf(env.out, "YES: %v\n", err)
	return nil
}

// Package upi lets a payments app talk to banks with incompatible UPI APIs
// through one Service interface.
package upi

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInsufficientFunds is returned when a payment exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned for non-positive payment amounts.
	ErrInvalidAmount = errors.New("amount must be greater than 0")
)

// Service is the interface the payments app expects from every bank.
type Service interface {
	MakePayment(ctx context.Context, amount int64, recipient string) error
	Balance(ctx context.Context) (int64, error)
}

// HDFCClient is HDFC's native UPI API.
type HDFCClient interface {
	Pay(amount int64, recipientAccount string) error
	CheckBalance() int64
}

// YesClient is YES Bank's native UPI API.
type YesClient interface {
	SendMoney(amount int64, beneficiary string) error
	GetBalance() (int64, error)
}

type hdfcAdapter struct {
	client HDFCClient
}

// NewHDFCAdapter exposes an HDFC client as a Service.
func NewHDFCAdapter(c HDFCClient) Service { return &hdfcAdapter{client: c} }

func (a *hdfcAdapter) MakePayment(ctx context.Context, amount int64, recipient string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if err := a.client.Pay(amount, recipient); err != nil {
		return fmt.Errorf("hdfc: pay: %w", err)
	}
	return nil
}

func (a *hdfcAdapter) Balance(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return a.client.CheckBalance(), nil
}

type yesAdapter struct {
	client YesClient
}

// NewYesAdapter exposes a YES Bank client as a Service.
func NewYesAdapter(c YesClient) Service { return &yesAdapter{client: c} }

func (a *yesAdapter) MakePayment(ctx context.Context, amount int64, recipient string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if err := a.client.SendMoney(amount, recipient); err != nil {
		return fmt.Errorf("yes: send money: %w", err)
	}
	return nil
}

func (a *yesAdapter) Balance(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	b, err := a.client.GetBalance()
	if err != nil {
		return 0, fmt.Errorf("yes: get balance: %w", err)
	}
	return b, nil
}

// PhonePe is the payments app; it only knows about Service.
type PhonePe struct {
	bank Service
}

// NewPhonePe creates the app on top of a bank Service.
func NewPhonePe(bank Service) *PhonePe { return &PhonePe{bank: bank} }

// Pay sends amount to recipient and returns the remaining balance.
func (p *PhonePe) Pay(ctx context.Context, amount int64, recipient string) (int64, error) {
	if err := p.bank.MakePayment(ctx, amount, recipient); err != nil {
		return 0, fmt.Errorf("upi payment to %s: %w", recipient, err)
	}
	return p.bank.Balance(ctx)
}

// Balance returns the linked account balance.
func (p *PhonePe) Balance(ctx context.Context) (int64, error) {
	return p.bank.Balance(ctx)
}

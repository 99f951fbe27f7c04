package main

import (
	"errors"
	"fmt"

	"github.com/ajitpratap0/patternkit/internal/builder"
	"github.com/ajitpratap0/patternkit/internal/catalog"
	"github.com/ajitpratap0/patternkit/internal/factory"
	"github.com/ajitpratap0/patternkit/internal/models"
	"github.com/ajitpratap0/patternkit/internal/notifykit"
	"github.com/ajitpratap0/patternkit/internal/prototype"
)

func demoBuilder(env demoEnv) error {
	db, err := builder.NewDatabaseConfig().
		URL("postgres://localhost:5432/app").
		Username("app").
		Password("s3cret").
		MaxConnections(20).
		EnableCache(true).
		Build()
	if err != nil {
		return err
	}
	fmt.Fprintln(env.out, db)

	q, err := builder.NewQuery().
		Select("name, email").
		From("users").
		Join("orders ON orders.user_id = users.id").
		Where("age > 18").
		OrderBy("name").
		Build()
	if err != nil {
		return err
	}
	fmt.Fprintln(env.out, q.SQL())

	p := builder.NewPerson().Name("John").Build()
	fmt.Fprintf(env.out, "Person: %s\n", p.Name())
	return nil
}

func demoFactory(env demoEnv) error {
	for _, t := range []factory.NotificationType{factory.NotificationEmail, factory.NotificationPush, factory.NotificationSMS} {
		n, err := factory.NewNotification(t, "Your order has shipped", "john@example.com", "shop@example.com")
		if err != nil {
			return err
		}
		if err := n.Send(env.out); err != nil {
			return err
		}
	}
	if _, err := factory.NewNotification("fax", "hello", "john", ""); !errors.Is(err, factory.ErrUnknownType) {
		return fmt.Errorf("expected unknown type error, got %v", err)
	}

	player, err := factory.NewAudioPlayer(factory.FormatMP3, 50, 1.0)
	if err != nil {
		return err
	}
	if err := player.Play(env.out); err != nil {
		return err
	}
	if err := player.SetVolume(80); err != nil {
		return err
	}
	fmt.Fprintf(env.out, "Volume: %d, rate: %.1fx\n", player.Volume(), player.PlaybackRate())
	if err := player.Stop(env.out); err != nil {
		return err
	}

	for _, name := range []string{"circle", "rectangle", "square"} {
		s, err := factory.NewShape(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.out, s.Draw())
	}
	return nil
}

func demoAbstractFactory(env demoEnv) error {
	for _, ch := range []notifykit.Channel{notifykit.ChannelEmail, notifykit.ChannelPush} {
		f, err := notifykit.ForChannel(ch)
		if err != nil {
			return err
		}
		tmpl := f.CreateTemplate("Your invoice is ready")
		n := f.CreateNotification("jane@example.com", "billing@example.com", tmpl)
		if err := f.CreateSender(n).Send(env.out); err != nil {
			return err
		}
	}
	return nil
}

func demoPrototype(env demoEnv) error {
	cat := catalog.New(env.logger)
	cat.SeedDefaults()

	admin, err := cat.Users.Clone(models.UserTypeAdmin)
	if err != nil {
		return err
	}
	admin.Username = "alice"
	admin.Permissions = append(admin.Permissions, "billing")
	proto, err := cat.Users.GetPrototype(models.UserTypeAdmin)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.out, "clone: %s (%s), prototype still: %s\n", admin.Username, admin.Type(), proto.Username)

	inv, err := cat.Invoices.Clone(models.InvoiceTypeSales)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.out, "invoice: %s %.2f via %s (%s)\n", inv.CustomerName, inv.Amount, inv.PaymentMethod, inv.Type())

	cfgClone, err := cat.Configurations.Clone(models.ConfigurationTypeAdvanced)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.out, "configuration: %s theme, %s %dpt, dark mode %t (%s)\n",
		cfgClone.ThemeColor, cfgClone.FontFamily, cfgClone.FontSize, cfgClone.DarkMode, cfgClone.Type())

	_, err = cat.Invoices.Clone(models.InvoiceTypeService)
	if !errors.Is(err, prototype.ErrNotFound) {
		return fmt.Errorf("expected not found for unregistered type, got %v", err)
	}
	fmt.Fprintf(env.out, "service invoice: %v\n", err)
	return nil
}

package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/patternkit/internal/models"
	"github.com/ajitpratap0/patternkit/internal/prototype"
)

// Seed is the on-disk shape of a prototype seed file.
//
//	users:
//	  - {id: 1, username: admin, email: admin@example.com, type: admin}
//	invoices:
//	  - {id: 1, customer_name: John Doe, amount: 100, payment_method: Credit Card, type: sales}
//	configurations:
//	  - {theme_color: blue, font_size: 12, type: basic}
type Seed struct {
	Users          []models.User          `json:"users,omitempty" yaml:"users,omitempty"`
	Invoices       []models.Invoice       `json:"invoices,omitempty" yaml:"invoices,omitempty"`
	Configurations []models.Configuration `json:"configurations,omitempty" yaml:"configurations,omitempty"`
}

// SeedDefaults registers the stock prototypes for every kind.
func (c *Catalog) SeedDefaults() {
	c.Users.AddPrototype(models.NewUser(1, "admin", "admin@example.com", "Admin User", 30, models.UserTypeAdmin))
	c.Users.AddPrototype(models.NewUser(2, "reader", "reader@example.com", "Reader User", 25, models.UserTypeReader))
	c.Users.AddPrototype(models.NewUser(3, "writer", "writer@example.com", "Writer User", 28, models.UserTypeWriter))

	c.Invoices.AddPrototype(models.NewInvoice(1, "John Doe", 100.0, "Credit Card", models.InvoiceTypeSales))
	c.Invoices.AddPrototype(models.NewInvoice(2, "Jane Smith", 200.0, "PayPal", models.InvoiceTypePurchase))

	c.Configurations.AddPrototype(models.NewConfiguration("blue", true, "English", false, 12, "Arial", models.ConfigurationTypeBasic))
	c.Configurations.AddPrototype(models.NewConfiguration("green", false, "Spanish", true, 14, "Times New Roman", models.ConfigurationTypeAdvanced))
}

// LoadSeedFile registers every prototype in the YAML file at path.
func (c *Catalog) LoadSeedFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading seed file: %w", err)
	}
	n, err := c.LoadSeed(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("seed file %s: %w", path, err)
	}
	c.logger.Info("seed file loaded", "path", path, "prototypes", n)
	return n, nil
}

// LoadSeed decodes a YAML seed and registers its prototypes. The whole seed
// is validated before anything is registered; later entries override earlier
// ones with the same type.
func (c *Catalog) LoadSeed(r io.Reader) (int, error) {
	var seed Seed
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("decoding seed: %w", err)
	}

	for i := range seed.Users {
		if !seed.Users[i].UserType.IsValid() {
			return 0, fmt.Errorf("users[%d]: %w: %q", i, ErrInvalidType, seed.Users[i].UserType)
		}
	}
	for i := range seed.Invoices {
		if !seed.Invoices[i].InvoiceType.IsValid() {
			return 0, fmt.Errorf("invoices[%d]: %w: %q", i, ErrInvalidType, seed.Invoices[i].InvoiceType)
		}
	}
	for i := range seed.Configurations {
		if !seed.Configurations[i].ConfigurationType.IsValid() {
			return 0, fmt.Errorf("configurations[%d]: %w: %q", i, ErrInvalidType, seed.Configurations[i].ConfigurationType)
		}
	}

	for i := range seed.Users {
		c.Users.AddPrototype(&seed.Users[i])
	}
	for i := range seed.Invoices {
		c.Invoices.AddPrototype(&seed.Invoices[i])
	}
	for i := range seed.Configurations {
		c.Configurations.AddPrototype(&seed.Configurations[i])
	}
	return len(seed.Users) + len(seed.Invoices) + len(seed.Configurations), nil
}

// Snapshot returns a copy of every registered prototype, ordered by type.
// The result can be written with yaml.Marshal and loaded back with LoadSeed.
func (c *Catalog) Snapshot() Seed {
	var s Seed
	for _, t := range prototype.SortedTypes(c.Users) {
		if u, err := c.Users.Clone(t); err == nil {
			s.Users = append(s.Users, *u)
		}
	}
	for _, t := range prototype.SortedTypes(c.Invoices) {
		if inv, err := c.Invoices.Clone(t); err == nil {
			s.Invoices = append(s.Invoices, *inv)
		}
	}
	for _, t := range prototype.SortedTypes(c.Configurations) {
		if cfg, err := c.Configurations.Clone(t); err == nil {
			s.Configurations = append(s.Configurations, *cfg)
		}
	}
	return s
}

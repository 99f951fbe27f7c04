// Package catalog holds the prototype registries for every entity kind and
// exposes kind-erased operations for the CLI, HTTP and MCP surfaces.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ajitpratap0/patternkit/internal/metrics"
	"github.com/ajitpratap0/patternkit/internal/models"
	"github.com/ajitpratap0/patternkit/internal/prototype"
)

var (
	// ErrUnknownKind is returned when a kind name is not recognized.
	ErrUnknownKind = errors.New("unknown prototype kind")

	// ErrInvalidType is returned when a discriminator is not valid for its kind.
	ErrInvalidType = errors.New("invalid prototype type")

	// ErrInvalidPrototype is returned when a prototype body cannot be decoded.
	ErrInvalidPrototype = errors.New("invalid prototype")
)

// Kind names an entity kind held by the catalog.
type Kind string

const (
	KindUser          Kind = "user"
	KindInvoice       Kind = "invoice"
	KindConfiguration Kind = "configuration"
)

// ValidKinds is the set of all kinds, in display order.
var ValidKinds = []Kind{
	KindUser,
	KindInvoice,
	KindConfiguration,
}

// IsValid returns true if the kind is recognized.
func (k Kind) IsValid() bool {
	return slices.Contains(ValidKinds, k)
}

// discriminator is satisfied by every model enum.
type discriminator interface {
	~string
	IsValid() bool
}

// binding erases the key and entity types of one registry.
type binding interface {
	types() []string
	get(typ string) (any, error)
	clone(typ string) (any, error)
	register(data []byte) (string, error)
	size() int
}

type registryBinding[K discriminator, T prototype.Prototype[K, T]] struct {
	reg    *prototype.Registry[K, T]
	newT   func() T
	logger *slog.Logger
}

func (b *registryBinding[K, T]) key(typ string) (K, error) {
	k := K(typ)
	if !k.IsValid() {
		return k, fmt.Errorf("%w: %q", ErrInvalidType, typ)
	}
	return k, nil
}

func (b *registryBinding[K, T]) types() []string {
	keys := prototype.SortedTypes(b.reg)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}

func (b *registryBinding[K, T]) get(typ string) (any, error) {
	k, err := b.key(typ)
	if err != nil {
		return nil, err
	}
	p, err := b.reg.GetPrototype(k)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (b *registryBinding[K, T]) clone(typ string) (any, error) {
	k, err := b.key(typ)
	if err != nil {
		return nil, err
	}
	c, err := b.reg.Clone(k)
	if err != nil {
		metrics.Inc(metrics.CloneMissTotal)
		return nil, err
	}
	metrics.Inc(metrics.CloneTotal)
	return c, nil
}

func (b *registryBinding[K, T]) register(data []byte) (string, error) {
	p := b.newT()
	if err := json.Unmarshal(data, p); err != nil {
		return "", fmt.Errorf("%w: decoding prototype: %w", ErrInvalidPrototype, err)
	}
	if _, err := b.key(string(p.Type())); err != nil {
		return "", err
	}
	b.reg.AddPrototype(p)
	metrics.Inc(metrics.RegisterTotal)
	b.logger.Debug("prototype registered", "type", p.Type())
	return string(p.Type()), nil
}

func (b *registryBinding[K, T]) size() int { return b.reg.Len() }

// Catalog groups one registry per entity kind.
type Catalog struct {
	Users          *prototype.Registry[models.UserType, *models.User]
	Invoices       *prototype.Registry[models.InvoiceType, *models.Invoice]
	Configurations *prototype.Registry[models.ConfigurationType, *models.Configuration]

	bindings map[Kind]binding
	logger   *slog.Logger
}

// New creates a catalog with empty registries. A nil logger uses slog.Default.
func New(logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Catalog{
		Users:          prototype.NewRegistry[models.UserType, *models.User](),
		Invoices:       prototype.NewRegistry[models.InvoiceType, *models.Invoice](),
		Configurations: prototype.NewRegistry[models.ConfigurationType, *models.Configuration](),
		logger:         logger,
	}
	c.bindings = map[Kind]binding{
		KindUser: &registryBinding[models.UserType, *models.User]{
			reg: c.Users, newT: func() *models.User { return &models.User{} }, logger: logger.With("kind", KindUser),
		},
		KindInvoice: &registryBinding[models.InvoiceType, *models.Invoice]{
			reg: c.Invoices, newT: func() *models.Invoice { return &models.Invoice{} }, logger: logger.With("kind", KindInvoice),
		},
		KindConfiguration: &registryBinding[models.ConfigurationType, *models.Configuration]{
			reg: c.Configurations, newT: func() *models.Configuration { return &models.Configuration{} }, logger: logger.With("kind", KindConfiguration),
		},
	}
	return c
}

func (c *Catalog) binding(kind Kind) (binding, error) {
	b, ok := c.bindings[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return b, nil
}

// Kinds returns every kind the catalog serves.
func (c *Catalog) Kinds() []Kind {
	return slices.Clone(ValidKinds)
}

// Types returns the registered discriminators of kind, sorted.
func (c *Catalog) Types(kind Kind) ([]string, error) {
	b, err := c.binding(kind)
	if err != nil {
		return nil, err
	}
	return b.types(), nil
}

// Get returns the registered prototype of kind under typ.
func (c *Catalog) Get(kind Kind, typ string) (any, error) {
	b, err := c.binding(kind)
	if err != nil {
		return nil, err
	}
	return b.get(typ)
}

// Clone returns a fresh copy of the prototype of kind under typ.
func (c *Catalog) Clone(kind Kind, typ string) (any, error) {
	b, err := c.binding(kind)
	if err != nil {
		return nil, err
	}
	return b.clone(typ)
}

// Register decodes a JSON prototype of kind and adds it to its registry,
// replacing any prototype with the same discriminator. It returns the
// discriminator the prototype was stored under.
func (c *Catalog) Register(kind Kind, data []byte) (string, error) {
	b, err := c.binding(kind)
	if err != nil {
		return "", err
	}
	return b.register(data)
}

// Stats returns the number of registered prototypes per kind.
func (c *Catalog) Stats() map[Kind]int {
	out := make(map[Kind]int, len(c.bindings))
	for k, b := range c.bindings {
		out[k] = b.size()
	}
	return out
}

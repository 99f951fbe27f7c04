package prototype_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ajitpratap0/patternkit/internal/models"
	"github.com/ajitpratap0/patternkit/internal/prototype"
)

func newUserRegistry() *prototype.Registry[models.UserType, *models.User] {
	return prototype.NewRegistry[models.UserType, *models.User]()
}

func TestRegistry_CloneAdmin(t *testing.T) {
	reg := newUserRegistry()
	admin := models.NewUser(1, "admin", "admin@example.com", "Admin User", 30, models.UserTypeAdmin)
	reg.AddPrototype(admin)

	clone, err := reg.Clone(models.UserTypeAdmin)
	require.NoError(t, err)
	assert.Equal(t, admin, clone)
	assert.NotSame(t, admin, clone)
	assert.Equal(t, int64(1), clone.ID)
	assert.Equal(t, "admin", clone.Username)
	assert.Equal(t, models.UserTypeAdmin, clone.Type())
}

func TestRegistry_CloneUnregistered(t *testing.T) {
	reg := newUserRegistry()
	reg.AddPrototype(models.NewUser(1, "admin", "", "", 0, models.UserTypeAdmin))

	_, err := reg.Clone(models.UserTypeWriter)
	require.Error(t, err)
	assert.True(t, errors.Is(err, prototype.ErrNotFound))

	var nf *prototype.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, models.UserTypeWriter, nf.Type)
	assert.Contains(t, err.Error(), "writer")

	// A failed lookup leaves the registry unchanged.
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, []models.UserType{models.UserTypeAdmin}, reg.Types())
}

func TestRegistry_GetPrototypeUnregistered(t *testing.T) {
	reg := prototype.NewRegistry[models.InvoiceType, *models.Invoice]()
	got, err := reg.GetPrototype(models.InvoiceTypeService)
	assert.ErrorIs(t, err, prototype.ErrNotFound)
	assert.Nil(t, got)
}

func TestRegistry_GetPrototypeReturnsRegistered(t *testing.T) {
	reg := prototype.NewRegistry[models.InvoiceType, *models.Invoice]()
	inv := models.NewInvoice(1, "John Doe", 100.0, "Credit Card", models.InvoiceTypeSales)
	reg.AddPrototype(inv)

	got, err := reg.GetPrototype(models.InvoiceTypeSales)
	require.NoError(t, err)
	assert.Same(t, inv, got)
}

func TestRegistry_OverwriteLastWriteWins(t *testing.T) {
	reg := prototype.NewRegistry[models.InvoiceType, *models.Invoice]()
	reg.AddPrototype(models.NewInvoice(1, "John Doe", 100.0, "Credit Card", models.InvoiceTypeSales))
	reg.AddPrototype(models.NewInvoice(2, "Jane Smith", 999.0, "PayPal", models.InvoiceTypeSales))

	clone, err := reg.Clone(models.InvoiceTypeSales)
	require.NoError(t, err)
	assert.Equal(t, 999.0, clone.Amount)
	assert.Equal(t, "Jane Smith", clone.CustomerName)
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, []models.InvoiceType{models.InvoiceTypeSales}, reg.Types())
}

func TestRegistry_CloneIsIndependent(t *testing.T) {
	reg := newUserRegistry()
	writer := models.NewUser(3, "writer", "writer@example.com", "Writer User", 28, models.UserTypeWriter)
	writer.Permissions = []string{"read", "write"}
	reg.AddPrototype(writer)

	clone, err := reg.Clone(models.UserTypeWriter)
	require.NoError(t, err)

	clone.DisplayName = "changed"
	clone.Permissions[0] = "admin"
	clone.Permissions = append(clone.Permissions, "delete")

	assert.Equal(t, "Writer User", writer.DisplayName)
	assert.Equal(t, []string{"read", "write"}, writer.Permissions)
}

func TestRegistry_TypesInRegistrationOrder(t *testing.T) {
	reg := prototype.NewRegistry[models.ConfigurationType, *models.Configuration]()
	reg.AddPrototype(models.NewConfiguration("green", false, "Spanish", true, 14, "Times New Roman", models.ConfigurationTypeAdvanced))
	reg.AddPrototype(models.NewConfiguration("blue", true, "English", false, 12, "Arial", models.ConfigurationTypeBasic))

	assert.Equal(t, []models.ConfigurationType{models.ConfigurationTypeAdvanced, models.ConfigurationTypeBasic}, reg.Types())
	assert.Equal(t, []models.ConfigurationType{models.ConfigurationTypeAdvanced, models.ConfigurationTypeBasic}, prototype.SortedTypes(reg))

	// The returned slice is a snapshot.
	types := reg.Types()
	types[0] = models.ConfigurationTypeCustom
	assert.Equal(t, models.ConfigurationTypeAdvanced, reg.Types()[0])
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := newUserRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			ut := models.ValidUserTypes[i%len(models.ValidUserTypes)]
			reg.AddPrototype(models.NewUser(int64(i), fmt.Sprintf("user-%d", i), "", "", i, ut))
		}(i)
		go func(i int) {
			defer wg.Done()
			ut := models.ValidUserTypes[i%len(models.ValidUserTypes)]
			if u, err := reg.Clone(ut); err == nil {
				assert.Equal(t, ut, u.Type())
			} else {
				assert.ErrorIs(t, err, prototype.ErrNotFound)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, len(models.ValidUserTypes), reg.Len())
}

// --- property tests ---

func drawUser(t *rapid.T, label string) *models.User {
	ut := rapid.SampledFrom(models.ValidUserTypes).Draw(t, label+"_type")
	u := models.NewUser(
		rapid.Int64().Draw(t, label+"_id"),
		rapid.String().Draw(t, label+"_username"),
		rapid.String().Draw(t, label+"_email"),
		rapid.String().Draw(t, label+"_display"),
		rapid.Int().Draw(t, label+"_age"),
		ut,
	)
	u.Permissions = rapid.SliceOf(rapid.String()).Draw(t, label+"_perms")
	return u
}

func TestRegistry_PropertyUnregisteredAlwaysNotFound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reg := newUserRegistry()
		registered := map[models.UserType]bool{}
		n := rapid.IntRange(0, 5).Draw(t, "n")
		for i := 0; i < n; i++ {
			u := drawUser(t, fmt.Sprintf("u%d", i))
			reg.AddPrototype(u)
			registered[u.Type()] = true
		}
		for _, ut := range models.ValidUserTypes {
			_, getErr := reg.GetPrototype(ut)
			_, cloneErr := reg.Clone(ut)
			if registered[ut] {
				require.NoError(t, getErr)
				require.NoError(t, cloneErr)
			} else {
				require.ErrorIs(t, getErr, prototype.ErrNotFound)
				require.ErrorIs(t, cloneErr, prototype.ErrNotFound)
			}
		}
	})
}

func TestRegistry_PropertyClonesEqualButIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reg := newUserRegistry()
		u := drawUser(t, "proto")
		reg.AddPrototype(u)

		a, err := reg.Clone(u.Type())
		require.NoError(t, err)
		b, err := reg.Clone(u.Type())
		require.NoError(t, err)

		require.Equal(t, u, a)
		require.Equal(t, a, b)
		require.NotSame(t, u, a)
		require.NotSame(t, a, b)

		a.Username += "-mutated"
		a.Permissions = append(a.Permissions, "extra")
		require.Equal(t, u, b)
		require.NotEqual(t, u.Username, a.Username)
	})
}

func TestRegistry_PropertyLastWriteWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reg := prototype.NewRegistry[models.InvoiceType, *models.Invoice]()
		it := rapid.SampledFrom(models.ValidInvoiceTypes).Draw(t, "type")
		amounts := rapid.SliceOfN(rapid.Float64(), 1, 10).Draw(t, "amounts")
		var last *models.Invoice
		for i, amt := range amounts {
			last = models.NewInvoice(int64(i), "c", amt, "card", it)
			reg.AddPrototype(last)
		}
		got, err := reg.GetPrototype(it)
		require.NoError(t, err)
		require.Same(t, last, got)
		require.Equal(t, 1, reg.Len())
	})
}

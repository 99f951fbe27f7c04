// Package menu composes priced menu items from a base item wrapped in add-ons.
package menu

// Item is anything that can be ordered: a base item or a decorated one.
type Item interface {
	// Description lists the components, innermost first.
	Description() []string
	// Cost is the total price in rupees.
	Cost() int
}

const (
	BurgerPrice = 100
	PizzaPrice  = 200
	CheesePrice = 100
	PaneerPrice = 100
)

type Burger struct{}

func (Burger) Description() []string { return []string{"Burger"} }
func (Burger) Cost() int             { return BurgerPrice }

type Pizza struct{}

func (Pizza) Description() []string { return []string{"Pizza"} }
func (Pizza) Cost() int             { return PizzaPrice }

// addOn owns the item it wraps; nothing else should hold a reference to it.
type addOn struct {
	inner Item
	name  string
	price int
}

func (a *addOn) Description() []string {
	return append(a.inner.Description(), a.name+" add-on")
}

func (a *addOn) Cost() int { return a.inner.Cost() + a.price }

// WithCheese adds cheese to item.
func WithCheese(item Item) Item {
	return &addOn{inner: item, name: "Cheese", price: CheesePrice}
}

// WithPaneer adds paneer to item.
func WithPaneer(item Item) Item {
	return &addOn{inner: item, name: "Paneer", price: PaneerPrice}
}

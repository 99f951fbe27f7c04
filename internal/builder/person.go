package builder

// Person is the smallest possible built object: a name.
type Person struct {
	name string
}

// Name returns the person's name.
func (p Person) Name() string { return p.name }

// PersonBuilder builds a Person.
type PersonBuilder struct {
	name string
}

// NewPerson starts a person builder.
func NewPerson() *PersonBuilder { return &PersonBuilder{} }

func (b *PersonBuilder) Name(name string) *PersonBuilder {
	b.name = name
	return b
}

func (b *PersonBuilder) Build() Person {
	return Person{name: b.name}
}

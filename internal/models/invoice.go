package models

// InvoiceType classifies an invoice prototype.
type InvoiceType string

const (
	InvoiceTypeSales    InvoiceType = "sales"
	InvoiceTypePurchase InvoiceType = "purchase"
	InvoiceTypeService  InvoiceType = "service"
)

// ValidInvoiceTypes is the set of all valid invoice types.
var ValidInvoiceTypes = []InvoiceType{
	InvoiceTypeSales,
	InvoiceTypePurchase,
	InvoiceTypeService,
}

// IsValid returns true if the invoice type is recognized.
func (it InvoiceType) IsValid() bool {
	for _, v := range ValidInvoiceTypes {
		if it == v {
			return true
		}
	}
	return false
}

// Invoice is a billing document template.
type Invoice struct {
	ID            int64       `json:"id" yaml:"id"`
	CustomerName  string      `json:"customer_name" yaml:"customer_name"`
	Amount        float64     `json:"amount" yaml:"amount"`
	PaymentMethod string      `json:"payment_method" yaml:"payment_method"`
	InvoiceType   InvoiceType `json:"type" yaml:"type"`
}

// NewInvoice creates an invoice of the given type.
func NewInvoice(id int64, customerName string, amount float64, paymentMethod string, it InvoiceType) *Invoice {
	return &Invoice{
		ID:            id,
		CustomerName:  customerName,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		InvoiceType:   it,
	}
}

// Type returns the invoice's discriminator.
func (i *Invoice) Type() InvoiceType { return i.InvoiceType }

// Clone returns an independent copy of i.
func (i *Invoice) Clone() *Invoice {
	c := *i
	return &c
}

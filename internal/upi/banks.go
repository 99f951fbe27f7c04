package upi

import (
	"fmt"
	"sync"
)

// Transfer is one outgoing payment recorded by an in-memory bank.
type Transfer struct {
	Amount    int64
	Recipient string
}

// account is the ledger shared by the in-memory banks.
type account struct {
	mu        sync.Mutex
	balance   int64
	transfers []Transfer
}

func (a *account) debit(amount int64, recipient string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount > a.balance {
		return fmt.Errorf("%w: balance %d, requested %d", ErrInsufficientFunds, a.balance, amount)
	}
	a.balance -= amount
	a.transfers = append(a.transfers, Transfer{Amount: amount, Recipient: recipient})
	return nil
}

func (a *account) current() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *account) history() []Transfer {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transfer, len(a.transfers))
	copy(out, a.transfers)
	return out
}

// HDFCBank is an in-memory HDFCClient.
type HDFCBank struct{ acct account }

// NewHDFCBank opens an account with the given balance.
func NewHDFCBank(balance int64) *HDFCBank {
	return &HDFCBank{acct: account{balance: balance}}
}

func (b *HDFCBank) Pay(amount int64, recipientAccount string) error {
	return b.acct.debit(amount, recipientAccount)
}

func (b *HDFCBank) CheckBalance() int64   { return b.acct.current() }
func (b *HDFCBank) Transfers() []Transfer { return b.acct.history() }

// YesBank is an in-memory YesClient.
type YesBank struct{ acct account }

// NewYesBank opens an account with the given balance.
func NewYesBank(balance int64) *YesBank {
	return &YesBank{acct: account{balance: balance}}
}

func (b *YesBank) SendMoney(amount int64, beneficiary string) error {
	return b.acct.debit(amount, beneficiary)
}

func (b *YesBank) GetBalance() (int64, error) { return b.acct.current(), nil }
func (b *YesBank) Transfers() []Transfer      { return b.acct.history() }

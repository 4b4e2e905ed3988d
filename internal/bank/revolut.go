package bank

import (
	"github.com/ajwalkiewicz/tcomp/internal/model"
)

// Revolut parses Revolut CSV exports. Dates are ISO-like with a space
// between date and time, which ParseDate accepts directly.
type Revolut struct{}

// Bank returns the bank identifier.
func (p *Revolut) Bank() string { return "revolut" }

// ReaderConfig returns the raw-record reader settings for this format.
func (p *Revolut) ReaderConfig() ReaderConfig { return ReaderConfig{} }

// CreateTransaction builds a Transaction from a Revolut statement row.
func (p *Revolut) CreateTransaction(row Row) (model.Transaction, error) {
	rawDate, err := row.Get("started date")
	if err != nil {
		return model.Transaction{}, err
	}
	rawAmount, err := row.Get("amount")
	if err != nil {
		return model.Transaction{}, err
	}
	description, err := row.Get("description")
	if err != nil {
		return model.Transaction{}, err
	}

	date, err := model.ParseDate(rawDate)
	if err != nil {
		return model.Transaction{}, err
	}
	amount, err := model.ParseAmount(rawAmount)
	if err != nil {
		return model.Transaction{}, err
	}

	return model.New(date, amount, description), nil
}

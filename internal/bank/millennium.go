package bank

import (
	"github.com/ajwalkiewicz/tcomp/internal/model"
)

// Millennium parses Bank Millennium CSV exports. The statement splits the
// amount across two columns; exactly one of "debits" and "credits" is
// populated per row.
type Millennium struct{}

// Bank returns the bank identifier.
func (p *Millennium) Bank() string { return "millennium" }

// ReaderConfig returns the raw-record reader settings for this format.
func (p *Millennium) ReaderConfig() ReaderConfig { return ReaderConfig{} }

// CreateTransaction builds a Transaction from a Millennium statement row.
func (p *Millennium) CreateTransaction(row Row) (model.Transaction, error) {
	rawDate, err := row.Get("transaction date")
	if err != nil {
		return model.Transaction{}, err
	}
	debits, err := row.Get("debits")
	if err != nil {
		return model.Transaction{}, err
	}
	credits, err := row.Get("credits")
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

	rawAmount := debits
	if rawAmount == "" {
		rawAmount = credits
	}
	amount, err := model.ParseAmount(rawAmount)
	if err != nil {
		return model.Transaction{}, err
	}

	return model.New(date, amount, description), nil
}

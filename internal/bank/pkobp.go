package bank

import (
	"github.com/ajwalkiewicz/tcomp/internal/model"
)

// PkoBp parses PKO BP CSV exports.
type PkoBp struct{}

// Bank returns the bank identifier.
func (p *PkoBp) Bank() string { return "pkobp" }

// ReaderConfig returns the raw-record reader settings for this format.
func (p *PkoBp) ReaderConfig() ReaderConfig { return ReaderConfig{} }

// CreateTransaction builds a Transaction from a PKO BP statement row.
func (p *PkoBp) CreateTransaction(row Row) (model.Transaction, error) {
	rawDate, err := row.Get("value date")
	if err != nil {
		return model.Transaction{}, err
	}
	rawAmount, err := row.Get("amount")
	if err != nil {
		return model.Transaction{}, err
	}
	description, err := row.Get("transaction description")
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

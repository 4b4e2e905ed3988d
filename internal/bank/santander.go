package bank

import (
	"fmt"
	"strings"
	"time"

	"github.com/ajwalkiewicz/tcomp/internal/model"
)

// santanderDateFormat is strict day-month-year. Two-digit day/month
// ambiguity is never auto-detected: a month-first date must fail.
const santanderDateFormat = "02-01-2006"

// SantanderFields are the positional column names for Santander exports,
// which carry no header row.
var SantanderFields = []string{"_", "date", "place", "_", "_", "amount"}

// Santander parses Santander PL CSV exports. Amounts use a decimal comma.
type Santander struct{}

// Bank returns the bank identifier.
func (p *Santander) Bank() string { return "santander" }

// ReaderConfig returns the raw-record reader settings for this format.
// The first physical line is metadata, not a header, and is discarded.
func (p *Santander) ReaderConfig() ReaderConfig {
	return ReaderConfig{SkipFirstLine: true, Fields: SantanderFields}
}

// CreateTransaction builds a Transaction from a Santander statement row.
func (p *Santander) CreateTransaction(row Row) (model.Transaction, error) {
	rawDate, err := row.Get("date")
	if err != nil {
		return model.Transaction{}, err
	}
	rawAmount, err := row.Get("amount")
	if err != nil {
		return model.Transaction{}, err
	}
	place, err := row.Get("place")
	if err != nil {
		return model.Transaction{}, err
	}

	date, err := time.Parse(santanderDateFormat, rawDate)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %q", model.ErrDateFormat, rawDate)
	}

	amount, err := model.ParseAmount(strings.ReplaceAll(rawAmount, ",", "."))
	if err != nil {
		return model.Transaction{}, err
	}

	return model.New(date, amount, place), nil
}

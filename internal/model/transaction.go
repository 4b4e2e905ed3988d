package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateTolerance is the window within which two transaction dates are
// considered the same for reconciliation.
const DateTolerance = 72 * time.Hour

var (
	// ErrDateFormat marks an unparsable or calendrically invalid date.
	ErrDateFormat = errors.New("invalid date format")
	// ErrAmountFormat marks a non-numeric or malformed amount.
	ErrAmountFormat = errors.New("invalid amount format")
)

// Transaction is a single financial movement, fixed at construction.
// Amount is stored in milliunits (1/1000 of the major currency unit);
// sign indicates debit or credit. ID identifies the instance, not the
// value: two transactions that compare Equivalent keep distinct IDs.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time
	Amount      int64 // milliunits
	Description string
}

// New builds a Transaction from an already-parsed date and a milliunit
// amount. Budgeting-service exports carry milliunits directly, so integer
// amounts are never rescaled.
func New(date time.Time, amountMilli int64, description string) Transaction {
	return Transaction{
		ID:          uuid.New(),
		Date:        date,
		Amount:      amountMilli,
		Description: description,
	}
}

// NewFromDecimal builds a Transaction from a major-unit decimal amount.
// The amount is scaled by 1000 and truncated toward zero, never rounded:
// 100.1238 and 100.1239 both become 100123, -50.75 becomes -50750.
func NewFromDecimal(date time.Time, amount decimal.Decimal, description string) Transaction {
	return New(date, amount.Shift(3).IntPart(), description)
}

// isoLayouts are the accepted ISO-8601 shapes, tried in order. The space
// separator variants cover Revolut's "started date" column; fractional
// seconds are optional in the second-bearing layouts, and UTC-offset
// forms get their own entries since an offset cannot be optional.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 date or date-time string.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, s)
}

// ParseAmount parses a major-unit decimal string into milliunits,
// truncating toward zero past the third decimal place.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrAmountFormat, s)
	}
	return d.Shift(3).IntPart(), nil
}

// Equivalent reports whether two transactions reconcile: amounts must be
// identical and dates within DateTolerance of each other. The relation is
// reflexive and symmetric but not transitive, since tolerance windows can
// chain (day 0 matches day 3, day 3 matches day 6, day 0 does not match
// day 6). That is a documented property of the matcher, not a defect.
func (t Transaction) Equivalent(other Transaction) bool {
	if t.Amount != other.Amount {
		return false
	}
	diff := t.Date.Sub(other.Date)
	if diff < 0 {
		diff = -diff
	}
	return diff <= DateTolerance
}

// MajorUnits converts the stored milliunit amount back to major currency
// units for display.
func (t Transaction) MajorUnits() decimal.Decimal {
	return decimal.NewFromInt(t.Amount).Shift(-3)
}

package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ajwalkiewicz/tcomp/internal/model"
)

// jsonExport mirrors the budgeting service's export schema.
type jsonExport struct {
	Data struct {
		Transactions []jsonTransaction `json:"transactions"`
	} `json:"data"`
}

type jsonTransaction struct {
	Date      string      `json:"date"`
	Amount    json.Number `json:"amount"`
	PayeeName string      `json:"payee_name"`
	Memo      *string     `json:"memo"`
}

// JSONFile reads a budgeting-service export from path.
func JSONFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := JSON(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return txns, nil
}

// JSON reads a budgeting-service export from r. Integer amounts are
// already milliunits and pass through unscaled; amounts written with a
// fraction or exponent are major units, scaled by 1000 and truncated.
// Description is "<payee> <memo>", where a null memo collapses to the
// empty string (the trailing space stays, for compatibility with the
// service's own exports).
func JSON(r io.Reader) ([]model.Transaction, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var export jsonExport
	if err := dec.Decode(&export); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	var txns []model.Transaction
	for i, rec := range export.Data.Transactions {
		txn, err := fromJSONRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func fromJSONRecord(rec jsonTransaction) (model.Transaction, error) {
	date, err := model.ParseDate(rec.Date)
	if err != nil {
		return model.Transaction{}, err
	}

	var amount int64
	if s := rec.Amount.String(); strings.ContainsAny(s, ".eE") {
		amount, err = model.ParseAmount(s)
	} else {
		amount, err = rec.Amount.Int64()
		if err != nil {
			err = fmt.Errorf("%w: %q", model.ErrAmountFormat, s)
		}
	}
	if err != nil {
		return model.Transaction{}, err
	}

	memo := ""
	if rec.Memo != nil {
		memo = *rec.Memo
	}

	return model.New(date, amount, rec.PayeeName+" "+memo), nil
}

// Package ingest reads transaction exports from disk and feeds them
// through the bank parsers into the common model. Ingestion is
// all-or-nothing: the first malformed row aborts the whole read.
package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ajwalkiewicz/tcomp/internal/bank"
	"github.com/ajwalkiewicz/tcomp/internal/model"
)

// CSVFile reads a bank statement from path using the given parser.
func CSVFile(path string, parser bank.Parser) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := CSV(f, parser)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return txns, nil
}

// CSV reads a delimited statement from r using the parser's reader
// configuration: either the file's own header names the columns, or the
// parser supplies positional field names (and the first physical line is
// discarded as metadata).
func CSV(r io.Reader, parser bank.Parser) ([]model.Transaction, error) {
	cfg := parser.ReaderConfig()

	br := bufio.NewReader(r)
	if cfg.SkipFirstLine {
		if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
			return nil, fmt.Errorf("skipping first line: %w", err)
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	fields := cfg.Fields
	rowOffset := 1
	if fields == nil {
		fields = records[0]
		records = records[1:]
		rowOffset = 2
	}
	if cfg.SkipFirstLine {
		rowOffset++
	}

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = strings.ToLower(strings.TrimSpace(f))
	}

	var txns []model.Transaction
	for i, rec := range records {
		txn, err := parser.CreateTransaction(makeRow(names, rec))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+rowOffset, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func makeRow(names, record []string) bank.Row {
	row := make(bank.Row, len(names))
	for i, name := range names {
		if i >= len(record) {
			break
		}
		row[name] = record[i]
	}
	return row
}

// Package bank normalizes heterogeneous bank CSV layouts into the common
// transaction model. Each supported bank contributes one stateless Parser;
// a fixed registry maps bank identifiers to parsers.
package bank

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ajwalkiewicz/tcomp/internal/model"
)

var (
	// ErrMissingField marks a column the parser expected but the row lacks.
	ErrMissingField = errors.New("missing field")
	// ErrUnsupportedBank marks a bank identifier with no registered parser.
	ErrUnsupportedBank = errors.New("bank not supported")
)

// ReaderConfig tells the ingestion layer how raw rows should be read for
// one bank's export format.
type ReaderConfig struct {
	// SkipFirstLine discards the first physical line unconditionally.
	SkipFirstLine bool
	// Fields assigns positional column names instead of reading a header
	// row. Nil means the file's own header names the columns.
	Fields []string
}

// Parser converts one raw CSV row into a Transaction. Implementations are
// stateless and bound to a single bank identifier.
type Parser interface {
	Bank() string
	ReaderConfig() ReaderConfig
	CreateTransaction(row Row) (model.Transaction, error)
}

// Row is one raw record, keyed by lowercased column name.
type Row map[string]string

// Get returns the named column's value. Lookup is case-insensitive; an
// absent column is an ErrMissingField, never a silent default.
func (r Row) Get(name string) (string, error) {
	v, ok := r[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingField, name)
	}
	return v, nil
}

// Registry maps bank identifiers to parsers. The bank set is fixed and
// small, so the registry is built once at startup and never mutated.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate bank identifier.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Bank())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate bank parser: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for a bank identifier, or ErrUnsupportedBank
// naming the unrecognized identifier.
func (r *Registry) Get(bankID string) (Parser, error) {
	p, ok := r.parsers[strings.ToLower(bankID)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBank, bankID)
	}
	return p, nil
}

// Banks returns the registered bank identifiers, sorted.
func (r *Registry) Banks() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns a registry with all supported bank parsers.
func Default() *Registry {
	r := NewRegistry()
	r.Register(&Millennium{})
	r.Register(&PkoBp{})
	r.Register(&Santander{})
	r.Register(&Revolut{})
	return r
}

// Package importer converts external files to and from ledger
// transactions.
package importer

import (
	"io"
	"sort"
	"strings"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Format names accepted by the import command.
const (
	FormatCSV   = "csv"
	FormatChase = "chase"
	FormatPDF   = "pdf"
)

// Parser converts an external file into transactions. Bank formats
// carry no category; parsers leave Category empty for the caller to
// fill.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{})
	r.Register(&ChaseParser{})
	r.Register(&StatementParser{})
	return r
}

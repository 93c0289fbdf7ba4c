// Package ledger owns the ordered transaction sequence and its backing
// JSON file.
package ledger

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Store holds the in-memory transaction sequence for one backing file.
// Insertion order is authoritative; transactions are never re-sorted.
type Store struct {
	path string
	txs  []model.Transaction
}

// NewStore creates a Store backed by the JSON file at path. Call Load
// before reading.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Load reads the backing file, replacing the in-memory sequence. A
// missing file is an empty ledger. A file that cannot be parsed returns
// a *CorruptDataError and leaves the in-memory sequence untouched, so a
// later Save cannot clobber data the user could still repair by hand.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.txs = nil
		slog.Debug("ledger file missing, starting empty", "path", s.path)
		return nil
	}
	if err != nil {
		return &PersistenceError{Op: "load", Path: s.path, Err: err}
	}

	txs, err := ReadTransactions(bytes.NewReader(data))
	if err != nil {
		return &CorruptDataError{Path: s.path, Err: err}
	}

	s.txs = txs
	slog.Debug("ledger loaded", "path", s.path, "transactions", len(txs))
	return nil
}

// Add validates tx, appends it, and persists the whole sequence. When
// the save fails the transaction stays in memory and the error is
// returned, so the entry survives for a retry within the session.
func (s *Store) Add(tx model.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	s.txs = append(s.txs, tx)
	return s.Save()
}

// AddAll appends a batch of transactions with a single save. Every
// transaction is validated before any is appended.
func (s *Store) AddAll(txs []model.Transaction) error {
	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i+1, err)
		}
	}
	if len(txs) == 0 {
		return nil
	}
	s.txs = append(s.txs, txs...)
	return s.Save()
}

// All returns the transactions in insertion order. The slice is a copy;
// callers cannot mutate the store through it.
func (s *Store) All() []model.Transaction {
	out := make([]model.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// Len returns the number of transactions.
func (s *Store) Len() int { return len(s.txs) }

// Save writes the full sequence to the backing file. The bytes go to a
// temp file in the same directory first and replace the target only on
// success, so a failed save never corrupts the previous copy.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := WriteTransactions(tmp, s.txs); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	slog.Debug("ledger saved", "path", s.path, "transactions", len(s.txs))
	return nil
}

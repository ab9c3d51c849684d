// Package store persists one CSV file per user under a data directory, plus
// a global append-only log of usernames. There is no locking: two sessions
// racing on the same user's file are last-write-wins.
package store

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/budgie/internal/transaction"
	"github.com/MrJamesThe3rd/budgie/internal/user"
)

// Header is the CSV header of a per-user transaction file.
const Header = "Date,Type,Category,Amount"

const (
	dateFormat = "2006-01-02"
	numFields  = 4

	colDate     = 0
	colType     = 1
	colCategory = 2
	colAmount   = 3
)

type Store struct {
	dataDir   string
	usersPath string
}

// New creates a store rooted at dataDir. usersFile is the name of the global
// username log inside dataDir.
func New(dataDir, usersFile string) *Store {
	return &Store{
		dataDir:   dataDir,
		usersPath: filepath.Join(dataDir, usersFile),
	}
}

func (s *Store) transactionsPath(username string) string {
	return filepath.Join(s.dataDir, user.Slug(username)+"_transactions.csv")
}

// Load reads the user's transaction table. A missing file is not an error:
// the user simply has no transactions yet.
func (s *Store) Load(_ context.Context, username string) ([]transaction.Transaction, error) {
	f, err := os.Open(s.transactionsPath(username))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("opening transactions file: %w", err)
	}
	defer f.Close()

	txs, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(f.Name()), err)
	}

	return txs, nil
}

// Save overwrites the user's file in full with the current table. A crash
// mid-write can corrupt the file; hardening that is out of scope.
func (s *Store) Save(_ context.Context, username string, txs []transaction.Transaction) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	f, err := os.Create(s.transactionsPath(username))
	if err != nil {
		return fmt.Errorf("creating transactions file: %w", err)
	}
	defer f.Close()

	if err := WriteTable(f, txs); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(f.Name()), err)
	}

	return f.Close()
}

// RegisterUsername appends the normalized username to the global log exactly
// once. The log is append-only and never read back into the UI.
func (s *Store) RegisterUsername(_ context.Context, username string) error {
	name := user.Normalize(username)

	known, err := s.knownUsernames()
	if err != nil {
		return err
	}

	for _, u := range known {
		if u == name {
			return nil
		}
	}

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	f, err := os.OpenFile(s.usersPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening users log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, name); err != nil {
		return fmt.Errorf("appending to users log: %w", err)
	}

	return f.Close()
}

func (s *Store) knownUsernames() ([]string, error) {
	f, err := os.Open(s.usersPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("opening users log: %w", err)
	}
	defer f.Close()

	var names []string

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			names = append(names, line)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading users log: %w", err)
	}

	return names, nil
}

// ReadTable reads all transactions from a CSV reader, skipping the header.
func ReadTable(r io.Reader) ([]transaction.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txs []transaction.Transaction

	// Skip header row.
	for i, rec := range records[1:] {
		tx, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

// WriteTable writes the header and one row per transaction to a CSV writer.
// An empty table produces a header-only file.
func WriteTable(w io.Writer, txs []transaction.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		if err := cw.Write(MarshalRow(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// MarshalRow converts a transaction to a CSV row.
func MarshalRow(tx transaction.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = tx.Date.Format(dateFormat)
	row[colType] = string(tx.Type)
	row[colCategory] = tx.Category
	row[colAmount] = transaction.FormatAmount(tx.Amount)

	return row
}

// UnmarshalRow converts a CSV row to a transaction.
func UnmarshalRow(record []string) (transaction.Transaction, error) {
	if len(record) != numFields {
		return transaction.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	kind := transaction.Type(record[colType])
	if !kind.Valid() {
		return transaction.Transaction{}, fmt.Errorf("unknown type %q", record[colType])
	}

	amount, err := transaction.ParseAmount(record[colAmount])
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return transaction.Transaction{
		Date:     date,
		Type:     kind,
		Category: record[colCategory],
		Amount:   amount,
	}, nil
}

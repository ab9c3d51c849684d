package transaction

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	Load(ctx context.Context, username string) ([]Transaction, error)
	Save(ctx context.Context, username string, txs []Transaction) error
	RegisterUsername(ctx context.Context, username string) error
}

// Service owns a user's transaction table. Every mutating operation loads the
// table, applies the change, and persists the whole table back, so the file on
// disk always reflects the last completed interaction.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register records the username in the global append-only log. Calling it
// again with the same name is a no-op.
func (s *Service) Register(ctx context.Context, username string) error {
	return s.repo.RegisterUsername(ctx, username)
}

// List returns the user's table in insertion order. A user with no stored
// file gets an empty table.
func (s *Service) List(ctx context.Context, username string) ([]Transaction, error) {
	return s.repo.Load(ctx, username)
}

// Add validates and appends a new transaction, then persists the table.
// It returns the stored row and its position in the table.
func (s *Service) Add(ctx context.Context, username string, params CreateParams) (int, Transaction, error) {
	tx, err := params.normalize()
	if err != nil {
		return 0, Transaction{}, err
	}

	txs, err := s.repo.Load(ctx, username)
	if err != nil {
		return 0, Transaction{}, fmt.Errorf("loading table: %w", err)
	}

	txs = append(txs, tx)

	if err := s.repo.Save(ctx, username, txs); err != nil {
		return 0, Transaction{}, fmt.Errorf("saving table: %w", err)
	}

	return len(txs) - 1, tx, nil
}

// Edit validates the params and replaces the transaction at index in place,
// then persists the table.
func (s *Service) Edit(ctx context.Context, username string, index int, params CreateParams) (Transaction, error) {
	tx, err := params.normalize()
	if err != nil {
		return Transaction{}, err
	}

	txs, err := s.repo.Load(ctx, username)
	if err != nil {
		return Transaction{}, fmt.Errorf("loading table: %w", err)
	}

	if index < 0 || index >= len(txs) {
		return Transaction{}, ErrIndexOutOfRange
	}

	txs[index] = tx

	if err := s.repo.Save(ctx, username, txs); err != nil {
		return Transaction{}, fmt.Errorf("saving table: %w", err)
	}

	return tx, nil
}

// Delete removes the transaction at index. Remaining rows keep their relative
// order and compact, so positional indices stay gap-free.
func (s *Service) Delete(ctx context.Context, username string, index int) error {
	txs, err := s.repo.Load(ctx, username)
	if err != nil {
		return fmt.Errorf("loading table: %w", err)
	}

	if index < 0 || index >= len(txs) {
		return ErrIndexOutOfRange
	}

	txs = append(txs[:index], txs[index+1:]...)

	if err := s.repo.Save(ctx, username, txs); err != nil {
		return fmt.Errorf("saving table: %w", err)
	}

	return nil
}

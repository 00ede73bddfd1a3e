package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/sky-memory/internal/session"
)

// LedgerEntry is one wallet movement.
type LedgerEntry struct {
	ID           string
	Amount       int // Positive for credits, negative for debits
	Reason       string
	BalanceAfter int
	CreatedAt    time.Time
}

// Balance returns the current wallet balance.
func (s *Store) Balance() (int, error) {
	var balance int
	if err := s.db.QueryRow("SELECT balance FROM wallet WHERE id = 1").Scan(&balance); err != nil {
		return 0, fmt.Errorf("storage: cannot read balance: %w", err)
	}
	return balance, nil
}

// Credit adds amount to the wallet and records a ledger entry.
// Returns the ledger reference.
func (s *Store) Credit(amount int, reason string) (string, error) {
	if amount < 0 {
		return "", fmt.Errorf("storage: negative credit %d", amount)
	}
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin credit: %w", err)
	}
	defer tx.Rollback()

	ref, balance, err := move(tx, amount, reason)
	if err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit credit: %w", err)
	}

	s.log.Info("wallet credited", "amount", amount, "reason", reason, "balance", balance, "ref", ref)
	return ref, nil
}

// Debit removes amount from the wallet. Returns ErrInsufficientFunds if
// the balance is too low.
func (s *Store) Debit(amount int, reason string) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin debit: %w", err)
	}
	defer tx.Rollback()

	ref, _, err := debit(tx, amount, reason)
	if err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit debit: %w", err)
	}
	return ref, nil
}

func debit(tx *sql.Tx, amount int, reason string) (string, int, error) {
	if amount < 0 {
		return "", 0, fmt.Errorf("storage: negative debit %d", amount)
	}
	var balance int
	if err := tx.QueryRow("SELECT balance FROM wallet WHERE id = 1").Scan(&balance); err != nil {
		return "", 0, fmt.Errorf("storage: cannot read balance: %w", err)
	}
	if balance < amount {
		return "", balance, fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, amount, balance)
	}
	return move(tx, -amount, reason)
}

// move applies a signed amount and writes the ledger row.
func move(tx *sql.Tx, amount int, reason string) (string, int, error) {
	if _, err := tx.Exec("UPDATE wallet SET balance = balance + ? WHERE id = 1", amount); err != nil {
		return "", 0, fmt.Errorf("storage: cannot update balance: %w", err)
	}
	var balance int
	if err := tx.QueryRow("SELECT balance FROM wallet WHERE id = 1").Scan(&balance); err != nil {
		return "", 0, fmt.Errorf("storage: cannot read balance: %w", err)
	}

	ref := uuid.NewString()
	if _, err := tx.Exec(
		"INSERT INTO ledger (id, amount, reason, balance_after) VALUES (?, ?, ?, ?)",
		ref, amount, reason, balance,
	); err != nil {
		return "", 0, fmt.Errorf("storage: cannot write ledger: %w", err)
	}
	return ref, balance, nil
}

// Ledger returns the most recent wallet movements, newest first.
func (s *Store) Ledger(limit int) ([]LedgerEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, amount, reason, balance_after, created_at
		 FROM ledger
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ledger: %w", err)
	}
	defer rows.Close()

	var entries []LedgerEntry
	for rows.Next() {
		var e LedgerEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Amount, &e.Reason, &e.BalanceAfter, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Wallet adapts the store to session.Wallet. Every credit is recorded
// with the given ledger reason.
type Wallet struct {
	store  *Store
	reason string
}

// Wallet returns a session wallet that credits with the given reason.
func (s *Store) Wallet(reason string) *Wallet {
	return &Wallet{store: s, reason: reason}
}

// Credit implements session.Wallet.
func (w *Wallet) Credit(amount int) error {
	_, err := w.store.Credit(amount, w.reason)
	return err
}

var _ session.Wallet = (*Wallet)(nil)

// Package storage persists ledger snapshots to SQLite. The ledger
// itself runs in memory; this package only loads the snapshot at
// startup and writes it back when a command finishes mutating.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/hualei/lingqian/internal/model"
)

// SQLiteStore holds the database handle for snapshot persistence.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (or creates) the database file and applies
// pending migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}
	if err := s.Migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadAll reads the persisted snapshot: all transactions and all custom
// categories. An empty database yields empty slices, not an error.
func (s *SQLiteStore) LoadAll(ctx context.Context) ([]model.Transaction, []model.Category, error) {
	transactions, err := s.loadTransactions(ctx)
	if err != nil {
		return nil, nil, err
	}
	categories, err := s.loadCustomCategories(ctx)
	if err != nil {
		return nil, nil, err
	}
	return transactions, categories, nil
}

func (s *SQLiteStore) loadTransactions(ctx context.Context) ([]model.Transaction, error) {
	query := `
		SELECT id, amount, category_id, type, date, note
		FROM transactions
		ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return transactions, nil
}

func (s *SQLiteStore) loadCustomCategories(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT id, name, icon, type
		FROM custom_categories
		ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		var catType string
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Icon, &catType); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cat.Type = model.TransactionType(catType)
		cat.IsCustom = true
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating custom categories: %w", err)
	}
	return categories, nil
}

// SaveAll atomically replaces the persisted snapshot with the given
// state. Amounts are stored as canonical decimal strings so no
// floating-point drift accumulates across save/load cycles.
func (s *SQLiteStore) SaveAll(ctx context.Context, transactions []model.Transaction, custom []model.Category) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM custom_categories`); err != nil {
		return fmt.Errorf("failed to clear custom categories: %w", err)
	}

	insertTxn, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (id, amount, category_id, type, date, note)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare transaction insert: %w", err)
	}
	defer func() { _ = insertTxn.Close() }()

	for _, txn := range transactions {
		_, err := insertTxn.ExecContext(ctx,
			txn.ID,
			txn.Amount.String(),
			txn.CategoryID,
			string(txn.Type),
			txn.Date.Format(dateLayout),
			txn.Note,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}
	}

	insertCat, err := tx.PrepareContext(ctx, `
		INSERT INTO custom_categories (id, name, icon, type)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare category insert: %w", err)
	}
	defer func() { _ = insertCat.Close() }()

	for _, cat := range custom {
		if _, err := insertCat.ExecContext(ctx, cat.ID, cat.Name, cat.Icon, string(cat.Type)); err != nil {
			return fmt.Errorf("failed to insert category %s: %w", cat.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

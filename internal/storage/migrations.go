package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hualei/lingqian/internal/model"
)

// dateLayout stores transaction dates with their local offset so
// day-level grouping survives a save/load round trip.
const dateLayout = time.RFC3339

// expectedSchemaVersion is the latest schema version the application
// expects.
const expectedSchemaVersion = 1

// migration represents a database schema migration.
type migration struct {
	up          func(*sql.Tx) error
	description string
	version     int
}

var migrations = []migration{
	{
		version:     1,
		description: "Initial schema",
		up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS transactions (
					id TEXT PRIMARY KEY,
					amount TEXT NOT NULL,
					category_id TEXT NOT NULL,
					type TEXT NOT NULL,
					date TEXT NOT NULL,
					note TEXT NOT NULL DEFAULT ''
				)`,
				`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,
				`CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category_id)`,

				`CREATE TABLE IF NOT EXISTS custom_categories (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					icon TEXT NOT NULL DEFAULT '',
					type TEXT NOT NULL
				)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the schema up to the expected version.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= version {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.version, err)
		}
		if err := m.up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.description, err)
		}
		// PRAGMA cannot be parameterized.
		if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, m.version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}

		slog.Debug("applied migration", "version", m.version, "description", m.description)
	}

	if len(migrations) > 0 && migrations[len(migrations)-1].version != expectedSchemaVersion {
		return fmt.Errorf("schema version mismatch: latest migration is %d, expected %d",
			migrations[len(migrations)-1].version, expectedSchemaVersion)
	}
	return nil
}

// scanTransaction reads one transaction row, parsing the decimal amount
// and the stored date.
func scanTransaction(rows *sql.Rows) (model.Transaction, error) {
	var txn model.Transaction
	var amount, txType, date string

	if err := rows.Scan(&txn.ID, &amount, &txn.CategoryID, &txType, &date, &txn.Note); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan transaction: %w", err)
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("corrupt amount %q for transaction %s: %w", amount, txn.ID, err)
	}
	txn.Amount = parsed

	when, err := time.Parse(dateLayout, date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("corrupt date %q for transaction %s: %w", date, txn.ID, err)
	}
	txn.Date = when
	txn.Type = model.TransactionType(txType)

	return txn, nil
}

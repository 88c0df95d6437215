package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hualei/lingqian/internal/common"
	"github.com/hualei/lingqian/internal/config"
	"github.com/hualei/lingqian/internal/ledger"
	"github.com/hualei/lingqian/internal/model"
	"github.com/hualei/lingqian/internal/storage"
)

// openLedger opens the snapshot database and loads it into an in-memory
// store. The caller must Close the returned SQLiteStore.
func openLedger(ctx context.Context) (*ledger.Store, *storage.SQLiteStore, error) {
	db, err := storage.NewSQLiteStore(config.DatabasePath())
	if err != nil {
		return nil, nil, common.NewUserError("无法打开账本数据库", err)
	}

	transactions, custom, err := db.LoadAll(ctx)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	store := ledger.New()
	store.Replace(transactions, custom)
	return store, db, nil
}

// saveLedger writes the current in-memory state back to the snapshot
// database. Called by every mutating command before it returns.
func saveLedger(ctx context.Context, store *ledger.Store, db *storage.SQLiteStore) error {
	transactions, custom := store.Snapshot()
	if err := db.SaveAll(ctx, transactions, custom); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	return nil
}

// parseTransactionType accepts the CLI spellings of a transaction type.
func parseTransactionType(s string) (model.TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "in", "收入":
		return model.TypeIncome, nil
	case "expense", "out", "支出":
		return model.TypeExpense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q (want income or expense)", s)
	}
}

// parseDate accepts YYYY-MM-DD, with empty input meaning today.
func parseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Now(), nil
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// parseAmount parses a positive decimal amount.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !amount.IsPositive() {
		return decimal.Zero, model.ErrInvalidAmount
	}
	return amount, nil
}

// formatAmount renders an amount with the sign implied by its type.
func formatAmount(txType model.TransactionType, amount decimal.Decimal) string {
	if txType == model.TypeIncome {
		return "+" + amount.StringFixed(2)
	}
	return "-" + amount.StringFixed(2)
}

package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hualei/lingqian/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_EmptyDatabase(t *testing.T) {
	store := newTestStore(t)

	transactions, categories, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, transactions)
	assert.Empty(t, categories)
}

func TestSQLiteStore_SaveAndLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	date := time.Date(2025, time.March, 10, 12, 30, 0, 0, time.Local)
	txn, err := model.NewTransaction(
		decimal.RequireFromString("30.50"), "food", model.TypeExpense, date, "午饭")
	require.NoError(t, err)

	income, err := model.NewTransaction(
		decimal.NewFromInt(5000), "salary", model.TypeIncome, date.AddDate(0, 0, -5), "工资")
	require.NoError(t, err)

	custom := model.NewCustomCategory("宠物", "🐱", model.TypeExpense)

	require.NoError(t, store.SaveAll(ctx, []model.Transaction{txn, income}, []model.Category{custom}))

	transactions, categories, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	require.Len(t, categories, 1)

	// LoadAll orders by date descending.
	got := transactions[0]
	assert.Equal(t, txn.ID, got.ID)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("30.50")),
		"amount round trip: got %s", got.Amount)
	assert.Equal(t, model.TypeExpense, got.Type)
	assert.Equal(t, "food", got.CategoryID)
	assert.Equal(t, "午饭", got.Note)
	assert.True(t, got.Date.Equal(date), "date round trip: got %s", got.Date)

	cat := categories[0]
	assert.Equal(t, custom.ID, cat.ID)
	assert.Equal(t, "宠物", cat.Name)
	assert.Equal(t, model.TypeExpense, cat.Type)
	assert.True(t, cat.IsCustom)
}

func TestSQLiteStore_SaveAllReplacesSnapshot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := model.NewTransaction(
		decimal.NewFromInt(10), "food", model.TypeExpense, time.Now(), "")
	require.NoError(t, err)
	require.NoError(t, store.SaveAll(ctx, []model.Transaction{first}, nil))

	second, err := model.NewTransaction(
		decimal.NewFromInt(20), "transport", model.TypeExpense, time.Now(), "")
	require.NoError(t, err)
	require.NoError(t, store.SaveAll(ctx, []model.Transaction{second}, nil))

	transactions, _, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1, "old snapshot must be replaced, not appended to")
	assert.Equal(t, second.ID, transactions[0].ID)
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)

	txn, err := model.NewTransaction(
		decimal.RequireFromString("99.99"), "shopping", model.TypeExpense, time.Now(), "鞋")
	require.NoError(t, err)
	require.NoError(t, store.SaveAll(ctx, []model.Transaction{txn}, nil))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	transactions, _, err := reopened.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, txn.ID, transactions[0].ID)
}

func TestNewSQLiteStore_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.Error(t, err)
}

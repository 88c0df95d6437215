// Package ledger holds the in-memory transaction repository and category
// catalog, plus the aggregation queries the UI layer reads from.
package ledger

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/hualei/lingqian/internal/common"
	"github.com/hualei/lingqian/internal/model"
)

// Store owns the transaction list and the custom category list. All
// mutation goes through its methods under a write lock; queries take a
// read lock and return copies, so callers never share mutable state.
type Store struct {
	transactions []model.Transaction
	custom       []model.Category
	defaults     []model.Category
	mu           sync.RWMutex
}

// New creates an empty store with the predefined category catalog.
func New() *Store {
	return &Store{defaults: model.DefaultCategories()}
}

// Replace swaps in a full snapshot, typically loaded from persistence at
// startup. The slices are copied.
func (s *Store) Replace(transactions []model.Transaction, custom []model.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]model.Transaction(nil), transactions...)
	s.custom = append([]model.Category(nil), custom...)
}

// Snapshot returns copies of the current transactions and custom
// categories for persistence.
func (s *Store) Snapshot() ([]model.Transaction, []model.Category) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Transaction(nil), s.transactions...),
		append([]model.Category(nil), s.custom...)
}

// AddTransaction appends a transaction. Non-positive amounts and unknown
// types are rejected so invalid entries cannot enter the ledger even if
// upstream validation is bypassed.
func (s *Store) AddTransaction(txn model.Transaction) error {
	if !txn.Amount.IsPositive() {
		return model.ErrInvalidAmount
	}
	if !txn.Type.Valid() {
		return model.ErrInvalidType
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, txn)

	slog.Debug("transaction added",
		"id", txn.ID,
		"type", txn.Type,
		"amount", txn.Amount.String())
	return nil
}

// UpdateTransaction replaces the stored transaction with a matching ID,
// preserving the stored ID and type. Returns false when no transaction
// matches; a miss is not an error.
func (s *Store) UpdateTransaction(txn model.Transaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == txn.ID {
			txn.Type = s.transactions[i].Type
			s.transactions[i] = txn
			return true
		}
	}
	return false
}

// DeleteTransaction removes the transaction with the given ID. Returns
// false when no transaction matches; a miss is not an error.
func (s *Store) DeleteTransaction(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// Transaction returns the transaction with the given ID.
func (s *Store) Transaction(id string) (model.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, txn := range s.transactions {
		if txn.ID == id {
			return txn, true
		}
	}
	return model.Transaction{}, false
}

// Transactions returns all transactions, most recent date first.
func (s *Store) Transactions() []model.Transaction {
	return s.Filtered(model.FilterAll{})
}

// Filtered returns the transactions matching the filter, most recent
// date first.
func (s *Store) Filtered(filter model.Filter) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Transaction
	for _, txn := range s.transactions {
		if filter.Matches(txn) {
			out = append(out, txn)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Categories returns the full catalog: predefined categories first in
// fixed order, then custom categories in creation order.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Category, 0, len(s.defaults)+len(s.custom))
	out = append(out, s.defaults...)
	out = append(out, s.custom...)
	return out
}

// CustomCategories returns only the user-defined categories.
func (s *Store) CustomCategories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Category(nil), s.custom...)
}

// AddCustomCategory creates and appends a user-defined category.
// Duplicate names are permitted.
func (s *Store) AddCustomCategory(name, icon string, txType model.TransactionType) model.Category {
	cat := model.NewCustomCategory(name, icon, txType)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.custom = append(s.custom, cat)

	slog.Debug("custom category added", "id", cat.ID, "name", cat.Name)
	return cat
}

// DeleteCategoryAndReassign removes a custom category and rewires every
// transaction referencing it to the Uncategorized sentinel, so no
// dangling reference survives. Returns ErrCategoryProtected for
// predefined categories and ErrNotFound for unknown ids; either way
// nothing changes.
func (s *Store) DeleteCategoryAndReassign(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cat := range s.defaults {
		if cat.ID == id {
			return common.ErrCategoryProtected
		}
	}

	idx := -1
	for i := range s.custom {
		if s.custom[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return common.ErrNotFound
	}
	s.custom = append(s.custom[:idx], s.custom[idx+1:]...)

	reassigned := 0
	for i := range s.transactions {
		if s.transactions[i].CategoryID == id {
			s.transactions[i].CategoryID = model.Uncategorized.ID
			reassigned++
		}
	}

	slog.Debug("category deleted", "id", id, "reassigned", reassigned)
	return nil
}

// Category resolves a category ID against the catalog. Unknown IDs,
// including IDs of deleted categories, resolve to the Uncategorized
// sentinel rather than failing.
func (s *Store) Category(id string) model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categoryLocked(id)
}

func (s *Store) categoryLocked(id string) model.Category {
	for _, cat := range s.defaults {
		if cat.ID == id {
			return cat
		}
	}
	for _, cat := range s.custom {
		if cat.ID == id {
			return cat
		}
	}
	return model.Uncategorized
}

// CategoryByName finds a category by display name and compatible type.
func (s *Store) CategoryByName(name string, txType model.TransactionType) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cat := range s.defaults {
		if cat.Name == name && cat.Type == txType {
			return cat, true
		}
	}
	for _, cat := range s.custom {
		if cat.Name == name && cat.Type == txType {
			return cat, true
		}
	}
	return model.Category{}, false
}

// ResolveCategory maps a parsed category name to a concrete category of
// the given type, falling back to the type's default bucket when the
// name is empty or matches nothing.
func (s *Store) ResolveCategory(name string, txType model.TransactionType) model.Category {
	if name != "" {
		if cat, ok := s.CategoryByName(name, txType); ok {
			return cat
		}
	}
	if txType == model.TypeIncome {
		return s.Category(model.DefaultIncomeCategoryID)
	}
	return s.Category(model.DefaultExpenseCategoryID)
}

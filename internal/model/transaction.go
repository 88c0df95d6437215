// Package model defines the core domain types shared across the application.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is income or expense.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known variants.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Label returns the display label for the type.
func (t TransactionType) Label() string {
	if t == TypeIncome {
		return "收入"
	}
	return "支出"
}

// Transaction represents a single recorded income or expense entry.
// Amount is always positive; Type carries the sign semantics.
type Transaction struct {
	Date       time.Time
	ID         string
	CategoryID string
	Note       string
	Type       TransactionType
	Amount     decimal.Decimal
}

// NewTransaction constructs a transaction with a fresh ID. It rejects
// non-positive amounts and unknown types so that invalid entries can
// never enter the ledger.
func NewTransaction(amount decimal.Decimal, categoryID string, txType TransactionType, date time.Time, note string) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	if !txType.Valid() {
		return Transaction{}, ErrInvalidType
	}
	return Transaction{
		ID:         uuid.NewString(),
		Amount:     amount,
		CategoryID: categoryID,
		Type:       txType,
		Date:       date,
		Note:       note,
	}, nil
}

// SameMonth reports whether the transaction falls in the same calendar
// year and month as the reference date. Month granularity, not a
// rolling window.
func (t Transaction) SameMonth(ref time.Time) bool {
	return t.Date.Year() == ref.Year() && t.Date.Month() == ref.Month()
}

// SameDay reports whether the transaction falls on the same calendar day
// as the reference date.
func (t Transaction) SameDay(ref time.Time) bool {
	y1, m1, d1 := t.Date.Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

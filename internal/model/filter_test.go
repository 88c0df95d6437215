package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testTxn(txType TransactionType, categoryID string, date time.Time) Transaction {
	return Transaction{
		ID:         "txn",
		Amount:     decimal.NewFromInt(10),
		CategoryID: categoryID,
		Type:       txType,
		Date:       date,
	}
}

func TestFilter_Matches(t *testing.T) {
	food := Category{ID: "food", Name: "餐饮", Type: TypeExpense}
	jan31 := time.Date(2025, time.January, 31, 10, 0, 0, 0, time.Local)
	feb1 := time.Date(2025, time.February, 1, 10, 0, 0, 0, time.Local)

	tests := []struct {
		filter Filter
		txn    Transaction
		name   string
		want   bool
	}{
		{
			name:   "all matches anything",
			filter: FilterAll{},
			txn:    testTxn(TypeIncome, "salary", jan31),
			want:   true,
		},
		{
			name:   "type filter matches same type",
			filter: FilterByType{Type: TypeExpense},
			txn:    testTxn(TypeExpense, "food", jan31),
			want:   true,
		},
		{
			name:   "type filter rejects other type",
			filter: FilterByType{Type: TypeExpense},
			txn:    testTxn(TypeIncome, "salary", jan31),
			want:   false,
		},
		{
			name:   "category filter matches by id",
			filter: FilterByCategory{Category: food},
			txn:    testTxn(TypeExpense, "food", jan31),
			want:   true,
		},
		{
			name:   "category filter rejects other category",
			filter: FilterByCategory{Category: food},
			txn:    testTxn(TypeExpense, "transport", jan31),
			want:   false,
		},
		{
			name:   "year filter matches within year",
			filter: FilterByYear{Year: 2025},
			txn:    testTxn(TypeExpense, "food", jan31),
			want:   true,
		},
		{
			name:   "year filter rejects other year",
			filter: FilterByYear{Year: 2024},
			txn:    testTxn(TypeExpense, "food", jan31),
			want:   false,
		},
		{
			name:   "month filter does not leak across month boundary",
			filter: FilterByMonth{Year: 2025, Month: time.January},
			txn:    testTxn(TypeExpense, "food", feb1),
			want:   false,
		},
		{
			name:   "month filter matches last day of month",
			filter: FilterByMonth{Year: 2025, Month: time.January},
			txn:    testTxn(TypeExpense, "food", jan31),
			want:   true,
		},
		{
			name:   "year and type must both match",
			filter: FilterByYearAndType{Year: 2025, Type: TypeIncome},
			txn:    testTxn(TypeExpense, "food", jan31),
			want:   false,
		},
		{
			name:   "month and type matches both",
			filter: FilterByMonthAndType{Year: 2025, Month: time.February, Type: TypeExpense},
			txn:    testTxn(TypeExpense, "food", feb1),
			want:   true,
		},
		{
			name:   "year and category matches both",
			filter: FilterByYearAndCategory{Year: 2025, Category: food},
			txn:    testTxn(TypeExpense, "food", jan31),
			want:   true,
		},
		{
			name:   "month and category rejects wrong month",
			filter: FilterByMonthAndCategory{Year: 2025, Month: time.January, Category: food},
			txn:    testTxn(TypeExpense, "food", feb1),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.txn); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_DisplayName(t *testing.T) {
	food := Category{ID: "food", Name: "餐饮", Type: TypeExpense}

	tests := []struct {
		filter Filter
		want   string
	}{
		{FilterAll{}, "全部"},
		{FilterByType{Type: TypeIncome}, "收入"},
		{FilterByCategory{Category: food}, "餐饮"},
		{FilterByYear{Year: 2025}, "2025年"},
		{FilterByMonth{Year: 2025, Month: time.March}, "2025年3月"},
		{FilterByMonthAndType{Year: 2025, Month: time.March, Type: TypeExpense}, "2025年3月 · 支出"},
	}

	for _, tt := range tests {
		if got := tt.filter.DisplayName(); got != tt.want {
			t.Errorf("DisplayName() = %q, want %q", got, tt.want)
		}
	}
}

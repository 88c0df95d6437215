package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hualei/lingqian/internal/ledger"
	"github.com/hualei/lingqian/internal/model"
)

func TestBuildFilter(t *testing.T) {
	store := ledger.New()
	pets := store.AddCustomCategory("宠物", "🐱", model.TypeExpense)

	tests := []struct {
		want     model.Filter
		name     string
		category string
		txType   model.TransactionType
		year     int
		month    int
	}{
		{
			name: "no flags means all",
			want: model.FilterAll{},
		},
		{
			name:   "type only",
			txType: model.TypeIncome,
			want:   model.FilterByType{Type: model.TypeIncome},
		},
		{
			name:     "category only",
			category: "宠物",
			want:     model.FilterByCategory{Category: pets},
		},
		{
			name: "year only",
			year: 2025,
			want: model.FilterByYear{Year: 2025},
		},
		{
			name:  "year and month",
			year:  2025,
			month: 3,
			want:  model.FilterByMonth{Year: 2025, Month: time.March},
		},
		{
			name:   "year and type",
			year:   2025,
			txType: model.TypeExpense,
			want:   model.FilterByYearAndType{Year: 2025, Type: model.TypeExpense},
		},
		{
			name:   "year month and type",
			year:   2025,
			month:  3,
			txType: model.TypeExpense,
			want:   model.FilterByMonthAndType{Year: 2025, Month: time.March, Type: model.TypeExpense},
		},
		{
			name:     "year and category",
			year:     2025,
			category: "宠物",
			want:     model.FilterByYearAndCategory{Year: 2025, Category: pets},
		},
		{
			name:     "year month and category",
			year:     2025,
			month:    3,
			category: "宠物",
			want:     model.FilterByMonthAndCategory{Year: 2025, Month: time.March, Category: pets},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildFilter(store, tt.txType, tt.category, tt.year, tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildFilter_Errors(t *testing.T) {
	store := ledger.New()

	_, err := buildFilter(store, model.TypeExpense, "餐饮", 0, 0)
	assert.Error(t, err, "type and category cannot combine")

	_, err = buildFilter(store, "", "", 0, 3)
	assert.Error(t, err, "month without year")

	_, err = buildFilter(store, "", "", 2025, 13)
	assert.Error(t, err, "month out of range")

	_, err = buildFilter(store, "", "不存在", 0, 0)
	assert.Error(t, err, "unknown category")
}

func TestParseHelpers(t *testing.T) {
	txType, err := parseTransactionType("收入")
	require.NoError(t, err)
	assert.Equal(t, model.TypeIncome, txType)

	_, err = parseTransactionType("loan")
	assert.Error(t, err)

	d, err := parseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 10, d.Day())

	_, err = parseDate("03/10/2025")
	assert.Error(t, err)

	amount, err := parseAmount("30.50")
	require.NoError(t, err)
	assert.Equal(t, "30.50", amount.StringFixed(2))

	_, err = parseAmount("-1")
	assert.Error(t, err)

	_, err = parseAmount("abc")
	assert.Error(t, err)
}

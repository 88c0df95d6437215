package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hualei/lingqian/internal/model"
)

// Seed populates the store with a small starter dataset spread over the
// current and previous month, mirroring what the app ships with on
// first launch.
func (s *Store) Seed(now time.Time) {
	entries := []struct {
		amount     string
		categoryID string
		note       string
		txType     model.TransactionType
		daysAgo    int
	}{
		{"8500", "salary", "月工资", model.TypeIncome, 35},
		{"32.50", "food", "午饭", model.TypeExpense, 34},
		{"128", "shopping", "日用品", model.TypeExpense, 30},
		{"8500", "salary", "月工资", model.TypeIncome, 5},
		{"2200", "housing", "房租", model.TypeExpense, 5},
		{"18.80", "transport", "打车", model.TypeExpense, 3},
		{"45", "entertainment", "电影票", model.TypeExpense, 2},
		{"26.30", "food", "晚饭", model.TypeExpense, 1},
		{"88", "red-packet", "生日红包", model.TypeIncome, 1},
		{"15.50", "food", "早餐和咖啡", model.TypeExpense, 0},
	}

	for _, e := range entries {
		txn, err := model.NewTransaction(
			decimal.RequireFromString(e.amount),
			e.categoryID,
			e.txType,
			now.AddDate(0, 0, -e.daysAgo),
			e.note,
		)
		if err != nil {
			continue
		}
		_ = s.AddTransaction(txn)
	}
}

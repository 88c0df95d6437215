package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hualei/lingqian/internal/model"
)

// TotalIncome sums all income amounts.
func (s *Store) TotalIncome() decimal.Decimal {
	return s.sum(func(t model.Transaction) bool { return t.Type == model.TypeIncome })
}

// TotalExpense sums all expense amounts.
func (s *Store) TotalExpense() decimal.Decimal {
	return s.sum(func(t model.Transaction) bool { return t.Type == model.TypeExpense })
}

// Balance is total income minus total expense.
func (s *Store) Balance() decimal.Decimal {
	return s.TotalIncome().Sub(s.TotalExpense())
}

// MonthlyIncome sums income within the calendar month of ref.
func (s *Store) MonthlyIncome(ref time.Time) decimal.Decimal {
	return s.sum(func(t model.Transaction) bool {
		return t.Type == model.TypeIncome && t.SameMonth(ref)
	})
}

// MonthlyExpense sums expense within the calendar month of ref.
func (s *Store) MonthlyExpense(ref time.Time) decimal.Decimal {
	return s.sum(func(t model.Transaction) bool {
		return t.Type == model.TypeExpense && t.SameMonth(ref)
	})
}

// DailyIncome sums income on the exact calendar day of ref.
func (s *Store) DailyIncome(ref time.Time) decimal.Decimal {
	return s.sum(func(t model.Transaction) bool {
		return t.Type == model.TypeIncome && t.SameDay(ref)
	})
}

// DailyExpense sums expense on the exact calendar day of ref.
func (s *Store) DailyExpense(ref time.Time) decimal.Decimal {
	return s.sum(func(t model.Transaction) bool {
		return t.Type == model.TypeExpense && t.SameDay(ref)
	})
}

func (s *Store) sum(include func(model.Transaction) bool) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, txn := range s.transactions {
		if include(txn) {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// MonthlyCategoryTotals returns, per category ID, the summed amount of
// transactions of the given type in the calendar month of ref.
func (s *Store) MonthlyCategoryTotals(ref time.Time, txType model.TransactionType) map[string]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]decimal.Decimal)
	for _, txn := range s.transactions {
		if txn.Type != txType || !txn.SameMonth(ref) {
			continue
		}
		id := s.categoryLocked(txn.CategoryID).ID
		totals[id] = totals[id].Add(txn.Amount)
	}
	return totals
}

// MonthOverMonthChange is the difference between the given month's sum
// for the type and the previous calendar month's sum.
func (s *Store) MonthOverMonthChange(ref time.Time, txType model.TransactionType) decimal.Decimal {
	prev := previousMonth(ref)
	if txType == model.TypeIncome {
		return s.MonthlyIncome(ref).Sub(s.MonthlyIncome(prev))
	}
	return s.MonthlyExpense(ref).Sub(s.MonthlyExpense(prev))
}

// previousMonth returns a date inside the calendar month before ref.
// Anchored to the first of the month so that day-31 references do not
// skip short months.
func previousMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, -1, 0)
}

// AvailableYears returns the distinct years present across all
// transactions, newest first.
func (s *Store) AvailableYears() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int]struct{})
	for _, txn := range s.transactions {
		seen[txn.Date.Year()] = struct{}{}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// AvailableMonths returns the distinct months with transactions in the
// given year, ascending. Ordering for display is the caller's concern.
func (s *Store) AvailableMonths(year int) []time.Month {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[time.Month]struct{})
	for _, txn := range s.transactions {
		if txn.Date.Year() == year {
			seen[txn.Date.Month()] = struct{}{}
		}
	}

	months := make([]time.Month, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months
}

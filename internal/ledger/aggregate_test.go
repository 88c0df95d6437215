package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hualei/lingqian/internal/model"
)

func seedStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	entries := []struct {
		amount     string
		categoryID string
		txType     model.TransactionType
		date       time.Time
	}{
		{"5000", "salary", model.TypeIncome, date(2025, time.January, 10)},
		{"30.50", "food", model.TypeExpense, date(2025, time.January, 15)},
		{"12.73", "transport", model.TypeExpense, date(2025, time.January, 31)},
		{"200", "red-packet", model.TypeIncome, date(2025, time.February, 1)},
		{"88.20", "food", model.TypeExpense, date(2025, time.February, 1)},
		{"1500", "housing", model.TypeExpense, date(2024, time.December, 1)},
	}
	for _, e := range entries {
		txn := mustTxn(t, e.amount, e.categoryID, e.txType, e.date, "")
		if err := s.AddTransaction(txn); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestStore_Totals(t *testing.T) {
	s := seedStore(t)

	wantIncome := decimal.RequireFromString("5200")
	wantExpense := decimal.RequireFromString("1631.43")

	if got := s.TotalIncome(); !got.Equal(wantIncome) {
		t.Errorf("TotalIncome = %s, want %s", got, wantIncome)
	}
	if got := s.TotalExpense(); !got.Equal(wantExpense) {
		t.Errorf("TotalExpense = %s, want %s", got, wantExpense)
	}
	if got := s.Balance(); !got.Equal(wantIncome.Sub(wantExpense)) {
		t.Errorf("Balance = %s, want %s", got, wantIncome.Sub(wantExpense))
	}
}

func TestStore_BalanceIdentity(t *testing.T) {
	s := seedStore(t)
	// Identity must survive further mutation.
	extra := mustTxn(t, "0.01", "food", model.TypeExpense, date(2025, time.March, 3), "")
	_ = s.AddTransaction(extra)

	if !s.Balance().Equal(s.TotalIncome().Sub(s.TotalExpense())) {
		t.Errorf("balance identity broken: %s != %s - %s",
			s.Balance(), s.TotalIncome(), s.TotalExpense())
	}
}

func TestStore_MonthlyTotals_BoundaryDoesNotLeak(t *testing.T) {
	s := seedStore(t)
	january := date(2025, time.January, 20)
	february := date(2025, time.February, 20)

	// Jan 31 expense stays in January; Feb 1 expense stays in February.
	if got, want := s.MonthlyExpense(january), decimal.RequireFromString("43.23"); !got.Equal(want) {
		t.Errorf("MonthlyExpense(Jan) = %s, want %s", got, want)
	}
	if got, want := s.MonthlyExpense(february), decimal.RequireFromString("88.20"); !got.Equal(want) {
		t.Errorf("MonthlyExpense(Feb) = %s, want %s", got, want)
	}
	if got, want := s.MonthlyIncome(january), decimal.RequireFromString("5000"); !got.Equal(want) {
		t.Errorf("MonthlyIncome(Jan) = %s, want %s", got, want)
	}
	if got, want := s.MonthlyIncome(february), decimal.RequireFromString("200"); !got.Equal(want) {
		t.Errorf("MonthlyIncome(Feb) = %s, want %s", got, want)
	}
}

func TestStore_DailyTotals(t *testing.T) {
	s := seedStore(t)
	feb1 := date(2025, time.February, 1)

	if got, want := s.DailyExpense(feb1), decimal.RequireFromString("88.20"); !got.Equal(want) {
		t.Errorf("DailyExpense = %s, want %s", got, want)
	}
	if got, want := s.DailyIncome(feb1), decimal.RequireFromString("200"); !got.Equal(want) {
		t.Errorf("DailyIncome = %s, want %s", got, want)
	}
	if got := s.DailyExpense(date(2025, time.February, 2)); !got.IsZero() {
		t.Errorf("DailyExpense on empty day = %s, want 0", got)
	}
}

func TestStore_MonthlyCategoryTotals(t *testing.T) {
	s := seedStore(t)
	january := date(2025, time.January, 1)

	got := s.MonthlyCategoryTotals(january, model.TypeExpense)
	if len(got) != 2 {
		t.Fatalf("category count = %d, want 2 (%v)", len(got), got)
	}
	if !got["food"].Equal(decimal.RequireFromString("30.50")) {
		t.Errorf("food = %s, want 30.50", got["food"])
	}
	if !got["transport"].Equal(decimal.RequireFromString("12.73")) {
		t.Errorf("transport = %s, want 12.73", got["transport"])
	}

	income := s.MonthlyCategoryTotals(january, model.TypeIncome)
	if len(income) != 1 || !income["salary"].Equal(decimal.NewFromInt(5000)) {
		t.Errorf("income totals = %v", income)
	}
}

func TestStore_MonthOverMonthChange(t *testing.T) {
	s := seedStore(t)
	february := date(2025, time.February, 10)

	// February expense 88.20 vs January 43.23.
	want := decimal.RequireFromString("44.97")
	if got := s.MonthOverMonthChange(february, model.TypeExpense); !got.Equal(want) {
		t.Errorf("MonthOverMonthChange = %s, want %s", got, want)
	}

	// January vs December: 43.23 - 1500.
	january := date(2025, time.January, 10)
	want = decimal.RequireFromString("-1456.77")
	if got := s.MonthOverMonthChange(january, model.TypeExpense); !got.Equal(want) {
		t.Errorf("MonthOverMonthChange(Jan) = %s, want %s", got, want)
	}
}

func TestStore_AvailableYears(t *testing.T) {
	s := seedStore(t)
	got := s.AvailableYears()
	if len(got) != 2 || got[0] != 2025 || got[1] != 2024 {
		t.Errorf("AvailableYears = %v, want [2025 2024]", got)
	}
}

func TestStore_AvailableMonths(t *testing.T) {
	s := seedStore(t)
	got := s.AvailableMonths(2025)
	if len(got) != 2 || got[0] != time.January || got[1] != time.February {
		t.Errorf("AvailableMonths(2025) = %v, want [January February]", got)
	}
	if months := s.AvailableMonths(2023); len(months) != 0 {
		t.Errorf("AvailableMonths(2023) = %v, want empty", months)
	}
}

func TestStore_Seed(t *testing.T) {
	s := New()
	s.Seed(date(2025, time.June, 15))

	txns := s.Transactions()
	if len(txns) == 0 {
		t.Fatal("seed produced no transactions")
	}
	if !s.Balance().Equal(s.TotalIncome().Sub(s.TotalExpense())) {
		t.Error("balance identity broken on seed data")
	}
	if years := s.AvailableYears(); len(years) == 0 {
		t.Error("seed data has no years")
	}
}

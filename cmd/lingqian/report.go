package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/hualei/lingqian/internal/cli"
	"github.com/hualei/lingqian/internal/ledger"
	"github.com/hualei/lingqian/internal/model"
)

func reportCmd() *cobra.Command {
	var (
		yearFlag  int
		monthFlag int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show totals and a monthly breakdown",
		Long: `Show overall totals plus a month summary: income, expense,
month-over-month change and per-category expense breakdown. Defaults
to the current month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			now := time.Now()
			year, month := yearFlag, monthFlag
			if year == 0 {
				year = now.Year()
			}
			if month == 0 {
				month = int(now.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid month %d", month)
			}
			ref := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)

			fmt.Println(cli.FormatTitle("总览"))
			fmt.Printf("  收入 %s  支出 %s  结余 %s\n",
				cli.IncomeStyle.Render(store.TotalIncome().StringFixed(2)),
				cli.ExpenseStyle.Render(store.TotalExpense().StringFixed(2)),
				store.Balance().StringFixed(2))
			fmt.Printf("  今日收入 %s  今日支出 %s\n\n",
				cli.IncomeStyle.Render(store.DailyIncome(now).StringFixed(2)),
				cli.ExpenseStyle.Render(store.DailyExpense(now).StringFixed(2)))

			income := store.MonthlyIncome(ref)
			expense := store.MonthlyExpense(ref)
			delta := store.MonthOverMonthChange(ref, model.TypeExpense)

			fmt.Println(cli.FormatTitle(fmt.Sprintf("%d年%d月", year, month)))
			fmt.Printf("  收入 %s  支出 %s  环比 %s\n\n",
				cli.IncomeStyle.Render(income.StringFixed(2)),
				cli.ExpenseStyle.Render(expense.StringFixed(2)),
				formatDelta(delta))

			printBreakdown(store, ref, expense)

			if years := store.AvailableYears(); len(years) > 0 {
				fmt.Printf("\n%s", cli.SubtleStyle.Render("有记录的年份:"))
				for _, y := range years {
					fmt.Printf(" %d", y)
				}
				fmt.Println()
			}
			if months := store.AvailableMonths(year); len(months) > 0 {
				fmt.Printf("%s", cli.SubtleStyle.Render(fmt.Sprintf("%d年有记录的月份:", year)))
				for _, m := range months {
					fmt.Printf(" %d月", int(m))
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&yearFlag, "year", "y", 0, "calendar year (default current)")
	cmd.Flags().IntVarP(&monthFlag, "month", "m", 0, "month 1-12 (default current)")

	return cmd
}

// printBreakdown renders the month's expense totals per category,
// largest first, with each category's share of the month.
func printBreakdown(store *ledger.Store, ref time.Time, monthTotal decimal.Decimal) {
	totals := store.MonthlyCategoryTotals(ref, model.TypeExpense)
	if len(totals) == 0 {
		fmt.Println(cli.InfoStyle.Render("  本月没有支出记录。"))
		return
	}

	type row struct {
		category model.Category
		amount   decimal.Decimal
	}
	rows := make([]row, 0, len(totals))
	for id, amount := range totals {
		rows = append(rows, row{category: store.Category(id), amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].amount.Equal(rows[j].amount) {
			return rows[i].amount.GreaterThan(rows[j].amount)
		}
		return rows[i].category.Name < rows[j].category.Name
	})

	fmt.Println(cli.ChartIcon + " 支出构成")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	hundred := decimal.NewFromInt(100)
	for _, r := range rows {
		share := ""
		if monthTotal.IsPositive() {
			share = r.amount.Div(monthTotal).Mul(hundred).StringFixed(1) + "%"
		}
		fmt.Fprintf(w, "  %s %s\t%s\t%s\n",
			r.category.Icon, r.category.Name,
			r.amount.StringFixed(2),
			cli.SubtleStyle.Render(share))
	}
}

// formatDelta renders a signed month-over-month change.
func formatDelta(delta decimal.Decimal) string {
	switch {
	case delta.IsPositive():
		return cli.ExpenseStyle.Render("+" + delta.StringFixed(2))
	case delta.IsNegative():
		return cli.IncomeStyle.Render(delta.StringFixed(2))
	default:
		return "0.00"
	}
}

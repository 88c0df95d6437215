package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/hualei/lingqian/internal/cli"
	"github.com/hualei/lingqian/internal/ledger"
	"github.com/hualei/lingqian/internal/model"
)

func listCmd() *cobra.Command {
	var (
		typeFlag     string
		categoryFlag string
		yearFlag     int
		monthFlag    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List transactions, most recent first. Combine --type, --category,
--year and --month to narrow the view.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			var txType model.TransactionType
			if cmd.Flags().Changed("type") {
				txType, err = parseTransactionType(typeFlag)
				if err != nil {
					return err
				}
			}

			filter, err := buildFilter(store, txType, categoryFlag, yearFlag, monthFlag)
			if err != nil {
				return err
			}

			transactions := store.Filtered(filter)
			fmt.Println(cli.FormatTitle(filter.DisplayName()))
			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("日期"),
				cli.TableHeaderStyle.Render("分类"),
				cli.TableHeaderStyle.Render("金额"),
				cli.TableHeaderStyle.Render("备注"),
				cli.TableHeaderStyle.Render("ID"))

			for _, txn := range transactions {
				cat := store.Category(txn.CategoryID)
				amount := formatAmount(txn.Type, txn.Amount)
				if txn.Type == model.TypeIncome {
					amount = cli.IncomeStyle.Render(amount)
				} else {
					amount = cli.ExpenseStyle.Render(amount)
				}
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
					txn.Date.Format("2006-01-02"),
					cat.Icon, cat.Name,
					amount,
					txn.Note,
					cli.SubtleStyle.Render(txn.ID))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "income or expense")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "category name")
	cmd.Flags().IntVarP(&yearFlag, "year", "y", 0, "calendar year, e.g. 2025")
	cmd.Flags().IntVarP(&monthFlag, "month", "m", 0, "month 1-12 (requires --year)")

	return cmd
}

// buildFilter maps the list flags onto the closed filter variants.
// txType is empty when --type was not given; categoryName is empty when
// --category was not given; year/month are zero when absent.
func buildFilter(store *ledger.Store, txType model.TransactionType, categoryName string, year, month int) (model.Filter, error) {
	hasType := txType != ""
	hasCategory := categoryName != ""
	hasYear := year != 0
	hasMonth := month != 0

	if hasType && hasCategory {
		return nil, fmt.Errorf("--type and --category cannot be combined")
	}
	if hasMonth && !hasYear {
		return nil, fmt.Errorf("--month requires --year")
	}
	if hasMonth && (month < 1 || month > 12) {
		return nil, fmt.Errorf("invalid month %d", month)
	}

	var category model.Category
	if hasCategory {
		found := false
		for _, cat := range store.Categories() {
			if cat.Name == categoryName {
				category = cat
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no category named %q", categoryName)
		}
	}

	switch {
	case hasYear && hasMonth && hasType:
		return model.FilterByMonthAndType{Year: year, Month: time.Month(month), Type: txType}, nil
	case hasYear && hasMonth && hasCategory:
		return model.FilterByMonthAndCategory{Year: year, Month: time.Month(month), Category: category}, nil
	case hasYear && hasMonth:
		return model.FilterByMonth{Year: year, Month: time.Month(month)}, nil
	case hasYear && hasType:
		return model.FilterByYearAndType{Year: year, Type: txType}, nil
	case hasYear && hasCategory:
		return model.FilterByYearAndCategory{Year: year, Category: category}, nil
	case hasYear:
		return model.FilterByYear{Year: year}, nil
	case hasType:
		return model.FilterByType{Type: txType}, nil
	case hasCategory:
		return model.FilterByCategory{Category: category}, nil
	default:
		return model.FilterAll{}, nil
	}
}

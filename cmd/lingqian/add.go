package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hualei/lingqian/internal/cli"
	"github.com/hualei/lingqian/internal/model"
)

func addCmd() *cobra.Command {
	var (
		amountFlag   string
		typeFlag     string
		categoryFlag string
		dateFlag     string
		noteFlag     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long:  `Record an income or expense transaction with an amount, category, date and optional note.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(amountFlag)
			if err != nil {
				return err
			}
			txType, err := parseTransactionType(typeFlag)
			if err != nil {
				return err
			}
			date, err := parseDate(dateFlag)
			if err != nil {
				return err
			}

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			category, ok := store.CategoryByName(categoryFlag, txType)
			if !ok {
				fmt.Println(cli.FormatError(fmt.Sprintf("no %s category named %q", txType.Label(), categoryFlag)))
				fmt.Println(cli.SubtleStyle.Render("Available categories:"))
				for _, cat := range store.Categories() {
					if cat.Type == txType {
						fmt.Printf("  %s %s\n", cat.Icon, cat.Name)
					}
				}
				return fmt.Errorf("unknown category %q", categoryFlag)
			}

			txn, err := model.NewTransaction(amount, category.ID, txType, date, noteFlag)
			if err != nil {
				return err
			}
			if err := store.AddTransaction(txn); err != nil {
				return err
			}
			if err := saveLedger(ctx, store, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("recorded %s %s %s",
				category.Name, formatAmount(txType, amount), txn.Date.Format("2006-01-02"))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountFlag, "amount", "a", "", "amount, e.g. 30.50")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "expense", "income or expense")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "category name, e.g. 餐饮")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "date YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&noteFlag, "note", "n", "", "free-text note")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

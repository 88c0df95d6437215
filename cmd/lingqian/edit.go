package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hualei/lingqian/internal/cli"
)

func editCmd() *cobra.Command {
	var (
		amountFlag   string
		categoryFlag string
		dateFlag     string
		noteFlag     string
	)

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Edit the amount, category, date or note of an existing transaction.
The transaction's id and type never change.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			txn, ok := store.Transaction(args[0])
			if !ok {
				fmt.Println(cli.FormatWarning("no transaction with that id; nothing changed"))
				return nil
			}

			if cmd.Flags().Changed("amount") {
				amount, err := parseAmount(amountFlag)
				if err != nil {
					return err
				}
				txn.Amount = amount
			}
			if cmd.Flags().Changed("category") {
				category, ok := store.CategoryByName(categoryFlag, txn.Type)
				if !ok {
					return fmt.Errorf("no %s category named %q", txn.Type.Label(), categoryFlag)
				}
				txn.CategoryID = category.ID
			}
			if cmd.Flags().Changed("date") {
				date, err := parseDate(dateFlag)
				if err != nil {
					return err
				}
				txn.Date = date
			}
			if cmd.Flags().Changed("note") {
				txn.Note = noteFlag
			}

			store.UpdateTransaction(txn)
			if err := saveLedger(ctx, store, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("transaction updated"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountFlag, "amount", "a", "", "new amount")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "new category name")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "new date YYYY-MM-DD")
	cmd.Flags().StringVarP(&noteFlag, "note", "n", "", "new note")

	return cmd
}

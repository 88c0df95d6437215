package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hualei/lingqian/internal/cli"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if !store.DeleteTransaction(args[0]) {
				fmt.Println(cli.FormatWarning("no transaction with that id; nothing changed"))
				return nil
			}
			if err := saveLedger(ctx, store, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("transaction deleted"))
			return nil
		},
	}
}

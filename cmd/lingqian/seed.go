package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hualei/lingqian/internal/cli"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample starter data",
		Long:  `Add a small set of sample transactions, the same starter data the app ships with.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			before := len(store.Transactions())
			store.Seed(time.Now())
			added := len(store.Transactions()) - before

			if err := saveLedger(ctx, store, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("added %d sample transactions", added)))
			return nil
		},
	}
}

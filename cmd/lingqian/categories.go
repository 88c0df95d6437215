package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hualei/lingqian/internal/cli"
	"github.com/hualei/lingqian/internal/common"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List the category catalog and add or delete custom categories.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("分类"),
				cli.TableHeaderStyle.Render("类型"),
				cli.TableHeaderStyle.Render("来源"),
				cli.TableHeaderStyle.Render("ID"))

			for _, cat := range store.Categories() {
				source := "内置"
				if cat.IsCustom {
					source = "自定义"
				}
				fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\n",
					cat.Icon, cat.Name,
					cat.Type.Label(),
					source,
					cli.SubtleStyle.Render(cat.ID))
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		iconFlag string
		typeFlag string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			txType, err := parseTransactionType(typeFlag)
			if err != nil {
				return err
			}

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			cat := store.AddCustomCategory(args[0], iconFlag, txType)
			if err := saveLedger(ctx, store, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("added category %s %s (%s)", cat.Icon, cat.Name, cat.Type.Label())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&iconFlag, "icon", "i", "🏷️", "emoji icon")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "expense", "income or expense")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category-id>",
		Short: "Delete a custom category",
		Long: `Delete a custom category. Transactions that used it are reassigned
to 未分类 rather than removed. Predefined categories cannot be deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			// Misses and protected categories warn instead of failing.
			switch err := store.DeleteCategoryAndReassign(args[0]); {
			case errors.Is(err, common.ErrCategoryProtected):
				fmt.Println(cli.FormatWarning("预置分类不能删除"))
				return nil
			case errors.Is(err, common.ErrNotFound):
				fmt.Println(cli.FormatWarning("no custom category with that id; nothing changed"))
				return nil
			case err != nil:
				return err
			}
			if err := saveLedger(ctx, store, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("category deleted; its transactions moved to 未分类"))
			return nil
		},
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hualei/lingqian/internal/cli"
	"github.com/hualei/lingqian/internal/config"
	"github.com/hualei/lingqian/internal/model"
	"github.com/hualei/lingqian/internal/voice"
)

func voiceCmd() *cobra.Command {
	var (
		expectFlag string
		yesFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "voice <transcript>",
		Short: "Record a transaction from a spoken sentence",
		Long: `Parse a transcribed sentence such as "午饭花了30元" into a transaction.
The candidate is shown for confirmation before it is recorded; pass
--yes to skip the prompt.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text := strings.Join(args, " ")

			if expectFlag == "" {
				expectFlag = viper.GetString(config.KeyVoiceExpected)
			}
			expected, err := parseTransactionType(expectFlag)
			if err != nil {
				return err
			}

			parsed, err := voice.NewParser().Parse(text, expected)
			if errors.Is(err, voice.ErrEmptyInput) || errors.Is(err, voice.ErrNoAmount) {
				fmt.Println(cli.FormatWarning("没听懂金额，请再说一遍，例如：午饭花了30元"))
				return nil
			}
			if err != nil {
				return err
			}

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			category := store.ResolveCategory(parsed.Category, parsed.Type)

			content := fmt.Sprintf("%s  %s\n%s %s\n%s",
				parsed.Type.Label(),
				formatAmount(parsed.Type, parsed.Amount),
				category.Icon, category.Name,
				cli.SubtleStyle.Render(parsed.Description))
			fmt.Println(cli.RenderBox(cli.MicIcon+" 识别结果", content))

			if !yesFlag && !cli.Confirm(os.Stdin, os.Stdout, "记录这笔交易吗？", true) {
				fmt.Println(cli.InfoStyle.Render("已取消。"))
				return nil
			}

			txn, err := model.NewTransaction(parsed.Amount, category.ID, parsed.Type, time.Now(), parsed.Description)
			if err != nil {
				return err
			}
			if err := store.AddTransaction(txn); err != nil {
				return err
			}
			if err := saveLedger(ctx, store, db); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("recorded %s %s",
				category.Name, formatAmount(parsed.Type, parsed.Amount))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&expectFlag, "expect", "e", "", "expected type when the sentence has no keyword (income or expense)")
	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "record without confirmation")

	return cmd
}

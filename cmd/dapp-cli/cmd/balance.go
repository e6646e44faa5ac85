package cmd

import (
	"fmt"

	"hedera-bridge/pkg/config"
	"hedera-bridge/pkg/mirror"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [accountId]",
	Short: "通过 mirror node 查询余额",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		accountID := config.Global.Hedera.AccountID
		if len(args) == 1 {
			accountID = args[0]
		}
		if accountID == "" {
			exitOnError("缺少账户", fmt.Errorf("请传入 accountId 或设置 NEXT_PUBLIC_HEDERA_ACCOUNT_ID"))
		}

		locale, err := language.Parse(config.Global.Mirror.Locale)
		if err != nil {
			locale = language.AmericanEnglish
		}
		client := mirror.NewClient(config.Global.Mirror.BaseURL, config.Global.Mirror.Timeout, mirror.WithLocale(locale))

		balance, err := client.GetAccountBalance(cmd.Context(), accountID)
		exitOnError("查询余额失败", err)
		fmt.Printf("%s: %s %s (%s)\n", accountID, balance.Balance, balance.Symbol, balance.Name)
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

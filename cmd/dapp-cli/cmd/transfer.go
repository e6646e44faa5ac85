package cmd

import (
	"fmt"

	"hedera-bridge/internal/dapp"
	"hedera-bridge/pkg/chain"
	"hedera-bridge/pkg/hederarpc"

	"github.com/spf13/cobra"
)

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "构造 CryptoTransfer 请求",
	Long:  `从操作账户向接收账户转账, 默认 hedera_signAndExecuteTransaction, --return 时改为 hedera_signAndReturnTransaction。`,
	Run: func(cmd *cobra.Command, args []string) {
		to, _ := cmd.Flags().GetString("to")
		amount, _ := cmd.Flags().GetInt64("amount-tinybar")
		returnOnly, _ := cmd.Flags().GetBool("return")
		submit, _ := cmd.Flags().GetBool("submit")

		// 1. 操作账户与接收账户
		from, err := operator()
		exitOnError("读取操作账户失败", err)

		if to == "" {
			ids, cleanup := newIdentifierCache()
			to = ids.CreateOrRestoreReceiverAddress(cmd.Context())
			cleanup()
		}
		receiver, err := dapp.ParseReceiver(to)
		exitOnError("接收账户无效", err)

		// 2. 编码
		method := hederarpc.MethodSignAndExecuteTransaction
		if returnOnly {
			method = hederarpc.MethodSignAndReturnTransaction
		}
		req, err := dapp.NewTransferRequest(method, from, receiver, amount)
		exitOnError("构造交易失败", err)

		// 3. 发送给钱包
		if !submit {
			for _, row := range chain.RenderRequest(req) {
				fmt.Printf("%s:\n%s\n", row.Label, row.Value)
			}
			return
		}
		send(cmd, req)
	},
}

func init() {
	rootCmd.AddCommand(transferCmd)
	transferCmd.Flags().String("to", "", "接收账户 (默认使用缓存的接收账户)")
	transferCmd.Flags().Int64("amount-tinybar", 100_000_000, "转账金额 (tinybar)")
	transferCmd.Flags().Bool("return", false, "只签名并返回交易, 不执行")
	transferCmd.Flags().Bool("submit", false, "发送到钱包")
}

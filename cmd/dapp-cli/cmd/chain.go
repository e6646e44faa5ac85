package cmd

import (
	"hedera-bridge/pkg/chain"
	"hedera-bridge/pkg/hederarpc"

	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain [chainId]",
	Short: "查看链信息",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		chainID := hederarpc.ChainTestnet
		if len(args) == 1 {
			chainID = args[0]
		}

		metadata, err := chain.GetChainMetadata(chainID)
		exitOnError("查询失败", err)
		printJSON(metadata)
	},
}

func init() {
	rootCmd.AddCommand(chainCmd)
}

package cmd

import (
	"fmt"

	"hedera-bridge/internal/dapp"
	"hedera-bridge/pkg/chain"
	"hedera-bridge/pkg/jsonrpc"

	"github.com/spf13/cobra"
)

var submitMessageCmd = &cobra.Command{
	Use:   "submit-message <text>",
	Short: "向缓存的 topic 提交消息 (ConsensusSubmitMessage)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		from, err := operator()
		exitOnError("读取操作账户失败", err)

		ids, cleanup := newIdentifierCache()
		topicID := ids.CreateOrRestoreTopicID(cmd.Context())
		cleanup()

		req, err := dapp.NewTopicMessageRequest(from, topicID, args[0])
		exitOnError("构造交易失败", err)
		send(cmd, req)
	},
}

var signMessageCmd = &cobra.Command{
	Use:   "sign-message <text>",
	Short: "请求钱包对明文签名 (hedera_signMessage)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		req, err := dapp.NewSignMessageRequest(args[0])
		exitOnError("构造请求失败", err)
		send(cmd, req)
	},
}

// send 打印请求详情后发送给钱包
func send(cmd *cobra.Command, req jsonrpc.Request) {
	for _, row := range chain.RenderRequest(req) {
		fmt.Printf("%s:\n%s\n", row.Label, row.Value)
	}

	resp, err := newRequester().Send(cmd.Context(), sessionTopic, req)
	exitOnError("发送失败", err)
	printJSON(resp)
}

func init() {
	rootCmd.AddCommand(submitMessageCmd)
	rootCmd.AddCommand(signMessageCmd)
}

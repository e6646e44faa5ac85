package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "获取 (或创建) 缓存的 topic id",
	Run: func(cmd *cobra.Command, args []string) {
		ids, cleanup := newIdentifierCache()
		defer cleanup()
		fmt.Println(ids.CreateOrRestoreTopicID(cmd.Context()))
	},
}

var receiverCmd = &cobra.Command{
	Use:   "receiver",
	Short: "获取 (或创建) 缓存的转账接收账户",
	Run: func(cmd *cobra.Command, args []string) {
		ids, cleanup := newIdentifierCache()
		defer cleanup()
		fmt.Println(ids.CreateOrRestoreReceiverAddress(cmd.Context()))
	},
}

func init() {
	rootCmd.AddCommand(topicCmd)
	rootCmd.AddCommand(receiverCmd)
}

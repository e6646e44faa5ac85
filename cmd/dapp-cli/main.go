package main

import "hedera-bridge/cmd/dapp-cli/cmd"

func main() {
	cmd.Execute()
}

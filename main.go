package main

import (
	"github/walletpanel/go-wallet-panel/cmd"
)

func main() {
	cmd.Execute()
}

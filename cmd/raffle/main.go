package main

import (
	"os"

	"github.com/ArowuTest/nft-raffle-backend/cmd/raffle/commands"
)

func main() {
	if err := commands.RaffleCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

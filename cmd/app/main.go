package main

import (
	"os"
	"github.com/mcoutinho2512/app-Sentynela-Urban/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}

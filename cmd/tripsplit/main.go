package main

import (
	"os"

	"github.com/fkhayef/tripsplit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/aliskhannn/sarf-quiz/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

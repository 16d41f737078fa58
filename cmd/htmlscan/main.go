package main

import (
	"os"

	"github.com/dpotapov/go-htmlscan/cmd/htmlscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

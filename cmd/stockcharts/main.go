package main

import (
	"os"

	"github.com/rustyeddy/stockcharts/cmd/stockcharts/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/homemaint/internal/cli"
)

func main() {
	// No args launches the TUI; anything else goes through cobra.
	if len(os.Args) == 1 {
		if err := cli.RunTUI(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

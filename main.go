package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/kreigan/powerdns-tui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if cmd.Debug() {
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
		}
		os.Exit(1)
	}
}

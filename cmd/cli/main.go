// Package main is the entry point for the telephone-bill CLI.
package main

import (
	"os"

	"telephone-bill/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the dinocompare CLI.
package main

import (
	"os"

	"github.com/f3rmion/dinocompare/cmd/dinocompare/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

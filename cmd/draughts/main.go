// Package main provides the draughts CLI: play checkers against the
// engine, analyze positions, and benchmark the search strategies.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

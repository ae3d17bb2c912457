// Package main is the entry point for the bookkeeper CLI.
package main

import (
	"fmt"
	"os"

	"github.com/SscSPs/bookkeeper/cmd/bookkeeper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}
}

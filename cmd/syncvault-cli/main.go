// Package main provides the entry point for syncvault-cli.
//
// syncvault-cli inspects and manages the on-disk sync response cache,
// operating on the same files the library reads in a restricted
// auxiliary process.
package main

import (
	"fmt"
	"os"

	"github.com/yndnr/syncvault-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// Package main is the entry point for the umi CLI tool.
package main

import (
	"os"

	"github.com/umi-app/umi/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

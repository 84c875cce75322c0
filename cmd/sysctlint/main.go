// Package main is the entry point for the sysctlint CLI.
package main

import (
	"os"

	"github.com/uonr/sysctl-parser/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

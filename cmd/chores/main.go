package main

import (
	"os"

	"github.com/Makepad-fr/chores/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}

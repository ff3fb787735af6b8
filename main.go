package main

import (
	"os"

	"github.com/cerfical/ipconv/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args, os.Stdout, os.Stderr))
}

// Package cli implements the command-line interface of the address converter.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/cerfical/ipconv/internal/addr"
	"github.com/cerfical/ipconv/internal/config"
	"github.com/cerfical/ipconv/internal/log"
)

// Exit codes reported by [Run].
const (
	ExitOK    = 0
	ExitUsage = 1
	ExitParse = 2
)

const keyWidth = 20

// Run converts the address literal given in args and prints the report to stdout.
// Diagnostic log messages go to stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	conf, err := config.Load(args, stdout)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	logger := log.New(
		log.WithLevel(conf.Log.Level),
		log.WithWriter(stderr),
	).WithFields("input", conf.Input)

	ip, err := addr.ParseIPv4(conf.Input)
	if err != nil {
		logger.Error("Failed to parse the address", err)
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return ExitParse
	}
	logger.Info("Parsed the address", "value", uint32(ip))

	r := addr.Render(ip,
		addr.WithInput(conf.Input),
		addr.WithOctalStyle(conf.Octal.Style),
	)
	if err := writeRecord(stdout, r); err != nil {
		logger.Error("Failed to write the report", err)
	}
	return ExitOK
}

func writeRecord(w io.Writer, r addr.Record) error {
	for f, v := range r.All() {
		if _, err := fmt.Fprintf(w, "%-*s => %s\n", keyWidth, f.String(), v); err != nil {
			return err
		}
	}
	return nil
}

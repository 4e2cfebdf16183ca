package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "cratedig",
	Short:        "Cratedig — catalog and browse soundkit sample collections",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Cratedig scans a samples directory laid out as one subdirectory per
instrument, with files named "<kit name> - <instrument>.wav", groups the
files into soundkits, and writes a JSON manifest that the catalog
commands and the web player consume.`,
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger returns the logger handed to the catalog internals. Scan and
// build warnings go to stderr so piped command output stays clean.
func newLogger(quiet bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "cratedig",
	})
	if quiet {
		logger.SetLevel(log.ErrorLevel)
	}
	return logger
}

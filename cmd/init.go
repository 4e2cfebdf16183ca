package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cratedig/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap the cratedig config and samples layout",
	Long: `Create ~/.cratedig/cratedig.yaml with defaults (unless it exists) and
the samples directory with one subdirectory per instrument.`,
	RunE: runInit,
}

var flagInitSamples string

func init() {
	initCmd.Flags().StringVar(&flagInitSamples, "samples", "", "Samples root to record in the config")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	dir, err := config.CratedigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK("", fmt.Sprintf("cratedig directory ready: %s", dir))

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return err
		}
		if flagInitSamples != "" {
			cfg.SamplesRoot, err = config.ExpandPath(flagInitSamples)
			if err != nil {
				return err
			}
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("config written: %s", cfgPath))
	} else {
		printInfo("", fmt.Sprintf("config already exists: %s", cfgPath))
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	for _, tag := range cfg.Instruments {
		sub := filepath.Join(cfg.SamplesRoot, tag)
		if err := os.MkdirAll(sub, 0o755); err != nil {
			return fmt.Errorf("cannot create %s: %w", sub, err)
		}
	}
	printOK("", fmt.Sprintf("samples layout ready: %s (%d instrument directories)",
		cfg.SamplesRoot, len(cfg.Instruments)))
	printInfo("", "drop files named \"<kit name> - <instrument>.wav\" into the matching directory, then run 'cratedig generate'")
	return nil
}

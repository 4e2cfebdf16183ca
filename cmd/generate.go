package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"cratedig/internal/catalog"
	"cratedig/internal/config"
)

var (
	flagGenSamples string
	flagGenOut     string
	flagGenBaseURL string
	flagGenQuiet   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan the samples directory and write the soundkit manifest",
	Long: `Scan every instrument subdirectory under the samples root, group the
sample files into soundkits by filename, and write the manifest JSON.
The previous manifest is replaced wholesale.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagGenSamples, "samples", "", "Samples root directory (overrides config)")
	generateCmd.Flags().StringVar(&flagGenOut, "out", "", "Manifest output path (overrides config)")
	generateCmd.Flags().StringVar(&flagGenBaseURL, "base-url", "", "Base URL recorded in the manifest (overrides config)")
	generateCmd.Flags().BoolVar(&flagGenQuiet, "quiet", false, "Suppress per-file warnings")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w\nRun 'cratedig init' first.", err)
	}
	if flagGenSamples != "" {
		cfg.SamplesRoot, err = config.ExpandPath(flagGenSamples)
		if err != nil {
			return err
		}
	}
	if flagGenOut != "" {
		cfg.ManifestPath, err = config.ExpandPath(flagGenOut)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = flagGenBaseURL
	}

	if _, err := os.Stat(cfg.SamplesRoot); err != nil {
		return fmt.Errorf("samples root %s: %w", cfg.SamplesRoot, err)
	}

	release, err := acquireGenerateLock(cfg.ManifestPath, 5*time.Second)
	if err != nil {
		return err
	}
	defer release()

	logger := newLogger(flagGenQuiet)

	listings := catalog.ScanRoot(cfg.SamplesRoot, cfg.Instruments, logger)
	kits := catalog.Aggregate(listings, cfg.Instruments, cfg.Extension, logger)
	m, err := catalog.Build(kits, catalog.BuildOptions{
		Vocabulary: cfg.Instruments,
		BaseURL:    cfg.BaseURL,
		Version:    catalog.ManifestVersion,
	}, logger)
	if err != nil {
		return err
	}
	if err := catalog.WriteManifest(cfg.ManifestPath, m); err != nil {
		return err
	}

	printOK("", fmt.Sprintf("manifest written: %s", cfg.ManifestPath))
	printInfo("", fmt.Sprintf("%d soundkits, %d files, %s average completeness",
		m.TotalSoundkits, m.Statistics.TotalFiles, formatCompleteness(m.Statistics.AverageCompleteness)))
	if m.TotalSoundkits == 0 {
		printWarn("", "no soundkits found; the manifest is empty but valid")
	}
	return nil
}

// acquireGenerateLock prevents two generate runs from racing on the same
// manifest. The lock lives next to the output file.
func acquireGenerateLock(manifestPath string, timeout time.Duration) (func(), error) {
	dir := filepath.Dir(manifestPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	lockPath := manifestPath + ".lock"

	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire generate lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("another generate run is in progress (lock: %s)", lockPath)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

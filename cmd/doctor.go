package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cratedig/internal/catalog"
	"cratedig/internal/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the cratedig setup and manifest health",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	problems := 0

	printSection("Config")
	cfg, err := config.Load()
	if err != nil {
		printErr("", err.Error())
		return fmt.Errorf("doctor found a broken config; run 'cratedig init'")
	}
	printOK("", "config loads")

	printSection("Samples")
	if info, err := os.Stat(cfg.SamplesRoot); err != nil {
		printErr("", fmt.Sprintf("samples root: %v", err))
		problems++
	} else if !info.IsDir() {
		printErr("", fmt.Sprintf("samples root is not a directory: %s", cfg.SamplesRoot))
		problems++
	} else {
		printOK("", fmt.Sprintf("samples root: %s", cfg.SamplesRoot))
		for _, tag := range cfg.Instruments {
			sub := filepath.Join(cfg.SamplesRoot, tag)
			if _, err := os.Stat(sub); os.IsNotExist(err) {
				// Missing instrument directories are normal; the scan
				// treats them as empty.
				printMiss(tag, "no directory (treated as empty)")
			} else if err != nil {
				printWarn(tag, err.Error())
			} else {
				printOK(tag, "present")
			}
		}
	}

	printSection("Manifest")
	m, err := catalog.LoadManifest(cfg.ManifestPath)
	if err != nil {
		printMiss("", fmt.Sprintf("%v — run 'cratedig generate'", err))
		problems++
	} else {
		printOK("", fmt.Sprintf("manifest loads: %s (%d soundkits)", cfg.ManifestPath, m.TotalSoundkits))
		checkStatistics(m, &problems)
		if m.BaseURL == "" {
			printWarn("", "no base URL configured; 'cratedig fetch' will not work")
		}
	}

	fmt.Println()
	if problems > 0 {
		return fmt.Errorf("doctor found %d problem(s)", problems)
	}
	printOK("", "everything looks healthy")
	return nil
}

// checkStatistics recomputes the derived statistics and compares them to
// the stored ones, catching manifests edited by hand.
func checkStatistics(m *catalog.Manifest, problems *int) {
	want := catalog.Summarize(m.Soundkits, m.Instruments)
	got := m.Statistics
	if got.TotalFiles != want.TotalFiles ||
		got.CompleteSoundkits != want.CompleteSoundkits ||
		got.AverageCompleteness != want.AverageCompleteness {
		printErr("", fmt.Sprintf("statistics do not match soundkits (stored files=%d complete=%d, recomputed files=%d complete=%d)",
			got.TotalFiles, got.CompleteSoundkits, want.TotalFiles, want.CompleteSoundkits))
		*problems++
		return
	}
	for tag, n := range want.InstrumentCoverage {
		if got.InstrumentCoverage[tag] != n {
			printErr("", fmt.Sprintf("coverage for %q is %d, expected %d", tag, got.InstrumentCoverage[tag], n))
			*problems++
			return
		}
	}
	printOK("", "statistics consistent")
}

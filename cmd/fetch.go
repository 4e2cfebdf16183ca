package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cratedig/internal/samples"
)

var (
	flagFetchDest        string
	flagFetchConcurrency int
	flagFetchTimeout     time.Duration
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <id-or-name>",
	Short: "Download every sample of a soundkit",
	Long: `Download all of a kit's samples from the manifest's base URL into a
local directory. Instruments are fetched concurrently; one instrument
failing never aborts the others.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&flagFetchDest, "dest", "", "Destination directory (default: ./<kit id>)")
	fetchCmd.Flags().IntVar(&flagFetchConcurrency, "concurrency", 4, "Maximum parallel downloads")
	fetchCmd.Flags().DurationVar(&flagFetchTimeout, "timeout", 30*time.Second, "Per-file download timeout")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	_, idx, err := loadIndex()
	if err != nil {
		return err
	}
	kit, err := findKit(idx, args[0])
	if err != nil {
		return err
	}

	dest := flagFetchDest
	if dest == "" {
		dest = kit.ID
	}

	results, err := samples.FetchKit(cmd.Context(), idx, kit, samples.FetchOptions{
		DestDir:     dest,
		Concurrency: flagFetchConcurrency,
		Timeout:     flagFetchTimeout,
	})
	if err != nil {
		return err
	}

	printSection(fmt.Sprintf("Fetch %s", kit.Name))
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			printErr(r.Instrument, r.Err.Error())
			continue
		}
		printOK(r.Instrument, fmt.Sprintf("%s (%d bytes)", r.Path, r.Bytes))
	}
	if len(results) == 0 {
		printMiss("", "kit has no samples to fetch")
		return nil
	}
	if failed == len(results) {
		return fmt.Errorf("all %d instrument downloads failed", failed)
	}
	if failed > 0 {
		printWarn("", fmt.Sprintf("%d of %d instruments failed", failed, len(results)))
	}
	return nil
}

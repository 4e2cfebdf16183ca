package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics from the manifest",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	_, idx, err := loadIndex()
	if err != nil {
		return err
	}
	m := idx.Manifest()
	s := m.Statistics

	printSection("Collection")
	printInfo("", fmt.Sprintf("generated: %s (manifest version %s)", m.Generated, m.Version))
	printInfo("", fmt.Sprintf("soundkits: %d (%d complete)", m.TotalSoundkits, s.CompleteSoundkits))
	printInfo("", fmt.Sprintf("files: %d", s.TotalFiles))
	printInfo("", fmt.Sprintf("average completeness: %s", formatCompleteness(s.AverageCompleteness)))

	// Coverage rows follow the manifest's vocabulary order, not map order.
	rows := make([][]string, 0, len(m.Instruments))
	for _, tag := range m.Instruments {
		rows = append(rows, []string{tag, fmt.Sprintf("%d", s.InstrumentCoverage[tag])})
	}
	fmt.Println(renderTable(
		[]string{"Instrument", "Kits"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))
	return nil
}

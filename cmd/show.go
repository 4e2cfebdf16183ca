package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id-or-name>",
	Short: "Show one soundkit's files and sample URLs",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	_, idx, err := loadIndex()
	if err != nil {
		return err
	}
	kit, err := findKit(idx, args[0])
	if err != nil {
		return err
	}
	m := idx.Manifest()

	printSection(kit.Name)
	printInfo("", fmt.Sprintf("id: %s", kit.ID))
	printInfo("", fmt.Sprintf("completeness: %s (%d of %d instruments)",
		formatCompleteness(kit.Completeness), len(kit.AvailableInstruments), len(m.Instruments)))

	fmt.Println()
	for _, tag := range m.Instruments {
		u, ok := idx.ResolveSampleURL(kit.ID, tag)
		if !ok {
			printMiss(tag, "missing")
			continue
		}
		printOK(tag, u)
	}
	return nil
}

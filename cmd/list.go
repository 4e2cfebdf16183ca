package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cratedig/internal/catalog"
)

var (
	flagListInstrument string
	flagListComplete   bool
	flagListSort       string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the soundkits in the manifest",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListInstrument, "instrument", "", "Only kits containing this instrument tag")
	listCmd.Flags().BoolVar(&flagListComplete, "complete", false, "Only kits covering the full vocabulary")
	listCmd.Flags().StringVar(&flagListSort, "sort", "name", "Sort order: name, completeness or completeness:desc")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	_, idx, err := loadIndex()
	if err != nil {
		return err
	}

	var kits []catalog.Kit
	switch flagListSort {
	case "name":
		kits = idx.All()
	case "completeness":
		kits = idx.SortByCompleteness(true)
	case "completeness:desc":
		kits = idx.SortByCompleteness(false)
	default:
		return fmt.Errorf("unknown sort order %q", flagListSort)
	}

	if flagListInstrument != "" {
		kits = filterByInstrument(kits, strings.ToLower(flagListInstrument))
	}
	if flagListComplete {
		kits = filterComplete(kits)
	}

	if len(kits) == 0 {
		printMiss("", "no soundkits matched")
		return nil
	}

	rows := make([][]string, 0, len(kits))
	for _, k := range kits {
		rows = append(rows, []string{
			k.Name,
			k.ID,
			formatCompleteness(k.Completeness),
			strings.Join(k.AvailableInstruments, ", "),
		})
	}
	fmt.Println(renderTable(
		[]string{"Name", "ID", "Complete", "Instruments"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	))
	return nil
}

// filterByInstrument keeps the order of kits, dropping those without tag.
// Filtering the already sorted slice keeps --sort and --instrument
// composable.
func filterByInstrument(kits []catalog.Kit, tag string) []catalog.Kit {
	out := kits[:0]
	for _, k := range kits {
		if _, ok := k.Instruments[tag]; ok {
			out = append(out, k)
		}
	}
	return out
}

func filterComplete(kits []catalog.Kit) []catalog.Kit {
	out := kits[:0]
	for _, k := range kits {
		if k.Completeness == 100 {
			out = append(out, k)
		}
	}
	return out
}

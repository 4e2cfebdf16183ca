package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search soundkits by name",
	Long:  `Case-insensitive substring search over soundkit names.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	_, idx, err := loadIndex()
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")

	results := idx.Search(query)
	fmt.Printf("\ncratedig search %q\n\n", query)
	fmt.Printf("Results (%d found):\n", len(results))
	if len(results) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(results))
	for _, k := range results {
		rows = append(rows, []string{k.Name, k.ID, formatCompleteness(k.Completeness)})
	}
	fmt.Println(renderTable(
		[]string{"Name", "ID", "Complete"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	))
	return nil
}

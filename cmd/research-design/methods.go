package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-design/internal/catalog"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the research method catalog",
	Long: `Methods prints the seven research methods the tool can recommend, with
their timeframe, participant count and cost. Use --json for the full records
or --xlsx to write a spreadsheet for sharing with stakeholders.`,
	RunE: runMethods,
}

func init() {
	methodsCmd.Flags().Bool("json", false, "output the catalog as JSON")
	methodsCmd.Flags().String("xlsx", "", "write the catalog to an Excel workbook at this path")

	rootCmd.AddCommand(methodsCmd)
}

func runMethods(cmd *cobra.Command, args []string) error {
	methods := catalog.Default().All()

	if path, _ := cmd.Flags().GetString("xlsx"); path != "" {
		if err := catalog.WriteXLSX(path, methods); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(methods)
	}

	fmt.Fprintf(os.Stdout, "%-16s  %-28s  %-12s  %-12s  %s\n",
		"ID", "Name", "Timeframe", "Participants", "Cost")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 84))
	for _, m := range methods {
		fmt.Fprintf(os.Stdout, "%-16s  %-28s  %-12s  %-12s  %s\n",
			m.ID, m.Name, m.Timeframe, m.Participants, m.Cost)
	}
	return nil
}

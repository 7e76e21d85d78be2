package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-design/internal/draft"
	"github.com/pdiddy/research-design/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <draft>",
	Short: "Rank research methods for a draft",
	Long: `Recommend scores every catalog method against the draft's research purpose,
current phase, timeline and budget, and prints the ranking. The first three
entries are the recommended shortlist. Use --all to list every method and
--json for machine-readable output.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().Bool("json", false, "output scores as JSON")
	recommendCmd.Flags().Bool("all", false, "show every method, not just the shortlist")
	recommendCmd.Flags().String("rules", "", "YAML rule table replacing the built-in rules")
	_ = viper.BindPFlag("recommend.rules_file", recommendCmd.Flags().Lookup("rules"))

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	c, err := newCore(appConfig)
	if err != nil {
		return err
	}
	d, err := draft.Load(args[0])
	if err != nil {
		return err
	}
	if dropped := draft.Normalize(d, c.catalog); len(dropped) > 0 {
		slog.Warn("dropped unknown or repeated methods", "ids", dropped)
	}

	scores := c.engine.Score(d)
	all, _ := cmd.Flags().GetBool("all")
	if !all {
		scores = scores[:min(recommend.ShortlistSize, len(scores))]
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scores)
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-28s  %-5s  %s\n", "Rank", "Method", "Score", "Reasons")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))
	for i, s := range scores {
		name := s.ID
		if m, ok := c.catalog.Find(s.ID); ok {
			name = m.Name
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-28s  %5d  %s\n", i+1, name, s.Score, strings.Join(s.Reasons, ", "))
	}
	return nil
}

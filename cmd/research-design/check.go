package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-design/internal/draft"
	"github.com/pdiddy/research-design/internal/session"
)

var checkCmd = &cobra.Command{
	Use:   "check <draft>",
	Short: "Report which stages of a draft are complete",
	Long: `Check evaluates each stage gate against the draft and lists the fields a
stage still needs, followed by any contextual questions worth answering. It
exits non-zero when a stage is incomplete.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	incomplete := 0
	for _, s := range session.Stages {
		if s == session.StageComplete {
			continue
		}
		mark := "ok"
		if !session.IsComplete(s, d) {
			mark = "missing: " + strings.Join(session.Missing(s, d), ", ")
			incomplete++
		}
		fmt.Fprintf(os.Stdout, "%d. %-20s %s\n", int(s)+1, s.Title(), mark)
		for _, q := range session.Visible(session.Questions(s, d)) {
			fmt.Fprintf(os.Stdout, "   ? %s (%s)\n", q.Question, q.Category)
			fmt.Fprintf(os.Stdout, "     %s\n", q.FollowUp)
		}
	}

	if incomplete > 0 {
		return fmt.Errorf("%d stage(s) incomplete", incomplete)
	}
	fmt.Println("Draft is ready to render.")
	return nil
}

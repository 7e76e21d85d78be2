package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-design/internal/draft"
	"github.com/pdiddy/research-design/internal/wizard"
	"github.com/pdiddy/research-design/pkg/types"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Fill in a draft interactively, stage by stage",
	Long: `Wizard asks for every field of the four stages in order and prints the
research design document at the end. A stage is asked again until it is
complete. Type :back to return to the previous stage or :restart to start
over. An empty answer keeps the current value.

With --draft the wizard resumes an existing draft. With --save the draft is
written out when the wizard ends, even if it ends early.`,
	RunE: runWizard,
}

func init() {
	wizardCmd.Flags().String("draft", "", "existing draft to resume")
	wizardCmd.Flags().String("save", "", "write the draft to this file when the wizard ends")
	wizardCmd.Flags().String("out", "", "also write the document to this file")

	rootCmd.AddCommand(wizardCmd)
}

func runWizard(cmd *cobra.Command, args []string) error {
	c, err := newCore(appConfig)
	if err != nil {
		return err
	}

	var start *types.ResearchDraft
	if path, _ := cmd.Flags().GetString("draft"); path != "" {
		start, err = draft.Load(path)
		if err != nil {
			return err
		}
		draft.Normalize(start, c.catalog)
	}

	w := wizard.New(os.Stdin, os.Stdout, c.catalog, c.engine, c.asm, start)
	res, runErr := w.Run(cmd.Context())

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" && res.Draft != nil {
		if err := draft.Save(savePath, res.Draft); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved draft to %s\n", savePath)
	}
	if runErr != nil {
		if errors.Is(runErr, wizard.ErrInputClosed) {
			return fmt.Errorf("wizard ended early: %w", runErr)
		}
		return runErr
	}

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		if err := os.WriteFile(outPath, []byte(res.Document), 0o644); err != nil {
			return fmt.Errorf("writing document: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
	}
	return nil
}

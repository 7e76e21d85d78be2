package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-design/internal/draft"
)

const defaultDraftFile = "research-draft.yaml"

var newCmd = &cobra.Command{
	Use:   "new [file]",
	Short: "Write a blank draft file to fill in",
	Long: `New writes a commented draft template listing every field and the allowed
values of each choice field. The default file is research-draft.yaml. An
existing file is left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().Bool("force", false, "overwrite an existing file")

	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	path := defaultDraftFile
	if len(args) == 1 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, draft.Template(), 0o644); err != nil {
		return fmt.Errorf("writing draft: %w", err)
	}
	fmt.Printf("Created %s\n", path)
	return nil
}

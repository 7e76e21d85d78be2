// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/research-design/internal/assemble"
	"github.com/pdiddy/research-design/internal/draft"
)

var renderCmd = &cobra.Command{
	Use:   "render <draft|glob>...",
	Short: "Render draft files into research design documents",
	Long: `Render loads each draft, drops unknown method IDs, and writes the research
design document as <project-name>_research-design-document.md (or .html) in
the output directory. Arguments may be file paths or glob patterns such as
"drafts/**/*.yaml". Drafts are rendered concurrently; the first failure stops
the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("format", "", "output format: markdown or html (default markdown)")
	renderCmd.Flags().String("out-dir", "", "directory for rendered documents (default .)")
	renderCmd.Flags().Bool("stdout", false, "print documents to stdout instead of writing files")
	renderCmd.Flags().Int("jobs", runtime.NumCPU(), "maximum drafts rendered at once")
	_ = viper.BindPFlag("render.format", renderCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("render.out_dir", renderCmd.Flags().Lookup("out-dir"))

	rootCmd.AddCommand(renderCmd)
}

// renderedDoc is one draft's output, kept in argument order.
type renderedDoc struct {
	source string
	name   string
	data   []byte
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(string(appConfig.Render.Format))
	if err != nil {
		return err
	}
	toStdout, _ := cmd.Flags().GetBool("stdout")
	jobs, _ := cmd.Flags().GetInt("jobs")

	files, err := expandDrafts(args)
	if err != nil {
		return err
	}
	c, err := newCore(appConfig)
	if err != nil {
		return err
	}

	docs := make([]renderedDoc, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := draft.Load(f)
			if err != nil {
				return err
			}
			if dropped := draft.Normalize(d, c.catalog); len(dropped) > 0 {
				slog.Warn("dropped unknown or repeated methods", "draft", f, "ids", dropped)
			}
			docs[i] = renderedDoc{
				source: f,
				name:   assemble.Filename(d.ProjectName, format),
				data:   c.asm.Export(d, format),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if toStdout {
		return writeStdout(os.Stdout, docs)
	}
	return writeDocs(appConfig.Render.OutDir, docs)
}

func writeStdout(w io.Writer, docs []renderedDoc) error {
	for _, doc := range docs {
		if _, err := w.Write(doc.data); err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}
	}
	return nil
}

// writeDocs writes each document into outDir. Two drafts that would produce
// the same file name are an error, reported before anything is written.
func writeDocs(outDir string, docs []renderedDoc) error {
	sources := make(map[string]string, len(docs))
	for _, doc := range docs {
		if prev, ok := sources[doc.name]; ok {
			return fmt.Errorf("%s and %s both render to %s", prev, doc.source, doc.name)
		}
		sources[doc.name] = doc.source
	}

	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	for _, doc := range docs {
		out := filepath.Join(outDir, doc.name)
		if err := os.WriteFile(out, doc.data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Printf("%s -> %s\n", doc.source, out)
	}
	return nil
}

// expandDrafts resolves glob patterns into draft paths, keeping argument order
// and dropping repeats. Arguments without glob syntax are used as given.
func expandDrafts(args []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(f string) {
		f = filepath.Clean(f)
		if !seen[f] {
			seen[f] = true
			files = append(files, f)
		}
	}
	for _, pattern := range args {
		if !hasMeta(pattern) {
			add(pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no drafts match %q", pattern)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return files, nil
}

func hasMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

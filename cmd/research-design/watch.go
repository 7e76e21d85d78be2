package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-design/internal/assemble"
	"github.com/pdiddy/research-design/internal/draft"
	"github.com/pdiddy/research-design/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <draft>",
	Short: "Re-render a draft every time it is saved",
	Long: `Watch renders the draft once, then again each time the file changes, until
interrupted. Bursts of writes within the debounce window produce a single
render. Errors in the draft are logged and watching continues.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("out", "", "output file (default <project-name>_research-design-document.<ext> in the render out dir)")
	watchCmd.Flags().String("format", "", "output format: markdown or html (default from render.format)")
	watchCmd.Flags().Duration("debounce", 0, "wait this long after a change before rendering")
	_ = viper.BindPFlag("watch.debounce", watchCmd.Flags().Lookup("debounce"))

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	if formatFlag == "" {
		formatFlag = string(appConfig.Render.Format)
	}
	format, err := parseFormat(formatFlag)
	if err != nil {
		return err
	}

	c, err := newCore(appConfig)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		name := ""
		if d, err := draft.Load(args[0]); err == nil {
			name = d.ProjectName
		}
		out = filepath.Join(appConfig.Render.OutDir, assemble.Filename(name, format))
	}

	w, err := watch.New(watch.Config{
		DraftPath: args[0],
		OutPath:   out,
		Format:    format,
		Debounce:  appConfig.Watch.Debounce,
	}, c.catalog, c.asm)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go drainResults(ctx, w.Results())
	return w.Run(ctx)
}

// drainResults keeps the result channel empty; the watcher logs each render.
func drainResults(ctx context.Context, results <-chan watch.Result) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-results:
			if !ok {
				return
			}
		}
	}
}

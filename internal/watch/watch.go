// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch re-renders a draft file whenever it changes on disk.
package watch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pdiddy/research-design/internal/draft"
	"github.com/pdiddy/research-design/pkg/types"
)

const defaultDebounce = 200 * time.Millisecond

// Renderer turns a draft into document bytes.
type Renderer interface {
	Export(d *types.ResearchDraft, format types.ExportFormat) []byte
}

// Config configures a Watcher.
type Config struct {
	// DraftPath is the draft file to watch.
	DraftPath string

	// OutPath is where the rendered document is written.
	OutPath string

	// Format selects markdown or html output.
	Format types.ExportFormat

	// Debounce is how long to collect writes before re-rendering.
	Debounce time.Duration

	// Logger for logging events
	Logger *slog.Logger
}

// Result reports one render attempt.
type Result struct {
	OutPath string
	// Dropped lists selected method IDs removed during normalization.
	Dropped []string
	Err     error
}

// Watcher watches one draft file. Editors often replace files instead of
// writing them in place, so the parent directory is watched and events are
// filtered by name.
type Watcher struct {
	cfg     Config
	catalog draft.Catalog
	render  Renderer
	fsw     *fsnotify.Watcher
	logger  *slog.Logger

	pendingMu sync.Mutex
	pending   bool

	lastHash string
	results  chan Result
}

// New creates a watcher. Call Run to start it.
func New(cfg Config, c draft.Catalog, r Renderer) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg.DraftPath = filepath.Clean(cfg.DraftPath)
	return &Watcher{
		cfg:     cfg,
		catalog: c,
		render:  r,
		fsw:     fsw,
		logger:  logger,
		results: make(chan Result, 16),
	}, nil
}

// Results returns the channel of render results. It is closed when Run
// returns.
func (w *Watcher) Results() <-chan Result {
	return w.results
}

// Run renders the draft once, then again after every change, until ctx is
// cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.results)
	defer w.fsw.Close()

	dir := filepath.Dir(w.cfg.DraftPath)
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	w.logger.Info("watching draft",
		"draft", w.cfg.DraftPath,
		"out", w.cfg.OutPath,
		"debounce", w.cfg.Debounce)

	w.send(w.renderOnce())

	ticker := time.NewTicker(w.cfg.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.cfg.DraftPath {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	w.pendingMu.Lock()
	w.pending = true
	w.pendingMu.Unlock()
	w.logger.Debug("draft change detected", "op", event.Op.String())
}

func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	if !w.pending {
		w.pendingMu.Unlock()
		return
	}
	w.pending = false
	w.pendingMu.Unlock()

	data, err := os.ReadFile(w.cfg.DraftPath)
	if err == nil && hashOf(data) == w.lastHash {
		return
	}
	w.send(w.renderOnce())
}

// renderOnce loads, normalizes and renders the draft.
func (w *Watcher) renderOnce() Result {
	res := Result{OutPath: w.cfg.OutPath}

	data, err := os.ReadFile(w.cfg.DraftPath)
	if err != nil {
		res.Err = fmt.Errorf("reading draft: %w", err)
		return res
	}
	d, err := draft.Parse(data)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", filepath.Base(w.cfg.DraftPath), err)
		return res
	}
	w.lastHash = hashOf(data)

	res.Dropped = draft.Normalize(d, w.catalog)
	if len(res.Dropped) > 0 {
		w.logger.Warn("dropped unknown or repeated methods", "ids", res.Dropped)
	}

	if dir := filepath.Dir(w.cfg.OutPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			res.Err = fmt.Errorf("creating output directory: %w", err)
			return res
		}
	}
	if err := os.WriteFile(w.cfg.OutPath, w.render.Export(d, w.cfg.Format), 0o644); err != nil {
		res.Err = fmt.Errorf("writing document: %w", err)
	}
	return res
}

func (w *Watcher) send(res Result) {
	if res.Err != nil {
		w.logger.Error("render failed", "draft", w.cfg.DraftPath, "error", res.Err)
	} else {
		w.logger.Info("rendered", "out", res.OutPath)
	}
	select {
	case w.results <- res:
	default:
		w.logger.Warn("result channel full, dropping result", "out", res.OutPath)
	}
}

func hashOf(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

package types

import "time"

// DocumentConfig holds settings for the document assembler.
type DocumentConfig struct {
	// Version is the label printed in the document footer (default "1.0").
	Version string `json:"version" yaml:"version" mapstructure:"version"`

	// Author is the author label printed in the footer.
	Author string `json:"author" yaml:"author" mapstructure:"author"`

	// DateLayout is the Go time layout for dates (default "January 2, 2006").
	DateLayout string `json:"date_layout" yaml:"date_layout" mapstructure:"date_layout"`
}

// RecommendConfig holds settings for the recommendation engine.
type RecommendConfig struct {
	// RulesFile is an optional YAML rule table replacing the built-in rules.
	RulesFile string `json:"rules_file" yaml:"rules_file" mapstructure:"rules_file"`
}

// RenderConfig holds settings for batch rendering.
type RenderConfig struct {
	// OutDir is the directory rendered documents are written to.
	OutDir string `json:"out_dir" yaml:"out_dir" mapstructure:"out_dir"`

	// Format selects the export format: markdown or html.
	Format ExportFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// ServeConfig holds settings for the HTTP surface.
type ServeConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`
}

// WatchConfig holds settings for watch mode.
type WatchConfig struct {
	// Debounce is how long to wait for further writes before re-rendering.
	Debounce time.Duration `json:"debounce" yaml:"debounce" mapstructure:"debounce"`
}

// ExportFormat selects the exported document format.
type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatHTML     ExportFormat = "html"
)

// Ext returns the file extension for the format.
func (f ExportFormat) Ext() string {
	if f == FormatHTML {
		return "html"
	}
	return "md"
}

// AppConfig groups all settings read from the config file and environment.
type AppConfig struct {
	LogLevel  string          `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Document  DocumentConfig  `json:"document" yaml:"document" mapstructure:"document"`
	Recommend RecommendConfig `json:"recommend" yaml:"recommend" mapstructure:"recommend"`
	Render    RenderConfig    `json:"render" yaml:"render" mapstructure:"render"`
	Serve     ServeConfig     `json:"serve" yaml:"serve" mapstructure:"serve"`
	Watch     WatchConfig     `json:"watch" yaml:"watch" mapstructure:"watch"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() AppConfig {
	return AppConfig{
		LogLevel: "info",
		Document: DocumentConfig{
			Version:    "1.0",
			Author:     "UX Research Design Tool",
			DateLayout: "January 2, 2006",
		},
		Render: RenderConfig{OutDir: ".", Format: FormatMarkdown},
		Serve:  ServeConfig{Addr: ":8080"},
		Watch:  WatchConfig{Debounce: 200 * time.Millisecond},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/research-design/internal/assemble"
	"github.com/pdiddy/research-design/internal/catalog"
	"github.com/pdiddy/research-design/internal/recommend"
	"github.com/pdiddy/research-design/pkg/types"
)

// loadAppConfig merges defaults, the config file, RESEARCH_DESIGN_* variables
// and bound flags into an AppConfig.
func loadAppConfig() (types.AppConfig, error) {
	def := types.DefaultConfig()
	viper.SetDefault("log_level", def.LogLevel)
	viper.SetDefault("document.version", def.Document.Version)
	viper.SetDefault("document.author", def.Document.Author)
	viper.SetDefault("document.date_layout", def.Document.DateLayout)
	viper.SetDefault("recommend.rules_file", def.Recommend.RulesFile)
	viper.SetDefault("render.out_dir", def.Render.OutDir)
	viper.SetDefault("render.format", string(def.Render.Format))
	viper.SetDefault("serve.addr", def.Serve.Addr)
	viper.SetDefault("watch.debounce", def.Watch.Debounce)

	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if _, err := parseFormat(string(cfg.Render.Format)); err != nil {
		return cfg, fmt.Errorf("render.format: %w", err)
	}
	return cfg, nil
}

func parseFormat(v string) (types.ExportFormat, error) {
	switch f := types.ExportFormat(v); f {
	case types.FormatMarkdown, types.FormatHTML:
		return f, nil
	case "md":
		return types.FormatMarkdown, nil
	}
	return "", fmt.Errorf("unsupported format %q: use markdown or html", v)
}

// core bundles the catalog, recommendation engine and assembler built from
// the loaded configuration.
type core struct {
	catalog *catalog.Catalog
	engine  *recommend.Engine
	asm     *assemble.Assembler
}

func newCore(cfg types.AppConfig) (*core, error) {
	c := catalog.Default()
	rules := recommend.DefaultRules()
	if cfg.Recommend.RulesFile != "" {
		loaded, err := recommend.LoadRules(cfg.Recommend.RulesFile)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}
	return &core{
		catalog: c,
		engine:  recommend.NewEngine(c, rules),
		asm:     assemble.New(c, cfg.Document),
	}, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-design CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-design/internal/envfile"
	"github.com/pdiddy/research-design/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// appConfig holds the merged settings, loaded before any subcommand runs.
var appConfig = types.DefaultConfig()

// rootCmd is the base command for the research-design CLI.
var rootCmd = &cobra.Command{
	Use:   "research-design",
	Short: "Plan UX research and produce a research design document",
	Long: `research-design walks a UX research project through four stages (project
context, problem definition, research design, execution plan), recommends
research methods from the draft, and renders the final design document.

Drafts are YAML files. Start one with "new", check it with "check", get method
recommendations with "recommend", and produce the document with "render".
"wizard" asks for every field interactively; "watch" re-renders on save;
"serve" exposes the same operations over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadAppConfig()
		if err != nil {
			return err
		}
		appConfig = cfg
		setupLogger(cfg.LogLevel)
		if f := viper.ConfigFileUsed(); f != "" {
			slog.Debug("using config file", "path", f)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./research-design.yaml or ~/.config/research-design/research-design.yaml)")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file with RESEARCH_DESIGN_* overrides")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	envFile, _ := rootCmd.PersistentFlags().GetString("env-file")
	if applied, err := envfile.Load(envFile); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	} else if len(applied) > 0 {
		fmt.Fprintf(os.Stderr, "Loaded environment from %s: %v\n", envFile, applied)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-design")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-design"))
		}
	}

	viper.SetEnvPrefix("RESEARCH_DESIGN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

// setupLogger installs a text logger on stderr at the named level.
func setupLogger(level string) {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

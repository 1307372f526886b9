// Package commands implements the soilvoc CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soilwise-he/soilvoc/config"
)

const (
	// Version is the soilvoc release version.
	Version = "0.1.0"
	// BuildTime is stamped at build time.
	BuildTime = "dev"

	appName = "soilvoc"
)

// NewRootCommand builds the soilvoc command tree.
func NewRootCommand() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "soilvoc",
		Short: "SoilVoc vocabulary toolchain",
		Long: `SoilVoc maintains the SoilWise soil-health vocabulary.

It provides:
- restore: rebuild the SKOS graph from the curated concept spreadsheet
- glossary: convert a glossary spreadsheet to a SKOS vocabulary
- interlink: link a vocabulary against external thesauri by label
- mindmap: render a vocabulary as an interactive HTML mind map
- serve: preview the mind map locally with live reload`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newRestoreCommand(),
		newGlossaryCommand(),
		newInterlinkCommand(),
		newMindmapCommand(),
		newServeCommand(),
		newVersionCommand(),
	)

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadConfig layers user and project configuration over the defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewLoader(slog.Default()).Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

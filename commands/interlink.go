package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/soilwise-he/soilvoc/graph"
	"github.com/soilwise-he/soilvoc/interlink"
)

func newInterlinkCommand() *cobra.Command {
	var (
		inPath       string
		outPath      string
		thesaurusDir string
		pattern      string
	)

	cmd := &cobra.Command{
		Use:   "interlink [thesaurus.csv ...]",
		Short: "Link a vocabulary against external thesauri by label",
		Long: `Interlink matches concept labels against thesaurus dumps and adds
skos:exactMatch links for preferred-label hits and skos:closeMatch for
alternative-label hits. British spellings are normalized to American
before lookup.

Thesaurus dump files may be given as arguments; without arguments they
are discovered under the configured thesaurus directory. A dump whose
name is not a known thesaurus is skipped with a warning.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if thesaurusDir == "" {
				thesaurusDir = cfg.Interlink.ThesaurusDir
			}
			if pattern == "" {
				pattern = cfg.Interlink.Pattern
			}

			g, err := graph.LoadTurtleFile(inPath)
			if err != nil {
				return fmt.Errorf("load %s: %w", inPath, err)
			}

			paths := args
			if len(paths) == 0 {
				// Discovery already returns dir-prefixed paths.
				paths, err = interlink.DiscoverThesauri(thesaurusDir, pattern)
				if err != nil {
					return fmt.Errorf("discover thesauri in %s: %w", thesaurusDir, err)
				}
			}
			if len(paths) == 0 {
				return fmt.Errorf("no thesaurus dumps found in %s", thesaurusDir)
			}

			linker := interlink.NewLinker(nil)
			stats, err := linker.LinkFiles(g, paths)
			if err != nil {
				return err
			}

			for _, s := range stats {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d exact, %d close (%d linked)\n",
					s.Thesaurus, s.ExactMatches, s.CloseMatches, s.Linked())
			}

			if err := g.WriteTurtleFile(outPath); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			slog.Info("interlinked vocabulary written", "file", outPath, "triples", g.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "SoilVoc.ttl", "Turtle file to interlink")
	cmd.Flags().StringVar(&outPath, "out", "SoilVoc-linked.ttl", "Turtle file to write")
	cmd.Flags().StringVar(&thesaurusDir, "thesaurus-dir", "", "Directory holding thesaurus dumps (default from config)")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Glob for discovering dumps (default from config)")

	return cmd
}

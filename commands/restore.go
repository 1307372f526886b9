package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/soilwise-he/soilvoc/graph"
	"github.com/soilwise-he/soilvoc/restore"
	"github.com/soilwise-he/soilvoc/tabular"
)

func newRestoreCommand() *cobra.Command {
	var (
		csvPath             string
		outPath             string
		schemeURI           string
		comparePath         string
		includeRelated      bool
		includeTopConceptOf bool
		includeEquivalentTo bool
		literalDiffLimit    int
	)

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Rebuild the SKOS vocabulary from the concept spreadsheet",
		Long: `Restore reads the curated concept spreadsheet and rebuilds the full
SKOS graph: concept scheme membership, labels, definitions, the
broader/narrower hierarchy resolved by label, procedure ownership
edges, and top concepts.

With --compare, the rebuilt graph is verified against a reference
Turtle file and the differences are reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if schemeURI == "" {
				schemeURI = cfg.Scheme.URI
			}
			// An explicit --literal-diff-limit 0 suppresses literal
			// diffs; only an untouched flag falls back to config.
			if !cmd.Flags().Changed("literal-diff-limit") {
				literalDiffLimit = cfg.Restore.LiteralDiffLimit
			}

			rows, err := tabular.ReadFile(csvPath)
			if err != nil {
				return fmt.Errorf("read %s: %w", csvPath, err)
			}
			slog.Info("spreadsheet loaded", "file", csvPath, "rows", len(rows))

			classifier := restore.NewClassifier(cfg.Scheme.ProcedurePrefixes)
			builder := restore.NewBuilder(schemeURI, cfg.Scheme.Lang, classifier)
			g, report := builder.Build(rows)

			if !report.Empty() {
				report.Write(os.Stderr)
			}

			if err := g.WriteTurtleFile(outPath); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			slog.Info("vocabulary written", "file", outPath, "triples", g.Len())

			if comparePath == "" {
				return nil
			}

			reference, err := graph.LoadTurtleFile(comparePath)
			if err != nil {
				return fmt.Errorf("load reference %s: %w", comparePath, err)
			}

			result := restore.Verify(reference, g, restore.VerifyOptions{
				Scheme:              graph.MustIRI(schemeURI),
				IncludeRelated:      includeRelated,
				IncludeTopConceptOf: includeTopConceptOf,
				IncludeEquivalentTo: includeEquivalentTo,
				StructuralDiffLimit: cfg.Restore.StructuralDiffLimit,
				LiteralDiffLimit:    literalDiffLimit,
			})
			result.Write(cmd.OutOrStdout(), reference)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "SoilVoc.csv", "Concept spreadsheet to restore from")
	cmd.Flags().StringVar(&outPath, "out", "SoilVoc.ttl", "Turtle file to write")
	cmd.Flags().StringVar(&schemeURI, "scheme", "", "Concept scheme IRI (default from config)")
	cmd.Flags().StringVar(&comparePath, "compare", "", "Reference Turtle file to verify against")
	cmd.Flags().BoolVar(&includeRelated, "include-related", false, "Include skos:related in verification")
	cmd.Flags().BoolVar(&includeTopConceptOf, "include-topconceptof", false, "Include skos:topConceptOf in verification")
	cmd.Flags().BoolVar(&includeEquivalentTo, "include-equivalentto", false, "Include equivalentTo in verification")
	cmd.Flags().IntVar(&literalDiffLimit, "literal-diff-limit", 10, "Max literal differences to report (0 disables)")

	return cmd
}

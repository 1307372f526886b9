package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/soilwise-he/soilvoc/glossary"
)

func newGlossaryCommand() *cobra.Command {
	var (
		csvPath   string
		outPath   string
		namespace string
		prefix    string
	)

	cmd := &cobra.Command{
		Use:   "glossary",
		Short: "Convert a glossary spreadsheet to a SKOS vocabulary",
		Long: `Glossary reads a term/definition spreadsheet and converts it to SKOS
concepts. Fragments come from each entry's URL when present, otherwise
from the term itself. Related terms are resolved within the glossary;
references to terms the glossary does not define are reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := glossary.ReadFile(csvPath)
			if err != nil {
				return fmt.Errorf("read %s: %w", csvPath, err)
			}
			slog.Info("glossary loaded", "file", csvPath, "entries", len(entries))

			converter := glossary.NewConverter(namespace, prefix)
			g, report := converter.Convert(entries)

			if !report.Empty() {
				report.Write(os.Stderr)
			}

			if err := g.WriteTurtleFile(outPath); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}

			stats := glossary.GraphStats(g)
			slog.Info("glossary vocabulary written", "file", outPath,
				"concepts", stats.Concepts, "triples", stats.Triples)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "glossary.csv", "Glossary spreadsheet to convert")
	cmd.Flags().StringVar(&outPath, "out", "glossary.ttl", "Turtle file to write")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Base IRI for minted concepts (default soil-health-benchmarks)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Prefix label bound for the namespace")

	return cmd
}

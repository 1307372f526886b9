package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/soilwise-he/soilvoc/graph"
	"github.com/soilwise-he/soilvoc/mindmap"
)

func newMindmapCommand() *cobra.Command {
	var (
		inPath  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "mindmap",
		Short: "Render a vocabulary as an interactive HTML mind map",
		Long: `Mindmap reads a SKOS Turtle file and renders a self-contained HTML
page: an expandable concept tree with search, statistics, and
click-to-copy concept URIs. The page needs no server; open it directly
in a browser.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.LoadTurtleFile(inPath)
			if err != nil {
				return fmt.Errorf("load %s: %w", inPath, err)
			}

			voc, err := mindmap.Parse(g)
			if err != nil {
				return fmt.Errorf("parse vocabulary: %w", err)
			}

			if err := mindmap.WriteFile(outPath, voc); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}

			slog.Info("mind map written", "file", outPath,
				"scheme", voc.SchemeLabel, "top_concepts", len(voc.TopConcepts))
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "SoilVoc.ttl", "Turtle file to render")
	cmd.Flags().StringVar(&outPath, "out", "SoilVoc.html", "HTML file to write")

	return cmd
}

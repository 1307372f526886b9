package mindmap

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
)

//go:embed page.html.tmpl
var pageTemplate string

var page = template.Must(template.New("mindmap").Parse(pageTemplate))

// Render writes the complete HTML page for a vocabulary tree. The tree is
// serialized to JSON and embedded into the page script verbatim.
func Render(w io.Writer, voc *Vocabulary) error {
	data, err := json.MarshalIndent(voc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal vocabulary: %w", err)
	}

	return page.Execute(w, struct {
		SchemeLabel string
		Data        template.JS
	}{
		SchemeLabel: voc.SchemeLabel,
		Data:        template.JS(data),
	})
}

// WriteFile renders the page to a file.
func WriteFile(path string, voc *Vocabulary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := Render(f, voc); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

package interlink

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Thesaurus is a label index over one external thesaurus dump. Keys are
// lowercase labels, values the concept URI carrying them. When several
// concepts share a label the last row wins, matching how the dumps are
// ordered (more specific concepts come later).
type Thesaurus struct {
	// Name is the thesaurus identifier, derived from the dump filename.
	Name string

	// PrefLabels maps lowercase preferred labels to concept URIs.
	PrefLabels map[string]string

	// AltLabels maps lowercase alternative labels to concept URIs.
	AltLabels map[string]string
}

// LoadThesaurus reads a thesaurus dump CSV. The dump must carry 'concept'
// and 'prefLabel' columns; 'altLabels' (semicolon-separated) is optional.
// The thesaurus name is the dump filename without extension, lowercased.
func LoadThesaurus(path string) (*Thesaurus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open thesaurus: %w", err)
	}
	defer f.Close()

	base := filepath.Base(path)
	name := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	th, err := ReadThesaurus(f, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return th, nil
}

// ReadThesaurus parses a thesaurus dump from CSV data.
func ReadThesaurus(r io.Reader, name string) (*Thesaurus, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		// Excel exports prepend a UTF-8 BOM.
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	conceptIdx, ok := cols["concept"]
	if !ok {
		return nil, fmt.Errorf("CSV missing required column %q; existing columns: %v", "concept", header)
	}
	prefIdx, ok := cols["preflabel"]
	if !ok {
		return nil, fmt.Errorf("CSV missing required column %q; existing columns: %v", "prefLabel", header)
	}
	altIdx, hasAlt := cols["altlabels"]

	th := &Thesaurus{
		Name:       name,
		PrefLabels: make(map[string]string),
		AltLabels:  make(map[string]string),
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		if conceptIdx >= len(record) {
			continue
		}
		concept := strings.TrimSpace(record[conceptIdx])
		if concept == "" {
			continue
		}

		if prefIdx < len(record) {
			if pref := strings.ToLower(strings.TrimSpace(record[prefIdx])); pref != "" {
				th.PrefLabels[pref] = concept
			}
		}
		if hasAlt && altIdx < len(record) {
			for _, alt := range strings.Split(record[altIdx], ";") {
				alt = strings.ToLower(strings.TrimSpace(alt))
				if alt != "" {
					th.AltLabels[alt] = concept
				}
			}
		}
	}
	return th, nil
}

// DiscoverThesauri resolves a glob pattern (doublestar syntax, so '**'
// recurses) to the thesaurus dump files beneath a directory. Results are
// sorted so linking order is stable.
func DiscoverThesauri(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*.csv"
	}
	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(dir, m))
	}
	sort.Strings(paths)
	return paths, nil
}

package glossary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one glossary record. Term is mandatory; everything else may be
// empty. Definition may hold several definitions separated by '|', Related
// several terms separated by ';'.
type Entry struct {
	Term       string
	Definition string
	URL        string
	Related    string
}

// Definitions returns the individual definition texts.
func (e Entry) Definitions() []string {
	var out []string
	for _, part := range strings.Split(e.Definition, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// RelatedTerms returns the individual related term references.
func (e Entry) RelatedTerms() []string {
	var out []string
	for _, part := range strings.Split(e.Related, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ReadFile reads a glossary CSV from disk.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	entries, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return entries, nil
}

// Read parses glossary entries from CSV data. Only the term column is
// required; definition, url and related are picked up when present. Rows
// with an empty term cell are skipped.
func Read(r io.Reader) ([]Entry, error) {
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
	termIdx, ok := cols["term"]
	if !ok {
		return nil, fmt.Errorf("CSV missing required column %q; existing columns: %v", "term", header)
	}

	cell := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var entries []Entry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		if termIdx >= len(record) || strings.TrimSpace(record[termIdx]) == "" {
			continue
		}
		entries = append(entries, Entry{
			Term:       strings.TrimSpace(record[termIdx]),
			Definition: cell(record, "definition"),
			URL:        cell(record, "url"),
			Related:    cell(record, "related"),
		})
	}
	return entries, nil
}

package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Row is one concept spreadsheet record with all cells trimmed. Multi-valued
// cells (AltLabel, Broader, ExactMatch, CloseMatch) keep their raw
// semicolon-delimited form; use SplitValues to expand them.
type Row struct {
	ID         string
	PrefLabel  string
	AltLabel   string
	Definition string
	Broader    string
	ExactMatch string
	CloseMatch string
}

// AltLabels returns the individual alternate labels.
func (r Row) AltLabels() []string { return SplitValues(r.AltLabel) }

// BroaderLabels returns the individual broader prefLabel references.
func (r Row) BroaderLabels() []string { return SplitValues(r.Broader) }

// ExactMatches returns the individual exact-match identifiers.
func (r Row) ExactMatches() []string { return SplitValues(r.ExactMatch) }

// CloseMatches returns the individual close-match identifiers.
func (r Row) CloseMatches() []string { return SplitValues(r.CloseMatch) }

// ReadFile reads a concept CSV from disk.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// Read parses concept rows from CSV data. The first record is the header;
// its columns are matched against the known aliases. Ragged rows are
// tolerated (short rows read as empty cells) because spreadsheet exports
// routinely drop trailing empty columns.
func Read(r io.Reader) ([]Row, error) {
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

	mapping, err := canonicalizeHeader(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	seen := make(map[string]bool)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		var row Row
		for idx, col := range mapping {
			if idx >= len(record) {
				continue
			}
			value := strings.TrimSpace(record[idx])
			switch col {
			case ColumnID:
				row.ID = value
			case ColumnPrefLabel:
				row.PrefLabel = value
			case ColumnAltLabel:
				row.AltLabel = value
			case ColumnDefinition:
				row.Definition = value
			case ColumnBroader:
				row.Broader = value
			case ColumnExactMatch:
				row.ExactMatch = value
			case ColumnCloseMatch:
				row.CloseMatch = value
			}
		}
		if row.ID != "" {
			if seen[row.ID] {
				slog.Warn("duplicate concept ID", "id", row.ID)
			}
			seen[row.ID] = true
		}
		rows = append(rows, row)
	}
	return rows, nil
}

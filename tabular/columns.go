package tabular

import (
	"fmt"
	"strings"
	"unicode"
)

// Column identifies a canonical logical column of the concept spreadsheet.
type Column string

// Canonical columns. Every row carries all of them; a cell may be empty.
const (
	ColumnID         Column = "ID"
	ColumnPrefLabel  Column = "prefLabel"
	ColumnAltLabel   Column = "altLabel"
	ColumnDefinition Column = "definition"
	ColumnBroader    Column = "broader"
	ColumnExactMatch Column = "exactMatch"
	ColumnCloseMatch Column = "closeMatch"
)

// columnAliases lists the accepted spellings per canonical column. Matching
// is case-insensitive and ignores all whitespace, so the verbose guidance
// headers people paste into spreadsheets still resolve.
var columnAliases = map[Column][]string{
	ColumnID: {
		"ID",
		"ID (concepts' URIs)",
		"concept_uri",
		"concept uri",
		"uri",
	},
	ColumnPrefLabel:  {"prefLabel", "preflabel", "pref label", "pref_label"},
	ColumnAltLabel:   {"altLabel", "altlabel", "alt label", "alt_label"},
	ColumnDefinition: {"definition", "Definition"},
	ColumnBroader: {
		"broader",
		"broader term",
		"broader term (immediate, semicolon-separated, use prefLabel)",
	},
	ColumnExactMatch: {
		"exactMatch",
		"exact match",
		"exact match (skos:exactMatch, semicolon-separated, use full URIs)",
	},
	ColumnCloseMatch: {
		"closeMatch",
		"close match",
		"close match (skos:closeMatch, semicolon-separated, use full URIs)",
	},
}

// canonicalColumns fixes iteration order for error reporting.
var canonicalColumns = []Column{
	ColumnID,
	ColumnPrefLabel,
	ColumnAltLabel,
	ColumnDefinition,
	ColumnBroader,
	ColumnExactMatch,
	ColumnCloseMatch,
}

// normalizeHeader strips all whitespace and case-folds a header cell.
func normalizeHeader(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

// canonicalizeHeader maps each header index to its canonical column. A
// header missing any required column is a configuration error and aborts
// the run before any row is read.
func canonicalizeHeader(fields []string) (map[int]Column, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("CSV has no header row")
	}

	normToIndex := make(map[string]int, len(fields))
	for i, f := range fields {
		norm := normalizeHeader(f)
		if _, seen := normToIndex[norm]; !seen {
			normToIndex[norm] = i
		}
	}

	mapping := make(map[int]Column)
	var missing []string
	for _, canonical := range canonicalColumns {
		found := false
		for _, alias := range columnAliases[canonical] {
			if idx, ok := normToIndex[normalizeHeader(alias)]; ok {
				mapping[idx] = canonical
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, string(canonical))
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("CSV missing required columns (after alias matching): %v; existing columns: %v", missing, fields)
	}
	return mapping, nil
}

// SplitValues splits a semicolon-delimited cell into trimmed, non-empty
// values. Spreadsheet exports sometimes leave the string "nan" in empty
// cells; it is treated as absent.
func SplitValues(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "nan") {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

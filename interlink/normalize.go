package interlink

import (
	"fmt"
	"regexp"
)

// ukUS lists British spellings and their American equivalents for words that
// show up in soil and environmental vocabulary labels. Matching is on word
// boundaries, case-insensitive; replacements keep the US lowercase form,
// which is fine because lookups are case-folded anyway.
var ukUS = [][2]string{
	{"aluminium", "aluminum"},
	{"analyse", "analyze"},
	{"analysed", "analyzed"},
	{"analyser", "analyzer"},
	{"behaviour", "behavior"},
	{"colour", "color"},
	{"colouring", "coloring"},
	{"fertilisation", "fertilization"},
	{"fertilise", "fertilize"},
	{"fertiliser", "fertilizer"},
	{"fibre", "fiber"},
	{"immobilisation", "immobilization"},
	{"labour", "labor"},
	{"metre", "meter"},
	{"mineralisation", "mineralization"},
	{"mineralise", "mineralize"},
	{"modelling", "modeling"},
	{"mould", "mold"},
	{"neighbouring", "neighboring"},
	{"odour", "odor"},
	{"organisation", "organization"},
	{"organise", "organize"},
	{"salinisation", "salinization"},
	{"stabilisation", "stabilization"},
	{"stabilise", "stabilize"},
	{"sulphate", "sulfate"},
	{"sulphur", "sulfur"},
	{"utilisation", "utilization"},
	{"utilise", "utilize"},
	{"vapour", "vapor"},
}

var ukUSPatterns = compileUKUS()

func compileUKUS() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(ukUS))
	for i, pair := range ukUS {
		out[i] = regexp.MustCompile(fmt.Sprintf(`(?i)\b%s\b`, pair[0]))
	}
	return out
}

// NormalizeUKToUS rewrites British spellings in a label to their American
// form so labels match against US-spelled thesaurus dumps.
func NormalizeUKToUS(label string) string {
	for i, re := range ukUSPatterns {
		label = re.ReplaceAllString(label, ukUS[i][1])
	}
	return label
}

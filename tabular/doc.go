// Package tabular reads concept spreadsheets exported as CSV. It maps the
// messy real-world column headers onto a fixed set of canonical fields and
// normalizes cell values, so the rest of the pipeline only ever sees clean
// rows.
package tabular

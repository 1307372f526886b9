// Package glossary converts a flat glossary spreadsheet into a SKOS
// vocabulary. Each row carries a term, optional pipe-separated definitions,
// an optional source URL whose last path segment becomes the concept URI
// fragment, and optional semicolon-separated related terms resolved against
// the glossary itself.
package glossary

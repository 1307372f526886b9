// Package mindmap turns a SKOS vocabulary graph into an interactive HTML
// mind map. The graph is first flattened into a concept tree rooted at the
// scheme's top concepts; the tree is then embedded as JSON into a
// self-contained HTML page with search, navigation and per-concept detail.
package mindmap

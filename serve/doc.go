// Package serve runs a local preview server for the vocabulary mind map.
// It renders the page from a Turtle file, watches the file for changes,
// re-renders on save and pushes a reload event to connected browsers over
// Server-Sent Events.
package serve

// Package restore rebuilds the SoilVoc SKOS graph from its flat spreadsheet
// projection. Rows reference each other by prefLabel rather than identifier,
// so reconstruction is: classify every row (concept vs procedure), index
// labels, resolve broader references, route hierarchy vs procedure-ownership
// edges, derive inverses and top concepts, then optionally verify the result
// against a reference graph.
package restore

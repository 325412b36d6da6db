// Package text measures strings so that text labels can take part in
// layout.
//
// A label node uses a Copied dimension: its size is not authored but
// written before every pass by a Measurer. Two measurers are provided:
//
//   - FaceMeasurer: golang.org/x/image opentype faces, advance widths only
//   - ShapingMeasurer: HarfBuzz shaping via go-text/typesetting, with
//     bidirectional runs split by golang.org/x/text
//
// Both default to the Go Regular font. Wrap either in Cached to memoize
// results between passes.
//
// # Example usage
//
//	m := text.DefaultFaceMeasurer()
//	labels := text.NewLabels(text.NewCached(m))
//	labels.Set(id, text.Label{Text: "Hello"})
//
//	labels.Apply(graph, root) // before each layout.Solve(graph, root)
package text

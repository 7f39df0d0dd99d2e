// Package paragraphs extracts numbered paragraphs from raw transcript files.
//
// A paragraph starts at a line whose first token is a "N-M" marker, optionally
// followed by colons. The text captured for that paragraph is the first
// non-empty content after the marker, which may be on the marker line itself.
// Later lines are ignored until the next marker: multi-line paragraphs are
// intentionally not concatenated so existing datasets stay reproducible.
package paragraphs

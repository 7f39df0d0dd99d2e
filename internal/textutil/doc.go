// Package textutil provides small text helpers shared by the dataset tooling.
//
// The primary use cases are:
//   - Decoding transcript and annotation files in their configured encoding
//     (latin-1 by default) into UTF-8
//   - Rendering elapsed durations and count-dependent wording for summaries
package textutil

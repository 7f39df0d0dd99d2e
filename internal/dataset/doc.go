// Package dataset assembles the labeled paragraph dataset from a directory of
// transcripts and the annotation tables.
//
// Each file is resolved to a speech id, its labeled paragraphs are looked up
// in the content map, its paragraphs are extracted, and its language is
// detected. Only files in the target language are merged into the result.
// Per-file problems never abort a build; they are reported through a
// Reporter and counted as skips.
package dataset

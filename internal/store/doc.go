// Package store persists assembled datasets in SQLite.
//
// Each build is stored as a run: its summary, every paragraph key with its
// text and label, and the files that were skipped. Stored runs feed the split
// exporter so training sets can be regenerated without re-reading the
// transcripts. A file lock under the state directory keeps concurrent builds
// from interleaving writes.
package store

// Package identifier turns transcript file names into canonical speech ids.
//
// A file name such as "2012-06-29 cameron_eu.txt" yields the identifier
// "Cameron 2012-06-29". The identifier is passed through an ordered table of
// corrections for known data-entry mistakes and then looked up in the
// speeches table. Every outcome is reported through Resolution so callers
// can skip unresolvable files without treating them as errors.
package identifier

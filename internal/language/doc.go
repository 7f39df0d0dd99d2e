// Package language normalizes language codes and detects the dominant
// language of extracted transcript text.
//
// Detection results are ISO 639-1 codes. Text that cannot be classified
// (empty input, digits only, an unsupported script) yields Unknown so callers
// can treat it as a non-matching language instead of an error.
package language

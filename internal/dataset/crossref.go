package dataset

import (
	"speechset/internal/annotations"
	"speechset/internal/paragraphs"
)

// CrossReference marks the labeled paragraphs of a speech. rows are the
// content-map rows of speechID; each row is looked up in index (content id to
// paragraph title). Rows naming an unknown content id are reported and
// skipped. Only positive labels are produced.
func CrossReference(speechID int, index map[string]string, rows []annotations.ContentMap, file string, reporter Reporter) paragraphs.Labels {
	labels := make(paragraphs.Labels)
	for _, row := range rows {
		if row.SpeechID != speechID {
			continue
		}
		title, ok := index[row.SourceID]
		if !ok {
			if reporter != nil {
				reporter.UnknownParagraph(speechID, row.SourceID, file)
			}
			continue
		}
		labels[paragraphs.Key(speechID, title)] = true
	}
	return labels
}

// Package annotations loads the hand-coded annotation tables that describe
// canonical speeches, their paragraphs, and which paragraphs carry a label.
//
// Three delimited tables are supported:
//   - Speeches: Speech_ID, Speech_Identifier
//   - Speech contents: Speech_ID, Speech_Content_ID, Speech_Content_Title
//   - Content map: Content_Speech_ID, Content_Source_ID
//
// Columns are located by header name, so extra or reordered columns are
// tolerated. Rows whose speech id cannot be parsed are dropped from the
// content and map tables because they can never join against a resolved
// speech.
package annotations

package paragraphs

import (
	"github.com/jdkato/prose/tokenize"
)

// Tokenizer splits text into word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// TokenizerFunc adapts a function to Tokenizer.
type TokenizerFunc func(text string) []string

// Tokenize calls f.
func (f TokenizerFunc) Tokenize(text string) []string {
	return f(text)
}

// ProseTokenizer splits text into sentences with the punkt model and then into
// Penn Treebank word tokens.
type ProseTokenizer struct{}

// Tokenize implements Tokenizer.
func (ProseTokenizer) Tokenize(text string) []string {
	return tokenize.TextToWords(text)
}

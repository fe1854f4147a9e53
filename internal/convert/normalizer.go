package convert

import "regexp"

var (
	// A single-line comment runs from // to the end of the line. The
	// terminator itself is kept so line structure survives.
	lineCommentPattern = regexp.MustCompile(`//[^\n\r]*`)

	// Legacy dependency strings build absolute URLs by concatenating the
	// MetacatUI.root global into the path, optionally with surrounding
	// quotes and + operators. The whole construct has to go before the
	// path string can be extracted cleanly.
	rootTokenPattern = regexp.MustCompile(`["']?\s*\+?\s*MetacatUI\.root\s*\+?\s*["']?`)
)

// Normalizer produces matching views of source text. It never touches
// the parts of a file that are preserved verbatim; extractors call it
// only on the substrings they are about to match against.
type Normalizer struct {
	sink Sink
}

// NewNormalizer returns a normalizer reporting removed spans to sink.
func NewNormalizer(sink Sink) *Normalizer {
	if sink == nil {
		sink = NopSink{}
	}
	return &Normalizer{sink: sink}
}

// StripComments removes every single-line comment run from text.
func (n *Normalizer) StripComments(text string) string {
	return n.strip(text, lineCommentPattern, RemovedComment)
}

// StripRootToken removes the global-root-reference construct from text,
// leaving a clean relative module path behind.
func (n *Normalizer) StripRootToken(text string) string {
	return n.strip(text, rootTokenPattern, RemovedRootToken)
}

func (n *Normalizer) strip(text string, pattern *regexp.Regexp, kind RemovalKind) string {
	return pattern.ReplaceAllStringFunc(text, func(span string) string {
		n.sink.Removed(kind, span)
		return ""
	})
}

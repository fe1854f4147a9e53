package convert

import (
	"regexp"

	"github.com/robyngit/convert-metacatui-es6/internal/models"
)

var (
	// classMarkerPattern finds the annotation comment naming the class a
	// Backbone-style module exports.
	classMarkerPattern = regexp.MustCompile(`@class\s+(\w+)`)

	// extendTailPattern matches the unnamed "return Backbone.<x>extend("
	// idiom that concludes annotated class modules.
	extendTailPattern = regexp.MustCompile(`return\s+?Backbone\.(.*?)extend\(`)

	// wrapperClosePattern matches the closing tokens of the wrapper
	// invocation at the very end of the file.
	wrapperClosePattern = regexp.MustCompile(`\}\s*\)\s*;?\s*$`)

	// trailingReturnPattern matches a bare "return <name>" followed by
	// the wrapper's closing tokens.
	trailingReturnPattern = regexp.MustCompile(`return\s*([a-zA-Z0-9_]+)\s*;?\s*\}\s*\);?`)
)

// FooterExtractor locates the export expression at the tail of an AMD
// module. A module either returns a named value directly, or, for
// Backbone-style classes carrying a class-name marker, ends in an
// unnamed extend() call that first has to be hoisted into a named
// declaration.
type FooterExtractor struct{}

// NewFooterExtractor returns a footer extractor.
func NewFooterExtractor() *FooterExtractor {
	return &FooterExtractor{}
}

// Find locates the export expression in text. It returns the match plus
// the text the caller should continue with; the returned text differs
// from the input only when the class-name rewrite ran. A nil match
// means no export-producing pattern was found and the input text is
// returned unchanged.
func (e *FooterExtractor) Find(text string) (*models.FooterMatch, string) {
	rewritten, className := e.rewriteClassTail(text)

	// A literal trailing return takes precedence over the rewrite name.
	if match := trailingReturnPattern.FindStringSubmatch(rewritten); match != nil {
		return &models.FooterMatch{FullSpan: match[0], ExportName: match[1]}, rewritten
	}
	if className != "" {
		return &models.FooterMatch{ExportName: className}, rewritten
	}
	return nil, text
}

// rewriteClassTail hoists "return Backbone.<x>extend(" into
// "var <ClassName> = Backbone.<x>extend(" when the file carries a
// class-name marker. Turning the tail expression into a standalone
// declaration leaves the wrapper's own closing "});" dangling, so the
// single trailing closing sequence is stripped as well. The input is
// never mutated; the rewritten text is returned alongside the name.
func (e *FooterExtractor) rewriteClassTail(text string) (rewritten, className string) {
	marker := classMarkerPattern.FindStringSubmatch(text)
	if marker == nil {
		return text, ""
	}
	className = marker[1]

	if !extendTailPattern.MatchString(text) {
		return text, className
	}

	rewritten = extendTailPattern.ReplaceAllString(text, "var "+className+" = Backbone.${1}extend(")
	rewritten = removeWrapperClose(rewritten)
	return rewritten, className
}

// removeWrapperClose strips the single trailing "});" sequence.
func removeWrapperClose(text string) string {
	loc := wrapperClosePattern.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + text[loc[1]:]
}

package convert

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/robyngit/convert-metacatui-es6/internal/models"
)

// headerPattern matches the AMD wrapper invocation: define, a bracketed
// dependency list, the callback parameter list, and the opening brace of
// the callback body. The character classes span line breaks, so the
// header is found across multiple lines.
var headerPattern = regexp.MustCompile(`define\s*\(\s*\[([^\]]+)\]\s*,\s*function\s*\(([^)]+)\)\s*\{`)

// depLexer tokenizes the contents of the dependency list. Only String
// tokens carry meaning; every other rule exists so malformed input
// degrades to fewer extracted dependencies instead of a lexer failure.
var depLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
	{Name: "Punct", Pattern: `[,+\[\]().!/:\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Any", Pattern: `.`},
})

var stringTokenType = depLexer.Symbols()["String"]

// HeaderExtractor locates the dependency-injection header of an AMD
// module and extracts its dependency paths and parameter names.
type HeaderExtractor struct {
	normalizer *Normalizer
}

// NewHeaderExtractor returns an extractor reporting stripped spans to sink.
func NewHeaderExtractor(sink Sink) *HeaderExtractor {
	return &HeaderExtractor{normalizer: NewNormalizer(sink)}
}

// Find locates the wrapper invocation in text. It returns nil when no
// header is present; the caller records that as a soft diagnostic and
// keeps going with the unmodified text.
func (e *HeaderExtractor) Find(text string) *models.HeaderMatch {
	match := headerPattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	return &models.HeaderMatch{
		FullSpan:        match[0],
		DependencyPaths: e.parseDependencies(match[1]),
		ParameterNames:  e.parseParameters(match[2]),
	}
}

// parseDependencies tokenizes the bracketed list contents and collects
// every quoted path, in order. Comments and the global-root construct
// are stripped first so the extracted paths are clean relative paths.
func (e *HeaderExtractor) parseDependencies(listText string) []string {
	listText = e.normalizer.StripComments(listText)
	listText = e.normalizer.StripRootToken(listText)

	lx, err := depLexer.Lex("", strings.NewReader(listText))
	if err != nil {
		return nil
	}

	var deps []string
	for {
		tok, err := lx.Next()
		if err != nil || tok.EOF() {
			break
		}
		if tok.Type == stringTokenType && len(tok.Value) >= 2 {
			deps = append(deps, tok.Value[1:len(tok.Value)-1])
		}
	}
	return deps
}

// parseParameters splits the callback parameter list on commas.
func (e *HeaderExtractor) parseParameters(paramText string) []string {
	paramText = e.normalizer.StripComments(paramText)

	parts := strings.Split(paramText, ",")
	params := make([]string, 0, len(parts))
	for _, part := range parts {
		params = append(params, strings.TrimSpace(part))
	}
	return params
}

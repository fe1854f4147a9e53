package discover

import (
	"path"
	"strings"
)

// Pattern pairs a category name with the glob selecting its files.
// Patterns are evaluated in order and the first category to claim a
// file wins, so the catch-all entry has to stay last.
type Pattern struct {
	Category string
	Glob     string
}

// DefaultPatterns mirrors the MetacatUI source layout conventions.
var DefaultPatterns = []Pattern{
	{Category: "view", Glob: "src/**/views/**/*.js"},
	{Category: "model", Glob: "src/**/models/**/*.js"},
	{Category: "collection", Glob: "src/**/collections/**/*.js"},
	{Category: "router", Glob: "src/**/routers/**/*.js"},
	{Category: "test", Glob: "tests/**/*.js"},
	{Category: "config", Glob: "src/**/config.js"},
	{Category: "other", Glob: "src/**/*.js"},
}

// DefaultIgnore excludes manually imported components and the bundled
// DataONE website code.
var DefaultIgnore = []string{
	"src/components/**/*.js",
	"**/d1website.min.js",
}

// matchGlob reports whether the slash-separated relative path matches
// the glob. "**" matches any number of path segments, including none;
// the remaining segments use path.Match semantics.
func matchGlob(glob, rel string) bool {
	return matchSegments(strings.Split(glob, "/"), strings.Split(rel, "/"))
}

func matchSegments(glob, segments []string) bool {
	if len(glob) == 0 {
		return len(segments) == 0
	}
	if glob[0] == "**" {
		if matchSegments(glob[1:], segments) {
			return true
		}
		if len(segments) == 0 {
			return false
		}
		return matchSegments(glob, segments[1:])
	}
	if len(segments) == 0 {
		return false
	}
	ok, err := path.Match(glob[0], segments[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(glob[1:], segments[1:])
}

// matchAny reports whether rel matches any of the globs.
func matchAny(globs []string, rel string) bool {
	for _, glob := range globs {
		if matchGlob(glob, rel) {
			return true
		}
	}
	return false
}

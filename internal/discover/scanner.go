// Package discover enumerates the files a conversion run operates on.
// It classifies each file into a category by layout convention, tags it
// with its theme, and filters out vendored and binary content, yielding
// the (path, raw text) units the conversion engine consumes.
package discover

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/src-d/enry/v2"

	"github.com/robyngit/convert-metacatui-es6/internal/models"
	"github.com/robyngit/convert-metacatui-es6/internal/utils"
)

// Options tunes a scan. The zero value scans with the default patterns
// and ignore list and keeps vendored files.
type Options struct {
	Patterns     []Pattern // defaults to DefaultPatterns when empty
	Ignore       []string  // appended to DefaultIgnore
	SkipVendored bool      // drop files enry classifies as vendored
}

// Scanner walks a converted working tree and yields source units in a
// deterministic order: category priority first, lexical path order
// within a category. Each path is visited at most once.
type Scanner struct {
	options Options
}

// NewScanner creates a scanner with the given options.
func NewScanner(options Options) *Scanner {
	if len(options.Patterns) == 0 {
		options.Patterns = DefaultPatterns
	}
	options.Ignore = append(append([]string{}, DefaultIgnore...), options.Ignore...)
	return &Scanner{options: options}
}

// Scan enumerates root and returns one unit per matched file, with the
// raw text already read. Unit paths are absolute so the writer can
// persist converted text back without re-resolving.
func (s *Scanner) Scan(root string) ([]models.SourceUnit, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, utils.WrapProcessError("scan root "+root, err)
	}

	candidates, err := s.collectFiles(root)
	if err != nil {
		return nil, err
	}

	visited := make(map[string]bool, len(candidates))
	var units []models.SourceUnit
	for _, pattern := range s.options.Patterns {
		for _, rel := range candidates {
			if visited[rel] || !matchGlob(pattern.Glob, rel) {
				continue
			}
			visited[rel] = true

			abs := filepath.Join(root, filepath.FromSlash(rel))
			raw, err := os.ReadFile(abs)
			if err != nil {
				return nil, utils.WrapLoadError(abs, err)
			}
			if enry.IsBinary(raw) {
				continue
			}
			units = append(units, models.SourceUnit{
				Path:     abs,
				Category: pattern.Category,
				Theme:    Theme(rel),
				RawText:  string(raw),
			})
		}
	}
	return units, nil
}

// collectFiles walks root once and returns the slash-separated relative
// paths of every candidate file, in lexical order. The .git directory
// and ignored or vendored paths are pruned here so category matching
// only sees convertible files.
func (s *Scanner) collectFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if entry.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if matchAny(s.options.Ignore, rel) {
			return nil
		}
		if s.options.SkipVendored && enry.IsVendor(rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, utils.WrapProcessError("directory walk "+root, err)
	}
	return files, nil
}

// Theme returns the theme a path belongs to: the segment following a
// "themes" segment, or empty when the path is not theme-scoped.
func Theme(rel string) string {
	segments := strings.Split(filepath.ToSlash(rel), "/")
	for i, segment := range segments {
		if segment == "themes" && i+1 < len(segments) {
			return segments[i+1]
		}
	}
	return ""
}

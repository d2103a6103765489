package utils

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchPattern checks if a name matches a glob pattern. Invalid patterns
// match nothing.
func MatchPattern(pattern, name string) bool {
	match, _ := doublestar.Match(pattern, name)
	return match
}

// ExpandGlobs expands doublestar patterns relative to root into a sorted,
// deduplicated list of paths relative to root. Patterns that match nothing
// contribute nothing; the caller decides whether an empty result is an error.
func ExpandGlobs(root string, patterns []string) ([]string, error) {
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			rel, err := filepath.Rel(root, m)
			if err != nil {
				return nil, err
			}
			files = append(files, rel)
		}
	}

	files = Deduplicate(files, func(p string) string { return p })
	sort.Strings(files)
	return files, nil
}

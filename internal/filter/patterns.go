package filter

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/temirov/allfiles/internal/types"
)

const (
	pathSegmentSeparator  = '/'
	anyDepthPrefix        = "**/"
	descendantSuffix      = "/**"
	anyDepthSuffixPattern = "**"

	errorCompilePatternFormat = "compile ignore pattern %q: %w"
)

// Built-in noise, grouped by origin.
var (
	compiledArtifactSuffixes = []string{".pyc", ".pyo", ".class", ".o"}
	toolingCacheDirectories  = []string{"__pycache__", ".mypy_cache", ".pytest_cache", ".ruff_cache", ".tox"}
	virtualEnvDirectories    = []string{".venv", "venv"}
	editorDirectories        = []string{".idea", ".vscode", ".vs"}
	operatingSystemFiles     = []string{".DS_Store", "Thumbs.db"}
	versionControlDirectory  = []string{".git", ".svn", ".hg"}
)

type ignoreRule struct {
	pattern string
	matcher glob.Glob
}

// IgnorePatternSet is an immutable ordered list of glob rules evaluated against
// slash-separated paths relative to the traversal root.
type IgnorePatternSet struct {
	rules []ignoreRule
}

// NewIgnorePatternSet compiles the provided glob patterns using "/" as the separator.
func NewIgnorePatternSet(patterns ...string) (IgnorePatternSet, error) {
	rules := make([]ignoreRule, 0, len(patterns))
	for _, pattern := range patterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == "" {
			continue
		}
		matcher, compileError := glob.Compile(trimmedPattern, pathSegmentSeparator)
		if compileError != nil {
			return IgnorePatternSet{}, fmt.Errorf(errorCompilePatternFormat, trimmedPattern, compileError)
		}
		rules = append(rules, ignoreRule{pattern: trimmedPattern, matcher: matcher})
	}
	return IgnorePatternSet{rules: rules}, nil
}

// DefaultIgnorePatterns returns the built-in pattern set: compiled artifacts,
// tooling caches, virtual environments, editor metadata, OS metadata files,
// version-control directories, the snapshot artifact itself and its staging file.
func DefaultIgnorePatterns() IgnorePatternSet {
	var patterns []string
	for _, suffix := range compiledArtifactSuffixes {
		patterns = append(patterns, anyDepthSuffixPattern+suffix)
	}
	for _, directoryGroup := range [][]string{toolingCacheDirectories, virtualEnvDirectories, editorDirectories, versionControlDirectory} {
		for _, directoryName := range directoryGroup {
			patterns = append(patterns, directoryPatterns(directoryName)...)
		}
	}
	for _, fileName := range operatingSystemFiles {
		patterns = append(patterns, fileName, anyDepthPrefix+fileName)
	}
	patterns = append(patterns, types.OutputFileName, types.TemporaryFilePattern)

	patternSet, compileError := NewIgnorePatternSet(patterns...)
	if compileError != nil {
		panic(compileError)
	}
	return patternSet
}

// directoryPatterns expands a directory name into rules matching the directory
// and everything below it at any depth.
func directoryPatterns(directoryName string) []string {
	return []string{
		directoryName,
		directoryName + descendantSuffix,
		anyDepthPrefix + directoryName,
		anyDepthPrefix + directoryName + descendantSuffix,
	}
}

// Matches reports whether the slash-separated relative path matches any rule.
func (patternSet IgnorePatternSet) Matches(relativePath string) bool {
	for _, rule := range patternSet.rules {
		if rule.matcher.Match(relativePath) {
			return true
		}
	}
	return false
}

// Patterns returns the source text of every rule in evaluation order.
func (patternSet IgnorePatternSet) Patterns() []string {
	patterns := make([]string, 0, len(patternSet.rules))
	for _, rule := range patternSet.rules {
		patterns = append(patterns, rule.pattern)
	}
	return patterns
}

// Package filter decides which paths are left out of a snapshot.
package filter

import (
	"fmt"
	"path/filepath"

	"github.com/temirov/allfiles/internal/utils"
)

const (
	errorAbsoluteRootFormat      = "resolve traversal root %s: %w"
	errorAbsoluteExclusionFormat = "resolve excluded directory %s: %w"
)

// PathFilter is a pure predicate shared by the tree and content traversals.
type PathFilter struct {
	rootPath       string
	excludedRoot   string
	ignorePatterns IgnorePatternSet
}

// NewPathFilter builds a filter for paths below rootPath. An empty
// excludedRoot disables explicit exclusion; a relative one is resolved
// against the process working directory.
func NewPathFilter(rootPath string, excludedRoot string, ignorePatterns IgnorePatternSet) (*PathFilter, error) {
	absoluteRoot, rootError := filepath.Abs(rootPath)
	if rootError != nil {
		return nil, fmt.Errorf(errorAbsoluteRootFormat, rootPath, rootError)
	}
	pathFilter := &PathFilter{
		rootPath:       absoluteRoot,
		ignorePatterns: ignorePatterns,
	}
	if excludedRoot != "" {
		absoluteExclusion, exclusionError := filepath.Abs(excludedRoot)
		if exclusionError != nil {
			return nil, fmt.Errorf(errorAbsoluteExclusionFormat, excludedRoot, exclusionError)
		}
		pathFilter.excludedRoot = absoluteExclusion
	}
	return pathFilter, nil
}

// ExcludedRoot returns the absolute excluded directory, or "" when none is set.
func (pathFilter *PathFilter) ExcludedRoot() string {
	return pathFilter.excludedRoot
}

// ShouldIgnore reports whether path is at or below the excluded root, or
// whether its root-relative form matches any ignore pattern. The traversal
// root itself is never ignored by pattern.
func (pathFilter *PathFilter) ShouldIgnore(path string) bool {
	absolutePath := filepath.Clean(path)
	if !filepath.IsAbs(absolutePath) {
		absolutePath = filepath.Join(pathFilter.rootPath, absolutePath)
	}
	if pathFilter.excludedRoot != "" && utils.IsWithin(absolutePath, pathFilter.excludedRoot) {
		return true
	}
	relativePath := utils.RelativePathOrSelf(absolutePath, pathFilter.rootPath)
	if relativePath == "." {
		return false
	}
	return pathFilter.ignorePatterns.Matches(relativePath)
}

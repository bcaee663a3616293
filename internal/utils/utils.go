// Package utils contains general helper functions used across the allfiles tool.
package utils

import (
	"path/filepath"
	"strings"
)

const (
	pathSegmentSeparator = "/"
	extensionSeparator   = "."
)

// RelativePathOrSelf calculates the slash-separated relative path from root to fullPath.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	cleanRoot := filepath.Clean(root)

	if cleanPath == cleanRoot {
		return "."
	}

	relativePath, relErr := filepath.Rel(cleanRoot, cleanPath)
	if relErr != nil {
		return filepath.ToSlash(cleanPath)
	}
	return filepath.ToSlash(relativePath)
}

// IsWithin reports whether candidatePath equals ancestorPath or lies below it.
// Both paths are compared segment by segment, so "foo2" is not within "foo".
func IsWithin(candidatePath, ancestorPath string) bool {
	relativePath, relErr := filepath.Rel(filepath.Clean(ancestorPath), filepath.Clean(candidatePath))
	if relErr != nil {
		return false
	}
	relativePath = filepath.ToSlash(relativePath)
	if relativePath == "." {
		return true
	}
	return relativePath != ".." && !strings.HasPrefix(relativePath, ".."+pathSegmentSeparator)
}

// PathDepth returns the number of segments in a slash-separated relative path.
// The root itself (".") has depth zero.
func PathDepth(relativePath string) int {
	if relativePath == "" || relativePath == "." {
		return 0
	}
	return strings.Count(strings.Trim(relativePath, pathSegmentSeparator), pathSegmentSeparator) + 1
}

// FileExtension returns the extension of the file name without the leading dot.
// A name whose only dot is the leading one (".bashrc") has no extension.
func FileExtension(fileName string) string {
	baseName := filepath.Base(fileName)
	trimmedName := strings.TrimPrefix(baseName, extensionSeparator)
	separatorIndex := strings.LastIndex(trimmedName, extensionSeparator)
	if separatorIndex < 0 {
		return ""
	}
	return trimmedName[separatorIndex+1:]
}

package filter_test

import (
	"path/filepath"
	"testing"

	"github.com/temirov/allfiles/internal/filter"
)

const (
	rootDirectory     = "/project"
	excludedDirectory = "/project/foo"
)

func newTestFilter(testingHandle *testing.T, excludedRoot string) *filter.PathFilter {
	testingHandle.Helper()
	pathFilter, filterError := filter.NewPathFilter(rootDirectory, excludedRoot, filter.DefaultIgnorePatterns())
	if filterError != nil {
		testingHandle.Fatalf("NewPathFilter error: %v", filterError)
	}
	return pathFilter
}

// TestShouldIgnoreExcludedRoot verifies segment-wise prefix exclusion.
func TestShouldIgnoreExcludedRoot(testingHandle *testing.T) {
	pathFilter := newTestFilter(testingHandle, excludedDirectory)
	testCases := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "excluded directory itself", path: "/project/foo", expected: true},
		{name: "excluded descendant", path: "/project/foo/bar/baz.txt", expected: true},
		{name: "sibling sharing prefix", path: "/project/foo2/file.txt", expected: false},
		{name: "sibling file sharing prefix", path: "/project/foo.txt", expected: false},
		{name: "parent directory", path: "/project", expected: false},
		{name: "relative descendant", path: "foo/inner.go", expected: true},
		{name: "unrelated file", path: "/project/main.go", expected: false},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTest *testing.T) {
			if result := pathFilter.ShouldIgnore(filepath.FromSlash(testCase.path)); result != testCase.expected {
				subTest.Fatalf("ShouldIgnore(%q) = %v, want %v", testCase.path, result, testCase.expected)
			}
		})
	}
}

// TestShouldIgnoreWithoutExclusion verifies that built-in patterns apply even without an excluded root.
func TestShouldIgnoreWithoutExclusion(testingHandle *testing.T) {
	pathFilter := newTestFilter(testingHandle, "")
	if pathFilter.ExcludedRoot() != "" {
		testingHandle.Fatalf("expected no excluded root, got %q", pathFilter.ExcludedRoot())
	}
	if !pathFilter.ShouldIgnore("/project/.git/config") {
		testingHandle.Fatalf("expected version-control metadata to be ignored")
	}
	if pathFilter.ShouldIgnore("/project/foo/bar.txt") {
		testingHandle.Fatalf("expected regular file to be kept")
	}
	if pathFilter.ShouldIgnore(rootDirectory) {
		testingHandle.Fatalf("root must never be ignored")
	}
}

// TestShouldIgnoreMatchesRelativeToRoot verifies that ancestors above the root do not trigger patterns.
func TestShouldIgnoreMatchesRelativeToRoot(testingHandle *testing.T) {
	pathFilter, filterError := filter.NewPathFilter("/home/user/.venv/project", "", filter.DefaultIgnorePatterns())
	if filterError != nil {
		testingHandle.Fatalf("NewPathFilter error: %v", filterError)
	}
	if pathFilter.ShouldIgnore("/home/user/.venv/project/main.py") {
		testingHandle.Fatalf("patterns must be evaluated relative to the traversal root")
	}
}

// TestShouldIgnoreIsDeterministic verifies repeated calls agree.
func TestShouldIgnoreIsDeterministic(testingHandle *testing.T) {
	pathFilter := newTestFilter(testingHandle, excludedDirectory)
	candidatePaths := []string{"/project/foo/a", "/project/.idea", "/project/src/main.go", "/project/src/__pycache__/x.pyc"}
	for _, candidatePath := range candidatePaths {
		first := pathFilter.ShouldIgnore(candidatePath)
		for attempt := 0; attempt < 3; attempt++ {
			if pathFilter.ShouldIgnore(candidatePath) != first {
				testingHandle.Fatalf("ShouldIgnore(%q) changed between calls", candidatePath)
			}
		}
	}
}

// TestShouldIgnoreExclusionKeepsSurroundingSpaces verifies that an excluded name is used exactly as given.
func TestShouldIgnoreExclusionKeepsSurroundingSpaces(testingHandle *testing.T) {
	pathFilter := newTestFilter(testingHandle, "/project/ build ")
	if !pathFilter.ShouldIgnore("/project/ build /output.txt") {
		testingHandle.Fatalf("expected the space-padded directory to be excluded")
	}
	if pathFilter.ShouldIgnore("/project/build/output.txt") {
		testingHandle.Fatalf("expected the unpadded directory to be kept")
	}
}

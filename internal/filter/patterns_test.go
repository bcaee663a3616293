package filter_test

import (
	"testing"

	"github.com/temirov/allfiles/internal/filter"
)

// TestDefaultIgnorePatternsMatches verifies the built-in noise rules against root-relative paths.
func TestDefaultIgnorePatternsMatches(testingHandle *testing.T) {
	patternSet := filter.DefaultIgnorePatterns()
	testCases := []struct {
		name         string
		relativePath string
		expected     bool
	}{
		{name: "git directory", relativePath: ".git", expected: true},
		{name: "git descendant", relativePath: ".git/config", expected: true},
		{name: "nested git descendant", relativePath: "vendor/lib/.git/HEAD", expected: true},
		{name: "mercurial directory", relativePath: "sub/.hg", expected: true},
		{name: "bytecode at root", relativePath: "module.pyc", expected: true},
		{name: "bytecode nested", relativePath: "pkg/sub/module.pyc", expected: true},
		{name: "java class", relativePath: "build/Main.class", expected: true},
		{name: "pycache directory", relativePath: "pkg/__pycache__", expected: true},
		{name: "pycache content", relativePath: "pkg/__pycache__/mod.cpython-311.pyc", expected: true},
		{name: "virtual environment", relativePath: ".venv/bin/python", expected: true},
		{name: "plain venv", relativePath: "venv", expected: true},
		{name: "editor metadata", relativePath: ".idea/workspace.xml", expected: true},
		{name: "vscode settings", relativePath: "tools/.vscode/settings.json", expected: true},
		{name: "finder metadata", relativePath: "docs/.DS_Store", expected: true},
		{name: "windows thumbnails", relativePath: "Thumbs.db", expected: true},
		{name: "snapshot artifact", relativePath: "all_files.txt", expected: true},
		{name: "nested artifact name kept", relativePath: "docs/all_files.txt", expected: false},
		{name: "interrupted write leftover", relativePath: ".allfiles-123456.tmp", expected: true},
		{name: "nested leftover name kept", relativePath: "docs/.allfiles-123456.tmp", expected: false},
		{name: "source file", relativePath: "main.go", expected: false},
		{name: "gitignore file", relativePath: ".gitignore", expected: false},
		{name: "similar directory name", relativePath: "myvenv/lib.py", expected: false},
		{name: "suffix lookalike", relativePath: "notes.git", expected: false},
		{name: "github directory", relativePath: ".github/workflows/ci.yml", expected: false},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTest *testing.T) {
			if result := patternSet.Matches(testCase.relativePath); result != testCase.expected {
				subTest.Fatalf("Matches(%q) = %v, want %v", testCase.relativePath, result, testCase.expected)
			}
		})
	}
}

// TestNewIgnorePatternSetRejectsInvalidGlob verifies that malformed patterns are reported at construction.
func TestNewIgnorePatternSetRejectsInvalidGlob(testingHandle *testing.T) {
	if _, compileError := filter.NewIgnorePatternSet("[unterminated"); compileError == nil {
		testingHandle.Fatalf("expected compile error for malformed pattern")
	}
}

// TestNewIgnorePatternSetSkipsBlankPatterns verifies that blank patterns do not become rules.
func TestNewIgnorePatternSetSkipsBlankPatterns(testingHandle *testing.T) {
	patternSet, compileError := filter.NewIgnorePatternSet("", "  ", "*.log")
	if compileError != nil {
		testingHandle.Fatalf("NewIgnorePatternSet error: %v", compileError)
	}
	patterns := patternSet.Patterns()
	if len(patterns) != 1 || patterns[0] != "*.log" {
		testingHandle.Fatalf("unexpected patterns: %v", patterns)
	}
	if !patternSet.Matches("debug.log") || patternSet.Matches("logs/debug.log") {
		testingHandle.Fatalf("single star must not cross path separators")
	}
}

// Package types defines every cross-package data structure used by the allfiles CLI.
package types

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	// OutputFileName is the snapshot artifact written to the working directory.
	OutputFileName = "all_files.txt"

	// TemporaryFilePattern names the staging file an interrupted write can leave next to OutputFileName.
	TemporaryFilePattern = ".allfiles-*.tmp"
)

// TreeOutputNode represents a node of the directory tree section.
type TreeOutputNode struct {
	Path     string
	Name     string
	Type     string
	Children []*TreeOutputNode
}

// IsDirectory reports whether the node represents a directory.
func (node *TreeOutputNode) IsDirectory() bool {
	return node != nil && node.Type == NodeTypeDirectory
}

// FileOutput represents one file of the content section.
type FileOutput struct {
	Path      string
	Name      string
	Extension string
	Content   string
	SizeBytes int64
	MimeType  string
	// Readable is false when the file could not be read or decoded as text.
	// Such files keep their header and render an empty fenced block.
	Readable bool
}

// SnapshotSummary captures aggregate information about one snapshot run.
type SnapshotSummary struct {
	TotalFiles      int
	UnreadableFiles int
	TotalBytes      int64
}

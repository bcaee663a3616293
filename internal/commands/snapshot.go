package commands

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/allfiles/internal/filter"
	"github.com/temirov/allfiles/internal/output"
	"github.com/temirov/allfiles/internal/types"
)

// SnapshotBuilder runs the tree and content traversals over one root and
// assembles the snapshot document.
type SnapshotBuilder struct {
	FileSystem afero.Fs
	Filter     *filter.PathFilter
	Logger     *zap.Logger
	MaxDepth   int
	RootLabel  string
}

// Snapshot is the assembled document together with its aggregate counters.
type Snapshot struct {
	Document string
	Summary  types.SnapshotSummary
}

// RenderTree returns the tree section body for rootPath.
func (snapshotBuilder SnapshotBuilder) RenderTree(rootPath string) (string, error) {
	rootNode, treeError := snapshotBuilder.treeBuilder().GetTreeData(rootPath)
	if treeError != nil {
		return "", treeError
	}
	return output.RenderTree(rootNode), nil
}

// AppendFileContents returns the content section body for rootPath.
func (snapshotBuilder SnapshotBuilder) AppendFileContents(rootPath string) (string, error) {
	fileOutputs, contentError := snapshotBuilder.contentCollector().GetContentData(rootPath)
	if contentError != nil {
		return "", contentError
	}
	return output.RenderFileContents(fileOutputs), nil
}

// Build runs both traversals. The tree pass completes before the content pass
// starts; either failing discards the whole snapshot.
func (snapshotBuilder SnapshotBuilder) Build(rootPath string) (Snapshot, error) {
	rootNode, treeError := snapshotBuilder.treeBuilder().GetTreeData(rootPath)
	if treeError != nil {
		return Snapshot{}, treeError
	}
	fileOutputs, contentError := snapshotBuilder.contentCollector().GetContentData(rootPath)
	if contentError != nil {
		return Snapshot{}, contentError
	}
	return Snapshot{
		Document: output.RenderSnapshot(rootNode, fileOutputs),
		Summary:  summarize(fileOutputs),
	}, nil
}

func (snapshotBuilder SnapshotBuilder) treeBuilder() *TreeBuilder {
	return &TreeBuilder{
		FileSystem: snapshotBuilder.FileSystem,
		Filter:     snapshotBuilder.Filter,
		MaxDepth:   snapshotBuilder.MaxDepth,
		RootLabel:  snapshotBuilder.RootLabel,
	}
}

func (snapshotBuilder SnapshotBuilder) contentCollector() *ContentCollector {
	return &ContentCollector{
		FileSystem: snapshotBuilder.FileSystem,
		Filter:     snapshotBuilder.Filter,
		Logger:     snapshotBuilder.Logger,
		MaxDepth:   snapshotBuilder.MaxDepth,
	}
}

func summarize(fileOutputs []types.FileOutput) types.SnapshotSummary {
	var summary types.SnapshotSummary
	for _, fileOutput := range fileOutputs {
		summary.TotalFiles++
		summary.TotalBytes += fileOutput.SizeBytes
		if !fileOutput.Readable {
			summary.UnreadableFiles++
		}
	}
	return summary
}

// Package commands contains the traversal logic that collects the tree and content sections.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/temirov/allfiles/internal/types"
)

const (
	// errorBuildTreeFormat is used when building the tree fails.
	errorBuildTreeFormat = "building tree for %s: %w"

	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"

	// errorDepthFormat is used when recursion exceeds the depth limit.
	errorDepthFormat = "%w: %s is deeper than %d levels"
)

// GetTreeData collects the directory tree rooted at rootDirectoryPath.
// Entries are sorted by name and filtered before recursion, so excluded
// directories are never read. Symbolic links are listed as files and not
// followed. Any directory read error aborts the whole tree.
func (treeBuilder *TreeBuilder) GetTreeData(rootDirectoryPath string) (*types.TreeOutputNode, error) {
	if treeBuilder.Filter == nil {
		return nil, errMissingFilter
	}
	cleanRootPath := filepath.Clean(rootDirectoryPath)
	rootName := treeBuilder.RootLabel
	if rootName == "" {
		rootName = filepath.Base(cleanRootPath)
	}
	rootNode := &types.TreeOutputNode{
		Path: cleanRootPath,
		Name: rootName,
		Type: types.NodeTypeDirectory,
	}

	children, buildError := treeBuilder.buildTreeNodes(effectiveFileSystem(treeBuilder.FileSystem), cleanRootPath, 0)
	if buildError != nil {
		return nil, fmt.Errorf(errorBuildTreeFormat, rootDirectoryPath, buildError)
	}
	rootNode.Children = children
	return rootNode, nil
}

// buildTreeNodes recursively builds child nodes for the directory at depth.
func (treeBuilder *TreeBuilder) buildTreeNodes(fileSystem afero.Fs, currentDirectoryPath string, depth int) ([]*types.TreeOutputNode, error) {
	maxDepth := effectiveMaxDepth(treeBuilder.MaxDepth)
	if depth > maxDepth {
		return nil, fmt.Errorf(errorDepthFormat, ErrDepthExceeded, currentDirectoryPath, maxDepth)
	}

	directoryEntries, readDirectoryError := afero.ReadDir(fileSystem, currentDirectoryPath)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, currentDirectoryPath, readDirectoryError)
	}

	var nodes []*types.TreeOutputNode
	for _, directoryEntry := range directoryEntries {
		childPath := filepath.Join(currentDirectoryPath, directoryEntry.Name())
		if treeBuilder.Filter.ShouldIgnore(childPath) {
			continue
		}

		node := &types.TreeOutputNode{
			Path: childPath,
			Name: directoryEntry.Name(),
			Type: types.NodeTypeFile,
		}
		if directoryEntry.IsDir() {
			node.Type = types.NodeTypeDirectory
			childNodes, buildError := treeBuilder.buildTreeNodes(fileSystem, childPath, depth+1)
			if buildError != nil {
				return nil, buildError
			}
			node.Children = childNodes
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

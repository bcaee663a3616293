// Package output renders snapshot sections and writes the final artifact.
package output

import (
	"strings"

	"github.com/temirov/allfiles/internal/types"
)

const (
	indentSpacer        = "  "
	directorySuffix     = "/"
	lineBreak           = "\n"
	treeSectionHeader   = "## Directory Tree\n\n"
	contentSectionTitle = "\n## File Contents\n\n"
	fileHeaderPrefix    = "### "
	codeFence           = "```"
)

// RenderTree renders a directory node as indented lines: every directory as
// "<indent><name>/" and every file one level deeper than its parent line.
func RenderTree(rootNode *types.TreeOutputNode) string {
	var builder strings.Builder
	writeTreeNode(&builder, rootNode, 0)
	return builder.String()
}

func writeTreeNode(builder *strings.Builder, node *types.TreeOutputNode, depth int) {
	if node == nil {
		return
	}
	indent := strings.Repeat(indentSpacer, depth)
	builder.WriteString(indent + node.Name + directorySuffix + lineBreak)
	for _, child := range node.Children {
		if child.IsDirectory() {
			writeTreeNode(builder, child, depth+1)
			continue
		}
		builder.WriteString(indent + indentSpacer + child.Name + lineBreak)
	}
}

// RenderFileContents renders one header and fenced block per file, in order.
// Unreadable files keep their header and get an empty block.
func RenderFileContents(fileOutputs []types.FileOutput) string {
	var builder strings.Builder
	for _, fileOutput := range fileOutputs {
		builder.WriteString(fileHeaderPrefix + fileOutput.Name + lineBreak + lineBreak)
		builder.WriteString(codeFence + fileOutput.Extension + lineBreak)
		builder.WriteString(fileOutput.Content)
		builder.WriteString(lineBreak + codeFence + lineBreak + lineBreak)
	}
	return builder.String()
}

// RenderSnapshot assembles the full document: the tree section followed by the content section.
func RenderSnapshot(rootNode *types.TreeOutputNode, fileOutputs []types.FileOutput) string {
	var builder strings.Builder
	builder.WriteString(treeSectionHeader)
	builder.WriteString(RenderTree(rootNode))
	builder.WriteString(contentSectionTitle)
	builder.WriteString(RenderFileContents(fileOutputs))
	return builder.String()
}

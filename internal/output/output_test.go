package output_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/temirov/allfiles/internal/output"
	"github.com/temirov/allfiles/internal/types"
)

func sampleTree() *types.TreeOutputNode {
	return &types.TreeOutputNode{
		Name: ".",
		Type: types.NodeTypeDirectory,
		Children: []*types.TreeOutputNode{
			{Name: "a.txt", Type: types.NodeTypeFile},
			{
				Name: "src",
				Type: types.NodeTypeDirectory,
				Children: []*types.TreeOutputNode{
					{Name: "main.go", Type: types.NodeTypeFile},
					{Name: "empty", Type: types.NodeTypeDirectory},
				},
			},
			{Name: "z.md", Type: types.NodeTypeFile},
		},
	}
}

func TestRenderTree(t *testing.T) {
	expected := "./\n" +
		"  a.txt\n" +
		"  src/\n" +
		"    main.go\n" +
		"    empty/\n" +
		"  z.md\n"
	if diff := cmp.Diff(expected, output.RenderTree(sampleTree())); diff != "" {
		t.Fatalf("unexpected tree (-want +got):\n%s", diff)
	}
}

func TestRenderTreeNilRoot(t *testing.T) {
	if rendered := output.RenderTree(nil); rendered != "" {
		t.Fatalf("expected empty rendering for nil root, got %q", rendered)
	}
}

func TestRenderFileContents(t *testing.T) {
	files := []types.FileOutput{
		{Name: "a.txt", Extension: "txt", Content: "hello", Readable: true},
		{Name: "Makefile", Extension: "", Content: "all:\n", Readable: true},
		{Name: "broken.bin", Extension: "bin"},
	}
	expected := "### a.txt\n\n```txt\nhello\n```\n\n" +
		"### Makefile\n\n```\nall:\n\n```\n\n" +
		"### broken.bin\n\n```bin\n\n```\n\n"
	if diff := cmp.Diff(expected, output.RenderFileContents(files)); diff != "" {
		t.Fatalf("unexpected contents (-want +got):\n%s", diff)
	}
}

func TestRenderSnapshotSingleFile(t *testing.T) {
	rootNode := &types.TreeOutputNode{
		Name:     ".",
		Type:     types.NodeTypeDirectory,
		Children: []*types.TreeOutputNode{{Name: "a.txt", Type: types.NodeTypeFile}},
	}
	files := []types.FileOutput{{Name: "a.txt", Extension: "txt", Content: "hello", Readable: true}}
	expected := "## Directory Tree\n\n" +
		"./\n" +
		"  a.txt\n" +
		"\n## File Contents\n\n" +
		"### a.txt\n\n" +
		"```txt\n" +
		"hello\n" +
		"```\n\n"
	if diff := cmp.Diff(expected, output.RenderSnapshot(rootNode, files)); diff != "" {
		t.Fatalf("unexpected snapshot (-want +got):\n%s", diff)
	}
}

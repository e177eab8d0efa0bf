package domain

import "testing"

func TestBuildTree_Hierarchy(t *testing.T) {
	idx := &Index{
		Root: "/library",
		Folders: []FolderEntry{
			{FolderMetadata: FolderMetadata{Name: "Papers"}, Path: "papers"},
			{FolderMetadata: FolderMetadata{Name: "Receipts"}, Path: "finance/receipts"},
		},
		Files: []FileEntry{
			{FileMetadata: FileMetadata{Filename: "raft.pdf", Title: "Raft"}, Path: "papers"},
			{FileMetadata: FileMetadata{Filename: "notes.txt"}, Path: "."},
		},
	}

	root := BuildTree(idx)

	if root.Name != "library" {
		t.Errorf("root name = %q, want library", root.Name)
	}
	// finance comes before papers; files follow directories.
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 root children, got %d", len(root.Children))
	}
	if root.Children[0].Name != "finance" || !root.Children[0].IsDir {
		t.Errorf("first child = %q, want finance dir", root.Children[0].Name)
	}
	if root.Children[1].Name != "papers" {
		t.Errorf("second child = %q, want papers", root.Children[1].Name)
	}
	if root.Children[2].Name != "notes.txt" || root.Children[2].File == nil {
		t.Errorf("third child = %q, want notes.txt file node", root.Children[2].Name)
	}

	finance := root.Children[0]
	if finance.Folder != nil {
		t.Error("finance has no record; Folder must be nil")
	}
	if len(finance.Children) != 1 || finance.Children[0].Name != "receipts" {
		t.Fatalf("finance children wrong: %+v", finance.Children)
	}
	if finance.Children[0].Folder == nil || finance.Children[0].Folder.Name != "Receipts" {
		t.Error("receipts node should carry its folder record")
	}

	papers := root.Children[1]
	if papers.Folder == nil || papers.Folder.Name != "Papers" {
		t.Error("papers node should carry its folder record")
	}
	if len(papers.Children) != 1 || papers.Children[0].File == nil {
		t.Fatalf("papers should hold one file node, got %+v", papers.Children)
	}
	if papers.Children[0].Path != "papers/raft.pdf" {
		t.Errorf("file node path = %q", papers.Children[0].Path)
	}
}

func TestTreeNode_FlattenRespectsExpansion(t *testing.T) {
	idx := &Index{
		Folders: []FolderEntry{
			{FolderMetadata: FolderMetadata{Name: "A"}, Path: "a"},
			{FolderMetadata: FolderMetadata{Name: "B"}, Path: "a/b"},
		},
	}
	root := BuildTree(idx)

	flat := root.Flatten()
	if len(flat) != 2 { // root + collapsed a
		t.Fatalf("collapsed tree should flatten to 2 nodes, got %d", len(flat))
	}

	flat[1].Toggle()
	flat = root.Flatten()
	if len(flat) != 3 {
		t.Fatalf("expanded tree should flatten to 3 nodes, got %d", len(flat))
	}
	if flat[2].Name != "b" || flat[2].Depth() != 2 {
		t.Errorf("deep node = %q depth %d", flat[2].Name, flat[2].Depth())
	}
}

func TestTreeNode_Label(t *testing.T) {
	folder := &TreeNode{Name: "papers", Folder: &FolderEntry{FolderMetadata: FolderMetadata{Name: "Research"}}}
	if folder.Label() != "Research" {
		t.Errorf("labeled folder = %q", folder.Label())
	}

	bare := &TreeNode{Name: "misc", IsDir: true}
	if bare.Label() != "misc" {
		t.Errorf("bare folder = %q", bare.Label())
	}

	file := &TreeNode{Name: "raft.pdf", File: &FileEntry{FileMetadata: FileMetadata{Title: "Raft"}}}
	if file.Label() != "Raft" {
		t.Errorf("titled file = %q", file.Label())
	}
}

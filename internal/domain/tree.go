package domain

import (
	"path"
	"slices"
	"strings"
)

// TreeNode is a browsable view of an index. Folder nodes mirror the
// directory hierarchy below the root; file nodes hang off the folder
// whose directory holds their record.
type TreeNode struct {
	Path       string // relative to the index root; "." for the root
	Name       string
	IsDir      bool
	Folder     *FolderEntry // folder record, when one exists
	File       *FileEntry   // set on file nodes
	Children   []*TreeNode
	IsExpanded bool
	Parent     *TreeNode
}

// BuildTree arranges an index into a navigation tree. Intermediate
// directories without records still get nodes so every entry is
// reachable. Children are sorted folders-first, then by name.
func BuildTree(idx *Index) *TreeNode {
	root := &TreeNode{Path: ".", Name: ".", IsDir: true, IsExpanded: true}
	if idx == nil {
		return root
	}
	if idx.Root != "" {
		root.Name = path.Base(strings.TrimRight(idx.Root, "/"))
	}

	nodes := map[string]*TreeNode{".": root}
	for i := range idx.Folders {
		e := &idx.Folders[i]
		dirNode(nodes, e.Path).Folder = e
	}
	for i := range idx.Files {
		e := &idx.Files[i]
		dir := dirNode(nodes, e.Path)
		dir.Children = append(dir.Children, &TreeNode{
			Path:   e.DisplayPath(),
			Name:   e.Filename,
			File:   e,
			Parent: dir,
		})
	}

	sortChildren(root)
	return root
}

// dirNode returns the node for a relative directory path, creating it and
// any missing ancestors.
func dirNode(nodes map[string]*TreeNode, rel string) *TreeNode {
	rel = path.Clean(strings.TrimSuffix(rel, "/"))
	if rel == "" {
		rel = "."
	}
	if n, ok := nodes[rel]; ok {
		return n
	}
	parent := dirNode(nodes, path.Dir(rel))
	n := &TreeNode{
		Path:   rel,
		Name:   path.Base(rel),
		IsDir:  true,
		Parent: parent,
	}
	parent.Children = append(parent.Children, n)
	nodes[rel] = n
	return n
}

func sortChildren(n *TreeNode) {
	slices.SortFunc(n.Children, func(a, b *TreeNode) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	for _, c := range n.Children {
		sortChildren(c)
	}
}

// Flatten returns all visible nodes in the tree (for list rendering)
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	n.flattenRecursive(&result)
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// Depth returns the depth of this node in the tree
func (n *TreeNode) Depth() int {
	depth := 0
	current := n.Parent
	for current != nil {
		depth++
		current = current.Parent
	}
	return depth
}

// Toggle expands or collapses the node
func (n *TreeNode) Toggle() {
	n.IsExpanded = !n.IsExpanded
}

// Expand sets the node as expanded
func (n *TreeNode) Expand() {
	n.IsExpanded = true
}

// Collapse sets the node as collapsed
func (n *TreeNode) Collapse() {
	n.IsExpanded = false
}

// Label returns the node's display text: a folder's record name when it
// has one, the bare directory or file name otherwise.
func (n *TreeNode) Label() string {
	if n.Folder != nil && n.Folder.Name != "" {
		return n.Folder.Name
	}
	if n.File != nil && n.File.Title != "" {
		return n.File.Title
	}
	return n.Name
}

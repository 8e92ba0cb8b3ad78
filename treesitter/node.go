package treesitter

import (
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

// Node is a view of a single syntax node. The zero value represents a
// missing node.
type Node struct {
	node *sitter.Node
	tree *Tree
}

// IsZero reports whether n refers to no node.
func (n Node) IsZero() bool {
	return n.node == nil || n.tree == nil
}

// Kind returns the grammar category of the node, e.g. "function_item".
func (n Node) Kind() string {
	if n.IsZero() {
		return ""
	}
	return n.node.Type()
}

// IsNamed reports whether the node is a named grammar production.
func (n Node) IsNamed() bool {
	return !n.IsZero() && n.node.IsNamed()
}

// StartByte is the offset of the node's first byte in the source.
func (n Node) StartByte() int {
	if n.IsZero() {
		return 0
	}
	return int(n.node.StartByte())
}

// EndByte is the offset just past the node's last byte.
func (n Node) EndByte() int {
	if n.IsZero() {
		return 0
	}
	return int(n.node.EndByte())
}

// Len is the length of the node's text in bytes.
func (n Node) Len() int {
	return n.EndByte() - n.StartByte()
}

// Text returns the source text covered by the node.
func (n Node) Text() (string, error) {
	if n.IsZero() {
		return "", fmt.Errorf("%w: nil node", ErrTextExtraction)
	}
	return n.tree.slice(n.StartByte(), n.EndByte())
}

// Children returns every direct child, named and anonymous, in source order.
func (n Node) Children() []Node {
	if n.IsZero() {
		return nil
	}
	count := int(n.node.ChildCount())
	children := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		if child := n.node.Child(i); child != nil {
			children = append(children, Node{node: child, tree: n.tree})
		}
	}
	return children
}

// NamedChildren returns the direct named children in source order.
func (n Node) NamedChildren() []Node {
	if n.IsZero() {
		return nil
	}
	count := int(n.node.NamedChildCount())
	children := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		if child := n.node.NamedChild(i); child != nil {
			children = append(children, Node{node: child, tree: n.tree})
		}
	}
	return children
}

// ChildByField returns the child stored under a grammar field name.
func (n Node) ChildByField(name string) (Node, bool) {
	if n.IsZero() {
		return Node{}, false
	}
	child := n.node.ChildByFieldName(name)
	if child == nil {
		return Node{}, false
	}
	return Node{node: child, tree: n.tree}, true
}

// Parent returns the enclosing node, or the zero Node for the root.
func (n Node) Parent() Node {
	if n.IsZero() {
		return Node{}
	}
	parent := n.node.Parent()
	if parent == nil {
		return Node{}
	}
	return Node{node: parent, tree: n.tree}
}

// Gap returns the source text between the end of n and the start of next.
// It is empty when the nodes touch or overlap.
func (n Node) Gap(next Node) (string, error) {
	if n.IsZero() || next.IsZero() {
		return "", fmt.Errorf("%w: nil node", ErrTextExtraction)
	}
	if next.StartByte() <= n.EndByte() {
		return "", nil
	}
	return n.tree.slice(n.EndByte(), next.StartByte())
}

// LineIndent returns the whitespace between the start of the node's line and
// the node itself. ok is false when other text precedes the node on its line.
func (n Node) LineIndent() (indent string, ok bool) {
	if n.IsZero() {
		return "", false
	}
	src := n.tree.source
	start := n.StartByte()
	if start > len(src) {
		return "", false
	}
	i := start
	for i > 0 && (src[i-1] == ' ' || src[i-1] == '\t') {
		i--
	}
	if i > 0 && src[i-1] != '\n' {
		return "", false
	}
	return string(src[i:start]), true
}

func (t *Tree) slice(start, end int) (string, error) {
	if start < 0 || end < start || end > len(t.source) {
		return "", fmt.Errorf("%w: range [%d:%d] outside source of %d bytes", ErrTextExtraction, start, end, len(t.source))
	}
	b := t.source[start:end]
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: range [%d:%d] is not valid UTF-8", ErrTextExtraction, start, end)
	}
	return string(b), nil
}

// Package treesitter adapts github.com/smacker/go-tree-sitter grammars into
// syntax trees whose nodes index into a source buffer owned by the tree.
package treesitter

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

var (
	// ErrUnsupportedLanguage is returned when no grammar is available for a language.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrParseFailure is returned when the grammar cannot produce a rooted tree.
	ErrParseFailure = errors.New("failed to parse document")
	// ErrTextExtraction is returned when a node's byte range cannot be sliced from the source.
	ErrTextExtraction = errors.New("failed to extract node text")
)

// Tree is a parsed document. It owns a copy of the source text, and every
// Node obtained from it is only valid until Close is called.
type Tree struct {
	source []byte
	tree   *sitter.Tree
}

// Parse builds a syntax tree for source using the given grammar.
func Parse(ctx context.Context, source []byte, lang *sitter.Language) (*Tree, error) {
	if lang == nil {
		return nil, fmt.Errorf("%w: no grammar provided", ErrUnsupportedLanguage)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	// The tree references byte offsets, so it gets its own copy of the text.
	owned := make([]byte, len(source))
	copy(owned, source)

	tree, err := parser.ParseCtx(ctx, nil, owned)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("%w: parser returned no tree", ErrParseFailure)
	}
	if tree.RootNode() == nil {
		tree.Close()
		return nil, fmt.Errorf("%w: parser returned no root node", ErrParseFailure)
	}

	return &Tree{source: owned, tree: tree}, nil
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	return Node{node: t.tree.RootNode(), tree: t}
}

// Source returns the text the tree was built from.
func (t *Tree) Source() []byte {
	return t.source
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

package schema

import (
	"io/fs"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/sevigo/codesplit/treesitter"
)

// LanguagePlugin supplies the grammar for one language identifier.
type LanguagePlugin interface {
	Name() string
	Extensions() []string
	CanHandle(path string, info fs.FileInfo) bool
	Grammar() *sitter.Language
}

// StructuralExtractor is implemented by plugins that know how to cut their
// language into declaration-level chunks. Plugins without one are split by
// the generic size-bounded packer.
type StructuralExtractor interface {
	Extract(root treesitter.Node, maxSize int) ([]string, error)
}

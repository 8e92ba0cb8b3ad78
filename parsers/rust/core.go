package rust

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/sevigo/codesplit/schema"
)

type RustPlugin struct {
	logger *slog.Logger
}

var (
	_ schema.LanguagePlugin      = (*RustPlugin)(nil)
	_ schema.StructuralExtractor = (*RustPlugin)(nil)
)

func NewRustPlugin(logger *slog.Logger) schema.LanguagePlugin {
	if logger == nil {
		logger = slog.Default()
	}
	return &RustPlugin{
		logger: logger,
	}
}

func (p *RustPlugin) Name() string {
	return "rust"
}

func (p *RustPlugin) Extensions() []string {
	return []string{".rs"}
}

func (p *RustPlugin) CanHandle(path string, info fs.FileInfo) bool {
	if info != nil && info.IsDir() {
		return false
	}
	return filepath.Ext(path) == ".rs"
}

func (p *RustPlugin) Grammar() *sitter.Language {
	return rust.GetLanguage()
}

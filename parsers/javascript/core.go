package javascript

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/sevigo/codesplit/schema"
)

var extensions = []string{".js", ".mjs", ".cjs", ".jsx"}

type JavaScriptPlugin struct {
	logger *slog.Logger
}

var (
	_ schema.LanguagePlugin      = (*JavaScriptPlugin)(nil)
	_ schema.StructuralExtractor = (*JavaScriptPlugin)(nil)
)

func NewJavaScriptPlugin(logger *slog.Logger) schema.LanguagePlugin {
	if logger == nil {
		logger = slog.Default()
	}
	return &JavaScriptPlugin{logger: logger}
}

func (p *JavaScriptPlugin) Name() string {
	return "javascript"
}

func (p *JavaScriptPlugin) Extensions() []string {
	return extensions
}

func (p *JavaScriptPlugin) CanHandle(path string, info fs.FileInfo) bool {
	if info != nil && info.IsDir() {
		return false
	}
	return slices.Contains(extensions, filepath.Ext(path))
}

func (p *JavaScriptPlugin) Grammar() *sitter.Language {
	return javascript.GetLanguage()
}

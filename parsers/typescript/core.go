package typescript

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/sevigo/codesplit/schema"
)

var extensions = []string{".ts", ".mts", ".cts"}

// TypeScriptPlugin splits TypeScript with the JavaScript declaration rules,
// extended with TypeScript's type-level declarations.
type TypeScriptPlugin struct {
	logger *slog.Logger
}

var (
	_ schema.LanguagePlugin      = (*TypeScriptPlugin)(nil)
	_ schema.StructuralExtractor = (*TypeScriptPlugin)(nil)
)

func NewTypeScriptPlugin(logger *slog.Logger) schema.LanguagePlugin {
	if logger == nil {
		logger = slog.Default()
	}
	return &TypeScriptPlugin{logger: logger}
}

func (p *TypeScriptPlugin) Name() string {
	return "typescript"
}

func (p *TypeScriptPlugin) Extensions() []string {
	return extensions
}

func (p *TypeScriptPlugin) CanHandle(path string, info fs.FileInfo) bool {
	if info != nil && info.IsDir() {
		return false
	}
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(path)))
}

func (p *TypeScriptPlugin) Grammar() *sitter.Language {
	return typescript.GetLanguage()
}

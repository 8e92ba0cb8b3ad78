package python

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/sevigo/codesplit/schema"
)

type PythonPlugin struct {
	logger *slog.Logger
}

var (
	_ schema.LanguagePlugin      = (*PythonPlugin)(nil)
	_ schema.StructuralExtractor = (*PythonPlugin)(nil)
)

func NewPythonPlugin(logger *slog.Logger) schema.LanguagePlugin {
	if logger == nil {
		logger = slog.Default()
	}
	return &PythonPlugin{logger: logger}
}

func (p *PythonPlugin) Name() string {
	return "python"
}

func (p *PythonPlugin) Extensions() []string {
	return []string{".py", ".pyi"}
}

func (p *PythonPlugin) CanHandle(path string, info fs.FileInfo) bool {
	if info != nil && info.IsDir() {
		return false
	}
	switch filepath.Ext(path) {
	case ".py", ".pyi":
		return true
	default:
		return false
	}
}

func (p *PythonPlugin) Grammar() *sitter.Language {
	return python.GetLanguage()
}

package golang

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/sevigo/codesplit/schema"
)

// GoPlugin registers the Go grammar only. Go sources have no structural
// extractor and are split by the generic packer.
type GoPlugin struct {
	logger *slog.Logger
}

func NewGoPlugin(logger *slog.Logger) schema.LanguagePlugin {
	if logger == nil {
		logger = slog.Default()
	}
	return &GoPlugin{
		logger: logger,
	}
}

func (p *GoPlugin) Name() string {
	return "go"
}

func (p *GoPlugin) Extensions() []string {
	return []string{".go"}
}

func (p *GoPlugin) CanHandle(path string, info fs.FileInfo) bool {
	if info != nil && info.IsDir() {
		return false
	}

	ext := filepath.Ext(path)
	if strings.HasSuffix(path, "_test.go") {
		return false
	}
	return ext == ".go"
}

func (p *GoPlugin) Grammar() *sitter.Language {
	return golang.GetLanguage()
}

package yaml

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/yaml"

	"github.com/sevigo/codesplit/schema"
)

// YamlPlugin registers the YAML grammar.
type YamlPlugin struct {
	logger *slog.Logger
}

func NewYamlPlugin(logger *slog.Logger) schema.LanguagePlugin {
	if logger == nil {
		logger = slog.Default()
	}
	return &YamlPlugin{
		logger: logger,
	}
}

func (p *YamlPlugin) Name() string {
	return "yaml"
}

func (p *YamlPlugin) Extensions() []string {
	return []string{".yaml", ".yml"}
}

func (p *YamlPlugin) CanHandle(path string, info fs.FileInfo) bool {
	if info != nil && info.IsDir() {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (p *YamlPlugin) Grammar() *sitter.Language {
	return yaml.GetLanguage()
}

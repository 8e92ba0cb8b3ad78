package protobuf

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/protobuf"

	"github.com/sevigo/codesplit/schema"
)

// ProtobufPlugin registers the Protocol Buffers grammar.
type ProtobufPlugin struct {
	logger *slog.Logger
}

func NewProtobufPlugin(logger *slog.Logger) schema.LanguagePlugin {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProtobufPlugin{
		logger: logger,
	}
}

func (p *ProtobufPlugin) Name() string {
	return "protobuf"
}

func (p *ProtobufPlugin) Extensions() []string {
	return []string{".proto"}
}

func (p *ProtobufPlugin) CanHandle(path string, info fs.FileInfo) bool {
	if info != nil && info.IsDir() {
		return false
	}
	return strings.EqualFold(filepath.Ext(path), ".proto")
}

func (p *ProtobufPlugin) Grammar() *sitter.Language {
	return protobuf.GetLanguage()
}

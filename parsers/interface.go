package parsers

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/sevigo/codesplit/parsers/golang"
	"github.com/sevigo/codesplit/parsers/javascript"
	"github.com/sevigo/codesplit/parsers/protobuf"
	"github.com/sevigo/codesplit/parsers/python"
	"github.com/sevigo/codesplit/parsers/rust"
	"github.com/sevigo/codesplit/parsers/terraform"
	"github.com/sevigo/codesplit/parsers/typescript"
	"github.com/sevigo/codesplit/parsers/yaml"
	"github.com/sevigo/codesplit/schema"
)

// ParserRegistry tracks registered language plugins
type ParserRegistry interface {
	RegisterParser(plugin schema.LanguagePlugin) error
	GetParser(language string) (schema.LanguagePlugin, error)
	GetParserForFile(path string, info fs.FileInfo) (schema.LanguagePlugin, error)
	GetParserForExtension(ext string) (schema.LanguagePlugin, error)
	GetAllParsers() []schema.LanguagePlugin
}

// pluginFactories lists the built-in grammars in registration order.
var pluginFactories = []struct {
	name    string
	factory func(*slog.Logger) schema.LanguagePlugin
}{
	{"rust", rust.NewRustPlugin},
	{"python", python.NewPythonPlugin},
	{"javascript", javascript.NewJavaScriptPlugin},
	{"typescript", typescript.NewTypeScriptPlugin},
	{"go", golang.NewGoPlugin},
	{"terraform", terraform.NewTerraformPlugin},
	{"yaml", yaml.NewYamlPlugin},
	{"protobuf", protobuf.NewProtobufPlugin},
}

// RegisterLanguagePlugins initializes and populates a language registry
func RegisterLanguagePlugins(logger *slog.Logger) (ParserRegistry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	registry := NewRegistry(logger)

	for _, entry := range pluginFactories {
		pluginLogger := logger.With("plugin", entry.name)
		plugin := entry.factory(pluginLogger)

		if err := registry.RegisterParser(plugin); err != nil {
			return registry, fmt.Errorf("failed to register plugin %s: %w", entry.name, err)
		}
	}

	logger.Info("Language plugins registered", "count", len(registry.GetAllParsers()))
	return registry, nil
}

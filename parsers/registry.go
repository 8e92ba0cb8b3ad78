package parsers

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/sevigo/codesplit/schema"
	"github.com/sevigo/codesplit/treesitter"
)

// ErrPluginNotFound is returned when no grammar is registered for a language.
// It matches treesitter.ErrUnsupportedLanguage under errors.Is.
var ErrPluginNotFound = fmt.Errorf("language plugin not found: %w", treesitter.ErrUnsupportedLanguage)

// registry implements the ParserRegistry interface
type registry struct {
	plugins    map[string]schema.LanguagePlugin // Map of language name to plugin
	extensions map[string]schema.LanguagePlugin // Map of file extension to plugin
	logger     *slog.Logger
	mu         sync.RWMutex
}

// NewRegistry creates a new language plugin registry
func NewRegistry(logger *slog.Logger) ParserRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &registry{
		plugins:    make(map[string]schema.LanguagePlugin),
		extensions: make(map[string]schema.LanguagePlugin),
		logger:     logger,
	}
}

// RegisterParser adds a language plugin to the registry
func (r *registry) RegisterParser(plugin schema.LanguagePlugin) error {
	if plugin == nil {
		return errors.New("cannot register nil plugin")
	}

	name := plugin.Name()
	if name == "" {
		return errors.New("plugin must have a non-empty name")
	}
	if plugin.Grammar() == nil {
		return fmt.Errorf("plugin %q has no grammar", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[name]; exists {
		return fmt.Errorf("plugin with name %q already registered", name)
	}

	// Register by name
	r.plugins[name] = plugin

	// Register by extensions
	for _, ext := range plugin.Extensions() {
		if ext == "" {
			continue
		}
		r.extensions[normalizeExt(ext)] = plugin
	}

	r.logger.Info("Registered language plugin", "language", name, "extensions", plugin.Extensions())
	return nil
}

// GetParser retrieves a plugin by language name
func (r *registry) GetParser(language string) (schema.LanguagePlugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugin, ok := r.plugins[language]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPluginNotFound, language)
	}
	return plugin, nil
}

// GetParserForFile returns the appropriate plugin for a file
func (r *registry) GetParserForFile(path string, info fs.FileInfo) (schema.LanguagePlugin, error) {
	// First try to get plugin by extension. The plugin still gets the final
	// say, so it can refuse files such as generated or test sources.
	ext := filepath.Ext(path)
	if ext != "" {
		plugin, err := r.GetParserForExtension(ext)
		if err == nil && plugin.CanHandle(path, info) {
			return plugin, nil
		}
	}

	// If no plugin found by extension, check each plugin's CanHandle method
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.sortedNames() {
		if plugin := r.plugins[name]; plugin.CanHandle(path, info) {
			return plugin, nil
		}
	}

	return nil, fmt.Errorf("%w for file %s", ErrPluginNotFound, path)
}

// GetParserForExtension returns a plugin for a file extension
func (r *registry) GetParserForExtension(ext string) (schema.LanguagePlugin, error) {
	if ext == "" {
		return nil, fmt.Errorf("%w: empty extension", ErrPluginNotFound)
	}
	ext = normalizeExt(ext)

	r.mu.RLock()
	defer r.mu.RUnlock()

	plugin, ok := r.extensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w for extension %s", ErrPluginNotFound, ext)
	}

	return plugin, nil
}

// GetAllParsers returns all registered plugins sorted by name
func (r *registry) GetAllParsers() []schema.LanguagePlugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugins := make([]schema.LanguagePlugin, 0, len(r.plugins))
	for _, name := range r.sortedNames() {
		plugins = append(plugins, r.plugins[name])
	}

	return plugins
}

// sortedNames must be called with r.mu held.
func (r *registry) sortedNames() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// normalizeExt lower-cases an extension and ensures a leading dot.
func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

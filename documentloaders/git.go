// Package documentloaders turns source trees into documents ready to be
// split. Every loaded document is one whole file, tagged with the language
// the parser registry resolved for it.
package documentloaders

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/sevigo/codesplit/parsers"
	"github.com/sevigo/codesplit/schema"
)

// Metadata keys set on loaded documents.
const (
	MetadataSource   = "source"
	MetadataLanguage = "language"
	MetadataFileSize = "file_size"
	MetadataModTime  = "mod_time"
	MetadataRepoURL  = "repo_url"
)

const defaultMaxFileSize = 10 * 1024 * 1024

// Loader loads documents from a source.
type Loader interface {
	Load(ctx context.Context) ([]schema.Document, error)
}

// GitLoader loads the source files of a checked out repository, or any other
// directory, from the local file system. Only files with a registered
// grammar are loaded.
type GitLoader struct {
	path           string
	parserRegistry parsers.ParserRegistry
	logger         *slog.Logger

	languages   []string
	maxFileSize int64
}

// GitLoaderOption configures a GitLoader.
type GitLoaderOption func(*GitLoader)

// WithLogger sets a custom logger. slog.Default() is used otherwise.
func WithLogger(logger *slog.Logger) GitLoaderOption {
	return func(g *GitLoader) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithLanguages restricts loading to files resolved to one of the given
// language identifiers.
func WithLanguages(languages ...string) GitLoaderOption {
	return func(g *GitLoader) {
		g.languages = append(g.languages, languages...)
	}
}

// WithMaxFileSize skips files larger than size bytes.
func WithMaxFileSize(size int64) GitLoaderOption {
	return func(g *GitLoader) {
		if size > 0 {
			g.maxFileSize = size
		}
	}
}

// NewGit creates a loader rooted at path.
func NewGit(path string, registry parsers.ParserRegistry, opts ...GitLoaderOption) (*GitLoader, error) {
	if path == "" {
		return nil, errors.New("loader path cannot be empty")
	}
	if registry == nil {
		return nil, errors.New("parser registry cannot be nil")
	}

	loader := &GitLoader{
		path:           path,
		parserRegistry: registry,
		logger:         slog.Default(),
		maxFileSize:    defaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(loader)
	}
	loader.logger = loader.logger.With("component", "git_loader")

	return loader, nil
}

// Load walks the tree in lexical order and returns one document per source
// file. Unreadable entries are skipped with a warning.
func (g *GitLoader) Load(ctx context.Context) ([]schema.Document, error) {
	g.logger.InfoContext(ctx, "Starting repository load", "path", g.path)

	var documents []schema.Document
	err := filepath.WalkDir(g.path, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == g.path {
				return err
			}
			g.logger.Warn("Skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if d.IsDir() {
			if path != g.path && shouldSkipDir(d.Name()) {
				g.logger.Debug("Skipping excluded directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			g.logger.Warn("Could not get file info, skipping", "path", path, "error", err)
			return nil
		}
		if !info.Mode().IsRegular() || info.Size() > g.maxFileSize {
			g.logger.Debug("Skipping excluded file", "path", path, "size", info.Size())
			return nil
		}

		if doc, ok := g.loadFile(path, info); ok {
			documents = append(documents, doc)
		}
		return nil
	})
	if err != nil {
		g.logger.Error("Repository walk failed", "error", err)
		return nil, err
	}

	g.logger.InfoContext(ctx, "Repository load completed", "path", g.path, "documents", len(documents))
	return documents, nil
}

func (g *GitLoader) loadFile(path string, info fs.FileInfo) (schema.Document, bool) {
	plugin, err := g.parserRegistry.GetParserForFile(path, info)
	if err != nil {
		return schema.Document{}, false
	}
	language := plugin.Name()
	if len(g.languages) > 0 && !slices.Contains(g.languages, language) {
		return schema.Document{}, false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		g.logger.Warn("Cannot read file, skipping", "path", path, "error", err)
		return schema.Document{}, false
	}
	if !utf8.Valid(content) {
		g.logger.Warn("File is not valid UTF-8, skipping", "path", path)
		return schema.Document{}, false
	}

	relPath, err := filepath.Rel(g.path, path)
	if err != nil {
		relPath = path
	}

	g.logger.Debug("Loaded file", "path", relPath, "language", language)
	return schema.NewDocument(string(content), map[string]any{
		MetadataSource:   filepath.ToSlash(relPath),
		MetadataLanguage: language,
		MetadataFileSize: info.Size(),
		MetadataModTime:  info.ModTime(),
	}), true
}

// GroupByLanguage buckets documents by their language metadata, keeping the
// input order inside each bucket. It also returns the languages in order
// of first appearance.
func GroupByLanguage(docs []schema.Document) (map[string][]schema.Document, []string) {
	groups := make(map[string][]schema.Document)
	var order []string
	for _, doc := range docs {
		language, _ := doc.Metadata[MetadataLanguage].(string)
		if _, seen := groups[language]; !seen {
			order = append(order, language)
		}
		groups[language] = append(groups[language], doc)
	}
	return groups, order
}

func shouldSkipDir(name string) bool {
	skipDirs := []string{
		".git", ".svn", ".hg",
		"vendor", "node_modules", "__pycache__", ".venv",
		"build", "dist", "target", "out", "bin",
		".vscode", ".idea", ".vs",
	}
	return slices.Contains(skipDirs, name) || strings.HasPrefix(name, ".cache")
}

package documentloaders

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/sevigo/codesplit/schema"
)

// ReaderLoader reads a single document from an io.Reader, such as standard
// input.
type ReaderLoader struct {
	Reader   io.Reader
	Source   string
	Language string
}

func NewReaderLoader(r io.Reader, source, language string) *ReaderLoader {
	return &ReaderLoader{Reader: r, Source: source, Language: language}
}

func (l *ReaderLoader) Load(ctx context.Context) ([]schema.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := io.ReadAll(l.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", l.Source, err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s is not valid UTF-8", l.Source)
	}
	doc := schema.NewDocument(string(content), map[string]any{
		MetadataSource:   l.Source,
		MetadataLanguage: l.Language,
	})
	return []schema.Document{doc}, nil
}

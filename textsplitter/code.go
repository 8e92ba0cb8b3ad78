package textsplitter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sevigo/codesplit/parsers"
	"github.com/sevigo/codesplit/parsers/structure"
	"github.com/sevigo/codesplit/schema"
	"github.com/sevigo/codesplit/treesitter"
)

// CodeSplitter splits source documents of one language into chunks. Each
// document is parsed, then cut by the language's structural extractor or,
// when the language has none, by the generic size-bounded packer.
type CodeSplitter struct {
	parserRegistry parsers.ParserRegistry
	logger         *slog.Logger

	language     string
	maxChunkSize int
	concurrency  int
}

var _ TextSplitter = (*CodeSplitter)(nil)

func NewCode(
	registry parsers.ParserRegistry,
	logger *slog.Logger,
	opts ...Option,
) (*CodeSplitter, error) {
	if registry == nil {
		return nil, errors.New("parser registry cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	splitterOpts := options{
		language:     defaultLanguage,
		maxChunkSize: defaultMaxChunkSize,
		concurrency:  1,
	}
	for _, opt := range opts {
		opt(&splitterOpts)
	}
	if err := splitterOpts.validate(); err != nil {
		return nil, err
	}

	return &CodeSplitter{
		parserRegistry: registry,
		logger:         logger.With("component", "code_splitter", "language", splitterOpts.language),
		language:       splitterOpts.language,
		maxChunkSize:   splitterOpts.maxChunkSize,
		concurrency:    splitterOpts.concurrency,
	}, nil
}

func (c *CodeSplitter) Language() string {
	return c.language
}

func (c *CodeSplitter) MaxChunkSize() int {
	return c.maxChunkSize
}

// SplitDocuments splits every document and returns the chunks in input
// order. Chunk documents carry no metadata. Any failure aborts the batch.
func (c *CodeSplitter) SplitDocuments(ctx context.Context, docs []schema.Document) ([]schema.Document, error) {
	plugin, err := c.parserRegistry.GetParser(c.language)
	if err != nil {
		return nil, err
	}

	perDoc := make([][]string, len(docs))
	if c.concurrency > 1 && len(docs) > 1 {
		err = c.splitConcurrently(ctx, plugin, docs, perDoc)
	} else {
		err = c.splitSequentially(ctx, plugin, docs, perDoc)
	}
	if err != nil {
		return nil, err
	}

	finalDocs := make([]schema.Document, 0, len(docs))
	for _, chunks := range perDoc {
		for _, chunk := range chunks {
			finalDocs = append(finalDocs, schema.NewDocument(chunk, nil))
		}
	}

	c.logger.InfoContext(ctx, "Split documents", "documents", len(docs), "chunks", len(finalDocs))
	return finalDocs, nil
}

// SplitText splits a single piece of source text.
func (c *CodeSplitter) SplitText(ctx context.Context, text string) ([]string, error) {
	plugin, err := c.parserRegistry.GetParser(c.language)
	if err != nil {
		return nil, err
	}
	return c.splitContent(ctx, plugin, text)
}

func (c *CodeSplitter) splitSequentially(ctx context.Context, plugin schema.LanguagePlugin, docs []schema.Document, out [][]string) error {
	for i, doc := range docs {
		// Cancellation is only honoured between documents.
		if err := ctx.Err(); err != nil {
			return err
		}
		chunks, err := c.splitContent(ctx, plugin, doc.PageContent)
		if err != nil {
			return fmt.Errorf("failed to split document %d (source %v): %w", i, doc.Metadata["source"], err)
		}
		out[i] = chunks
	}
	return nil
}

func (c *CodeSplitter) splitConcurrently(ctx context.Context, plugin schema.LanguagePlugin, docs []schema.Document, out [][]string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			chunks, err := c.splitContent(gctx, plugin, doc.PageContent)
			if err != nil {
				return fmt.Errorf("failed to split document %d (source %v): %w", i, doc.Metadata["source"], err)
			}
			out[i] = chunks
			return nil
		})
	}
	return g.Wait()
}

// splitContent parses one document and extracts its chunks. The tree lives
// only for the duration of this call.
func (c *CodeSplitter) splitContent(ctx context.Context, plugin schema.LanguagePlugin, content string) ([]string, error) {
	tree, err := treesitter.Parse(ctx, []byte(content), plugin.Grammar())
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var (
		chunks   []string
		strategy string
	)
	if extractor, ok := plugin.(schema.StructuralExtractor); ok {
		strategy = "structural"
		chunks, err = extractor.Extract(tree.Root(), c.maxChunkSize)
	} else {
		strategy = "fallback"
		chunks, err = structure.Fallback(tree.Root(), c.maxChunkSize)
	}
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "Split document", "strategy", strategy, "bytes", len(content), "chunks", len(chunks))
	return chunks, nil
}

package textsplitter_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/codesplit/parsers"
	logger "github.com/sevigo/codesplit/parsers/testing"
	"github.com/sevigo/codesplit/schema"
	"github.com/sevigo/codesplit/textsplitter"
	"github.com/sevigo/codesplit/treesitter"
)

const rustPerson = `/// A person with a name and age
#[derive(Debug, Clone)]
pub(crate) struct Person {
    pub name: String,
    age: u32,
}

impl Person {
    /// Creates a new Person
    pub fn new(name: String, age: u32) -> Self {
        Self { name, age }
    }

    /// Greets the person
    fn greet(&self) {
        println!("Hello, my name is {} and I'm {} years old.", self.name, self.age);
    }
}`

const goSource = `package main

import "fmt"

func hello() {
	fmt.Println("hello")
}

func world() {
	fmt.Println("world")
}`

func newSplitter(t *testing.T, opts ...textsplitter.Option) *textsplitter.CodeSplitter {
	t.Helper()
	log, _ := logger.NewTestLogger(t)
	registry, err := parsers.RegisterLanguagePlugins(log)
	require.NoError(t, err)

	splitter, err := textsplitter.NewCode(registry, log, opts...)
	require.NoError(t, err)
	return splitter
}

func contents(docs []schema.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.PageContent
	}
	return out
}

func firstLine(s string) string {
	return strings.SplitN(s, "\n", 2)[0]
}

func TestNewCode(t *testing.T) {
	log, _ := logger.NewTestLogger(t)
	registry, err := parsers.RegisterLanguagePlugins(log)
	require.NoError(t, err)

	t.Run("defaults", func(t *testing.T) {
		splitter, err := textsplitter.NewCode(registry, nil)
		require.NoError(t, err)
		assert.Equal(t, "rust", splitter.Language())
		assert.Equal(t, 500, splitter.MaxChunkSize())
	})

	t.Run("nil registry", func(t *testing.T) {
		_, err := textsplitter.NewCode(nil, log)
		require.Error(t, err)
	})

	t.Run("non-positive chunk size", func(t *testing.T) {
		_, err := textsplitter.NewCode(registry, log, textsplitter.WithMaxChunkSize(0))
		require.ErrorIs(t, err, textsplitter.ErrInvalidChunkSize)
	})

	t.Run("empty language", func(t *testing.T) {
		_, err := textsplitter.NewCode(registry, log, textsplitter.WithLanguage(""))
		require.ErrorIs(t, err, textsplitter.ErrInvalidLanguage)
	})
}

func TestCodeSplitter_Rust(t *testing.T) {
	splitter := newSplitter(t, textsplitter.WithLanguage("rust"))

	input := schema.NewDocument(rustPerson, map[string]any{"source": "person.rs", "owner": "team"})
	docs, err := splitter.SplitDocuments(context.Background(), []schema.Document{input})
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, "/// A person with a name and age", firstLine(docs[0].PageContent))
	assert.Equal(t, "impl Person {", firstLine(docs[1].PageContent))
	assert.Equal(t, "impl Person {", firstLine(docs[2].PageContent))

	for _, doc := range docs {
		assert.NotNil(t, doc.Metadata)
		assert.Empty(t, doc.Metadata, "chunks must not inherit source metadata")
	}
}

func TestCodeSplitter_JavaScript(t *testing.T) {
	splitter := newSplitter(t, textsplitter.WithLanguage("javascript"))

	src := "import { log } from './log.js';\n\nclass Greeter {\n  hello() { log('hello'); }\n  bye() { log('bye'); }\n}\n\nfunction main() {\n  new Greeter().hello();\n}\n"
	chunks, err := splitter.SplitText(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	assert.Equal(t, "class Greeter {", firstLine(chunks[0]))
	assert.Equal(t, "class Greeter {", firstLine(chunks[1]))
	assert.Equal(t, "import { log } from './log.js';", firstLine(chunks[2]))
	assert.Contains(t, chunks[2], "function main() {")
}

func TestCodeSplitter_FallbackForGrammarOnlyLanguages(t *testing.T) {
	t.Run("document within budget is a single verbatim chunk", func(t *testing.T) {
		splitter := newSplitter(t, textsplitter.WithLanguage("go"), textsplitter.WithMaxChunkSize(len(goSource)))
		chunks, err := splitter.SplitText(context.Background(), goSource)
		require.NoError(t, err)
		require.Equal(t, []string{goSource}, chunks)
	})

	t.Run("large documents are packed by top-level declarations", func(t *testing.T) {
		splitter := newSplitter(t, textsplitter.WithLanguage("go"), textsplitter.WithMaxChunkSize(60))
		chunks, err := splitter.SplitText(context.Background(), goSource)
		require.NoError(t, err)
		require.Greater(t, len(chunks), 1)

		joined := strings.Join(chunks, "\n")
		for _, decl := range []string{"func hello() {\n\tfmt.Println(\"hello\")\n}", "func world() {\n\tfmt.Println(\"world\")\n}"} {
			assert.Equal(t, 1, strings.Count(joined, decl), decl)
		}
	})
}

func TestCodeSplitter_Batch(t *testing.T) {
	docs := []schema.Document{
		schema.NewDocument("fn first() {}\n", map[string]any{"source": "a.rs"}),
		schema.NewDocument("fn second() {}\n\nfn third() {}\n", map[string]any{"source": "b.rs"}),
		schema.NewDocument("use std::fmt;\n", map[string]any{"source": "c.rs"}),
		schema.NewDocument("const FOURTH: u8 = 4;\n", nil),
	}
	want := []string{"fn first() {}", "fn second() {}", "fn third() {}", "const FOURTH: u8 = 4;"}

	t.Run("sequential", func(t *testing.T) {
		out, err := newSplitter(t).SplitDocuments(context.Background(), docs)
		require.NoError(t, err)
		assert.Equal(t, want, contents(out))
	})

	t.Run("concurrent keeps input order", func(t *testing.T) {
		out, err := newSplitter(t, textsplitter.WithConcurrency(3)).SplitDocuments(context.Background(), docs)
		require.NoError(t, err)
		assert.Equal(t, want, contents(out))
	})

	t.Run("empty batch", func(t *testing.T) {
		out, err := newSplitter(t).SplitDocuments(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestCodeSplitter_Errors(t *testing.T) {
	t.Run("unsupported language", func(t *testing.T) {
		splitter := newSplitter(t, textsplitter.WithLanguage("cobol"))
		_, err := splitter.SplitDocuments(context.Background(), []schema.Document{schema.NewDocument("x", nil)})
		require.ErrorIs(t, err, treesitter.ErrUnsupportedLanguage)
		require.ErrorIs(t, err, parsers.ErrPluginNotFound)
	})

	t.Run("cancelled context aborts the batch", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		out, err := newSplitter(t).SplitDocuments(ctx, []schema.Document{schema.NewDocument("fn a() {}", nil)})
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, out)
	})

	t.Run("text extraction failure is fatal for the batch", func(t *testing.T) {
		docs := []schema.Document{
			schema.NewDocument("fn fine() {}\n", nil),
			schema.NewDocument("// \xff\nfn bad() {}\n", map[string]any{"source": "bad.rs"}),
		}
		for _, concurrency := range []int{1, 2} {
			out, err := newSplitter(t, textsplitter.WithConcurrency(concurrency)).SplitDocuments(context.Background(), docs)
			require.ErrorIs(t, err, treesitter.ErrTextExtraction)
			assert.Contains(t, err.Error(), "bad.rs")
			assert.Nil(t, out)
		}
	})
}

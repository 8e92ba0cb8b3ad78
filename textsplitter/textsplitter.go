// Package textsplitter turns source documents into structurally coherent
// chunks ready for indexing.
package textsplitter

import (
	"context"

	"github.com/sevigo/codesplit/schema"
)

type TextSplitter interface {
	SplitDocuments(ctx context.Context, docs []schema.Document) ([]schema.Document, error)
}

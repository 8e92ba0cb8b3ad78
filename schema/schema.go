package schema

import "maps"

// Document is a piece of text with arbitrary pass-through metadata.
type Document struct {
	PageContent string
	Metadata    map[string]any
}

func (d Document) String() string {
	return d.PageContent
}

// NewDocument builds a Document, always allocating a metadata map so callers
// may write to it.
func NewDocument(content string, metadata map[string]any) Document {
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return Document{
		PageContent: content,
		Metadata:    metadata,
	}
}

// WithMetadata returns a copy of d whose metadata also holds the given pairs.
func (d Document) WithMetadata(extra map[string]any) Document {
	merged := make(map[string]any, len(d.Metadata)+len(extra))
	maps.Copy(merged, d.Metadata)
	maps.Copy(merged, extra)
	return Document{PageContent: d.PageContent, Metadata: merged}
}

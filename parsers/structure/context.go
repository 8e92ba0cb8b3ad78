// Package structure holds the machinery shared by the per-language
// extractors: leading-context accumulation, chunk composition, member
// wrapping for containers and the generic size-bounded packer.
package structure

import "strings"

// Accumulator collects leading context while walking sibling nodes. Doc
// comments and other context (imports, attributes, module declarations) are
// kept in separate buffers and flushed in that order.
type Accumulator struct {
	docs    []string
	context []string
}

// AddDoc appends a documentation fragment.
func (a *Accumulator) AddDoc(text string) {
	a.docs = append(a.docs, line(text))
}

// AddContext appends a non-documentation context fragment.
func (a *Accumulator) AddContext(text string) {
	a.context = append(a.context, line(text))
}

// Empty reports whether nothing has been accumulated since the last Reset.
func (a *Accumulator) Empty() bool {
	return len(a.docs) == 0 && len(a.context) == 0
}

// Lines returns docs followed by context, in insertion order.
func (a *Accumulator) Lines() []string {
	out := make([]string, 0, len(a.docs)+len(a.context))
	out = append(out, a.docs...)
	return append(out, a.context...)
}

// Reset drops everything accumulated so far.
func (a *Accumulator) Reset() {
	a.docs = a.docs[:0]
	a.context = a.context[:0]
}

// DropDocs discards accumulated documentation but keeps other context.
func (a *Accumulator) DropDocs() {
	a.docs = a.docs[:0]
}

// line normalises a fragment to end in exactly one newline. Grammars differ
// on whether a line comment token includes its terminating newline.
func line(text string) string {
	return strings.TrimRight(text, "\r\n") + "\n"
}

package textsplitter

import "fmt"

// options holds configuration settings for the code splitter.
type options struct {
	language     string
	maxChunkSize int
	concurrency  int
}

// Option is a function type for configuring the splitter.
type Option func(*options)

// WithLanguage sets the language identifier used to pick the grammar and
// the structural extractor.
func WithLanguage(language string) Option {
	return func(o *options) {
		o.language = language
	}
}

// WithMaxChunkSize sets the soft maximum chunk length in bytes. Structural
// extractors may exceed it for a single indivisible declaration.
func WithMaxChunkSize(size int) Option {
	return func(o *options) {
		o.maxChunkSize = size
	}
}

func (o options) validate() error {
	if o.language == "" {
		return ErrInvalidLanguage
	}
	if o.maxChunkSize <= 0 {
		return fmt.Errorf("%w: max chunk size must be positive: %d", ErrInvalidChunkSize, o.maxChunkSize)
	}
	return nil
}

// WithConcurrency splits up to n documents of a batch in parallel. Output
// order is unaffected. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

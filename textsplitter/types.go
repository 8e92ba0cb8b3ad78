package textsplitter

import "errors"

const (
	defaultLanguage     = "rust"
	defaultMaxChunkSize = 500
)

var (
	ErrInvalidChunkSize = errors.New("invalid chunk size")
	ErrInvalidLanguage  = errors.New("language must not be empty")
)

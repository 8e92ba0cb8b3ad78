package python

import (
	"github.com/sevigo/codesplit/parsers/structure"
	"github.com/sevigo/codesplit/treesitter"
)

// Extract emits top-level function and class definitions. A definition that
// exceeds maxSize is packed by its children instead of kept whole.
func (p *PythonPlugin) Extract(root treesitter.Node, maxSize int) ([]string, error) {
	var chunks []string

	for _, child := range root.NamedChildren() {
		switch child.Kind() {
		case "function_definition", "class_definition", "decorated_definition":
			parts, err := structure.Fallback(child, maxSize)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, parts...)
		default:
		}
	}

	p.logger.Debug("Extracted python chunks", "count", len(chunks))
	return chunks, nil
}

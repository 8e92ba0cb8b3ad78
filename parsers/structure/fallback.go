package structure

import (
	"strings"

	"github.com/sevigo/codesplit/treesitter"
)

// Fallback splits node into chunks of at most maxSize bytes by greedily
// packing its direct children in source order. A node that already fits is
// returned whole; a single child larger than maxSize is emitted whole rather
// than split further. Children packed into the same chunk are joined with the
// source text that separated them, and that gap counts toward maxSize, so a
// chunk is at most maxSize bytes of contiguous source unless a single child
// is larger.
func Fallback(node treesitter.Node, maxSize int) ([]string, error) {
	text, err := node.Text()
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	if len(text) <= maxSize {
		return []string{text}, nil
	}

	children := node.Children()
	if len(children) == 0 {
		return []string{text}, nil
	}

	var (
		chunks  []string
		current strings.Builder
		prev    treesitter.Node
	)
	for _, child := range children {
		childText, err := child.Text()
		if err != nil {
			return nil, err
		}
		if childText == "" {
			continue
		}

		var gap string
		if current.Len() > 0 {
			if gap, err = prev.Gap(child); err != nil {
				return nil, err
			}
		}

		if current.Len() > 0 && current.Len()+len(gap)+len(childText) > maxSize {
			chunks = append(chunks, current.String())
			current.Reset()
			gap = ""
		}
		current.WriteString(gap)
		current.WriteString(childText)
		prev = child
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks, nil
}

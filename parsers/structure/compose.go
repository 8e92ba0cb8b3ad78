package structure

import (
	"strings"

	"github.com/sevigo/codesplit/treesitter"
)

// indentUnit is the indentation applied to members inside a synthesized wrapper.
const indentUnit = "    "

// Compose builds a standalone chunk: accumulated docs, accumulated context
// and finally the node text. Visibility qualifiers and attributes nested in
// the node are already part of its span.
func Compose(acc *Accumulator, body string) string {
	var sb strings.Builder
	if acc != nil {
		for _, l := range acc.Lines() {
			sb.WriteString(l)
		}
	}
	sb.WriteString(body)
	return sb.String()
}

// MemberText returns the node text preceded by the indentation it had in the
// source. Nodes that share their line with other code, or sit at column zero,
// are indented one level.
func MemberText(n treesitter.Node) (string, error) {
	text, err := n.Text()
	if err != nil {
		return "", err
	}
	indent, ok := n.LineIndent()
	if !ok || indent == "" {
		indent = indentUnit
	}
	return indent + text, nil
}

// WrapMember builds a chunk for a member extracted from a container so it
// still reads as a declaration on its own. leading and member are expected
// to carry their indentation already (see MemberText).
//
//	<header> {
//	    <leading lines>
//	    <member>
//	}
func WrapMember(header string, leading []string, member string) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString(" {\n")
	for _, fragment := range leading {
		sb.WriteString(line(fragment))
	}
	sb.WriteString(strings.TrimRight(member, "\r\n"))
	sb.WriteString("\n}")
	return sb.String()
}

package rust

import (
	"strings"

	"github.com/sevigo/codesplit/parsers/structure"
	"github.com/sevigo/codesplit/treesitter"
)

// Extract cuts a Rust source file into one chunk per top-level item. Doc
// comments, attributes and use/mod declarations are carried into the next
// item; each method of an impl block becomes its own chunk wrapped in the
// block's header.
func (p *RustPlugin) Extract(root treesitter.Node, _ int) ([]string, error) {
	var (
		chunks []string
		acc    structure.Accumulator
	)

	for _, child := range root.NamedChildren() {
		switch child.Kind() {
		case "struct_item", "enum_item", "union_item", "trait_item",
			"function_item", "const_item", "static_item", "type_item", "macro_definition":
			text, err := child.Text()
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, structure.Compose(&acc, text))
			acc.Reset()

		case "mod_item":
			text, err := child.Text()
			if err != nil {
				return nil, err
			}
			// `mod name;` is context, an inline module is an item of its own.
			if _, hasBody := child.ChildByField("body"); hasBody {
				chunks = append(chunks, structure.Compose(&acc, text))
				acc.Reset()
			} else {
				acc.AddContext(text)
			}

		case "impl_item":
			members, err := p.extractImpl(child)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, members...)
			acc.Reset()

		case "attribute_item", "inner_attribute_item", "use_declaration", "extern_crate_declaration":
			text, err := child.Text()
			if err != nil {
				return nil, err
			}
			acc.AddContext(text)

		case "line_comment", "block_comment":
			text, err := child.Text()
			if err != nil {
				return nil, err
			}
			if isDocComment(text) {
				acc.AddDoc(text)
			}

		default:
		}
	}

	p.logger.Debug("Extracted rust chunks", "count", len(chunks))
	return chunks, nil
}

// extractImpl wraps every function of an impl block in the block's header.
func (p *RustPlugin) extractImpl(node treesitter.Node) ([]string, error) {
	header, err := implHeader(node)
	if err != nil {
		return nil, err
	}

	body, ok := node.ChildByField("body")
	if !ok {
		return nil, nil
	}

	container := structure.NewContainer(header)
	for _, member := range body.NamedChildren() {
		switch member.Kind() {
		case "function_item":
			text, err := structure.MemberText(member)
			if err != nil {
				return nil, err
			}
			container.AddMember(text)

		case "line_comment", "block_comment", "attribute_item":
			text, err := structure.MemberText(member)
			if err != nil {
				return nil, err
			}
			container.AddLeading(text)

		default:
			// associated consts and types are not extracted
		}
	}

	chunks := container.Chunks()
	p.logger.Debug("Extracted impl members", "header", header, "count", len(chunks))
	return chunks, nil
}

// implHeader rebuilds the declaration line of an impl block:
// `impl<T> Trait for Type` or `impl Type`. `unsafe` and the `!` of a
// negative impl are kept.
func implHeader(node treesitter.Node) (string, error) {
	trait, hasTrait := node.ChildByField("trait")
	var unsafe, negative bool
	for _, child := range node.Children() {
		switch child.Kind() {
		case "unsafe":
			unsafe = true
		case "!":
			negative = hasTrait && child.StartByte() < trait.StartByte()
		}
	}

	var sb strings.Builder
	if unsafe {
		sb.WriteString("unsafe ")
	}
	sb.WriteString("impl")

	if params, ok := node.ChildByField("type_parameters"); ok {
		text, err := params.Text()
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	sb.WriteByte(' ')

	if hasTrait {
		if negative {
			sb.WriteByte('!')
		}
		text, err := trait.Text()
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
		sb.WriteString(" for ")
	}

	if typ, ok := node.ChildByField("type"); ok {
		text, err := typ.Text()
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}

	return strings.TrimRight(sb.String(), " "), nil
}

// isDocComment reports whether a comment is an outer doc comment (`///` or
// `/** */`). Four or more slashes is an ordinary comment.
func isDocComment(text string) bool {
	switch {
	case strings.HasPrefix(text, "////"):
		return false
	case strings.HasPrefix(text, "///"):
		return true
	case strings.HasPrefix(text, "/**") && !strings.HasPrefix(text, "/***") && text != "/**/":
		return true
	default:
		return false
	}
}

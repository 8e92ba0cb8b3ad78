package javascript

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/sevigo/codesplit/parsers/structure"
	"github.com/sevigo/codesplit/treesitter"
)

// Extract emits top-level functions and classes. Imports, exports and
// top-level variables are carried into the next function or class; classes
// with methods are split into one `class Name { method }` chunk per method.
func (p *JavaScriptPlugin) Extract(root treesitter.Node, _ int) ([]string, error) {
	return ExtractDeclarations(root, p.logger, Dialect{})
}

// Dialect extends the JavaScript rules for a related grammar.
type Dialect struct {
	// Standalone lists extra node kinds emitted like function declarations.
	Standalone []string
	// ExportedDeclarations dispatches `export <declaration>` on its inner
	// declaration, keeping the export keyword in the chunk. Bare re-exports
	// such as `export { a }` stay context.
	ExportedDeclarations bool
}

// ExtractDeclarations runs the JavaScript extraction over any grammar of the
// JavaScript family.
func ExtractDeclarations(root treesitter.Node, logger *slog.Logger, dialect Dialect) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var (
		chunks []string
		acc    structure.Accumulator
	)

	emit := func(node treesitter.Node) error {
		text, err := node.Text()
		if err != nil {
			return err
		}
		chunks = append(chunks, structure.Compose(&acc, text))
		acc.Reset()
		return nil
	}

	for _, child := range root.NamedChildren() {
		// decl picks the rule, child is what gets emitted.
		decl := child
		if dialect.ExportedDeclarations && child.Kind() == "export_statement" {
			if inner, ok := child.ChildByField("declaration"); ok {
				decl = inner
			}
		}

		kind := decl.Kind()
		if slices.Contains(dialect.Standalone, kind) {
			if err := emit(child); err != nil {
				return nil, err
			}
			continue
		}

		switch kind {
		case "function_declaration", "generator_function_declaration":
			if err := emit(child); err != nil {
				return nil, err
			}

		case "class_declaration", "abstract_class_declaration":
			methods, err := extractClass(decl, logger)
			if err != nil {
				return nil, err
			}
			if len(methods) == 0 {
				if err := emit(child); err != nil {
					return nil, err
				}
				continue
			}
			// Method chunks carry only the class wrapper. Imports stay pending
			// for the next declaration, the class's own docs do not.
			chunks = append(chunks, methods...)
			acc.DropDocs()

		case "method_definition":
			// Methods outside a class body have no header to borrow.
			if err := emit(child); err != nil {
				return nil, err
			}

		case "import_statement", "export_statement", "variable_declaration", "lexical_declaration":
			text, err := child.Text()
			if err != nil {
				return nil, err
			}
			acc.AddContext(text)

		case "comment":
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

	logger.Debug("Extracted declaration chunks", "count", len(chunks))
	return chunks, nil
}

// extractClass wraps every method found directly in the class body. Field
// definitions and comments lead the next method; those after the last
// method are dropped.
func extractClass(class treesitter.Node, logger *slog.Logger) ([]string, error) {
	body, ok := class.ChildByField("body")
	if !ok {
		return nil, nil
	}
	name, err := className(class)
	if err != nil {
		return nil, err
	}

	container := structure.NewContainer("class " + name)
	for _, member := range body.NamedChildren() {
		switch member.Kind() {
		case "method_definition":
			text, err := structure.MemberText(member)
			if err != nil {
				return nil, err
			}
			container.AddMember(text)

		case "comment":
			text, err := structure.MemberText(member)
			if err != nil {
				return nil, err
			}
			container.AddLeading(text)

		case "field_definition", "public_field_definition":
			text, err := structure.MemberText(member)
			if err != nil {
				return nil, err
			}
			// The grammar leaves the terminating semicolon outside the field.
			if !strings.HasSuffix(text, ";") {
				text += ";"
			}
			container.AddLeading(text)

		default:
		}
	}

	chunks := container.Chunks()
	logger.Debug("Extracted class methods", "class", name, "count", len(chunks))
	return chunks, nil
}

// className returns the declared class name, or an empty string for
// anonymous classes.
func className(class treesitter.Node) (string, error) {
	if name, ok := class.ChildByField("name"); ok {
		return name.Text()
	}
	for _, child := range class.NamedChildren() {
		if child.Kind() == "identifier" || child.Kind() == "type_identifier" {
			return child.Text()
		}
	}
	return "", nil
}

func isDocComment(text string) bool {
	return strings.HasPrefix(text, "/**") && text != "/**/"
}

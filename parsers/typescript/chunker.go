package typescript

import (
	"github.com/sevigo/codesplit/parsers/javascript"
	"github.com/sevigo/codesplit/treesitter"
)

// typeDeclarations are emitted as standalone chunks on top of the
// JavaScript rules.
var typeDeclarations = []string{
	"interface_declaration",
	"type_alias_declaration",
	"enum_declaration",
	"function_signature",
	"module",
	"internal_module",
	"ambient_declaration",
}

// Extract applies the JavaScript rules with the TypeScript declarations
// added. Exported declarations are chunks in their own right, since
// modules export nearly everything.
func (p *TypeScriptPlugin) Extract(root treesitter.Node, _ int) ([]string, error) {
	return javascript.ExtractDeclarations(root, p.logger, javascript.Dialect{
		Standalone:           typeDeclarations,
		ExportedDeclarations: true,
	})
}

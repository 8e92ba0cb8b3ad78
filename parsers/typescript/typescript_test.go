package typescript_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logger "github.com/sevigo/codesplit/parsers/testing"
	"github.com/sevigo/codesplit/parsers/typescript"
	"github.com/sevigo/codesplit/schema"
	"github.com/sevigo/codesplit/treesitter"
)

func extract(t *testing.T, src string) []string {
	t.Helper()
	log, _ := logger.NewTestLogger(t)
	plugin := typescript.NewTypeScriptPlugin(log)

	tree, err := treesitter.Parse(context.Background(), []byte(src), plugin.Grammar())
	require.NoError(t, err)
	defer tree.Close()

	extractor, ok := plugin.(schema.StructuralExtractor)
	require.True(t, ok)
	chunks, err := extractor.Extract(tree.Root(), 500)
	require.NoError(t, err)
	return chunks
}

func TestTypeScriptPlugin(t *testing.T) {
	log, _ := logger.NewTestLogger(t)
	plugin := typescript.NewTypeScriptPlugin(log)

	assert.Equal(t, "typescript", plugin.Name())
	assert.True(t, plugin.CanHandle("src/app.ts", nil))
	assert.False(t, plugin.CanHandle("src/app.js", nil))
	assert.NotNil(t, plugin.Grammar())
}

func TestTypeScriptExtract(t *testing.T) {
	src := `import { Logger } from './logger';

interface Shape {
  area(): number;
}

type Id = string;

class Circle {
  constructor(private r: number) {}
  area(): number { return Math.PI * this.r * this.r; }
}

function describe(s: Shape): string {
  return String(s.area());
}
`
	chunks := extract(t, src)
	require.Len(t, chunks, 5)

	assert.Equal(t, "import { Logger } from './logger';\ninterface Shape {\n  area(): number;\n}", chunks[0])
	assert.Equal(t, "type Id = string;", chunks[1])
	assert.Equal(t, "class Circle {\n  constructor(private r: number) {}\n}", chunks[2])
	assert.Equal(t, "class Circle {\n  area(): number { return Math.PI * this.r * this.r; }\n}", chunks[3])
	assert.Equal(t, "function describe(s: Shape): string {\n  return String(s.area());\n}", chunks[4])
}

func TestTypeScriptExtract_ExportedModule(t *testing.T) {
	src := `import { db } from './db';

/** A user. */
export interface User {
  id: Id;
}

export type Id = string;

export function load(id: Id): User {
  return db.get(id);
}

export class Repo {
  get(id: Id): User { return load(id); }
}

export { load as fetch };
`
	chunks := extract(t, src)
	require.Len(t, chunks, 4)

	assert.Equal(t, "/** A user. */\nimport { db } from './db';\nexport interface User {\n  id: Id;\n}", chunks[0])
	assert.Equal(t, "export type Id = string;", chunks[1])
	assert.Equal(t, "export function load(id: Id): User {\n  return db.get(id);\n}", chunks[2])
	assert.Equal(t, "class Repo {\n  get(id: Id): User { return load(id); }\n}", chunks[3])
}

func TestTypeScriptExtract_ExportedClassWithoutMethods(t *testing.T) {
	chunks := extract(t, "export class Empty {}\n")
	require.Equal(t, []string{"export class Empty {}"}, chunks)
}

package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGenerate(t *testing.T, src string) *IntermediateCode {
	t.Helper()
	root := mustTree(t, src)
	typedRoot, types, err := Analyze(root)
	require.NoError(t, err)
	code, err := Generate(typedRoot, types)
	require.NoError(t, err)
	return code
}

func TestGenerate_LeafDeclaration(t *testing.T) {
	code := mustGenerate(t, `<root><cat Name="Whiskers"/></root>`)

	require.Len(t, code.Classes, 1)
	assert.Equal(t, "Class1", code.Classes[0].Name)

	require.Len(t, code.Declarations, 1)
	d := code.Declarations[0]
	assert.Equal(t, "cat", d.InstanceName)
	assert.Equal(t, "Class1", d.ClassName)
	assert.False(t, d.IsList)
	assert.Equal(t, []InstanceAttr{{Name: "Name", Value: "Whiskers"}}, d.Attrs)
}

func TestGenerate_AttributeCollapsesIntoParent(t *testing.T) {
	code := mustGenerate(t, `<root><kitten Name="Whiskers"><parent><cat Name="The Garfield"/></parent></kitten></root>`)

	require.Len(t, code.Declarations, 2)
	cat := code.Declarations[0]
	kitten := code.Declarations[1]

	assert.Equal(t, "cat", cat.InstanceName)
	assert.Equal(t, "kitten", kitten.InstanceName)
	require.Len(t, kitten.Attrs, 2)
	assert.Equal(t, InstanceAttr{Name: "Name", Value: "Whiskers"}, kitten.Attrs[0])
	assert.Equal(t, InstanceAttr{Name: "parent", Ref: "cat", IsRef: true}, kitten.Attrs[1])
}

func TestGenerate_ListUnderRoot(t *testing.T) {
	code := mustGenerate(t, `<root><ppl><john Name="John"/></ppl></root>`)

	require.Len(t, code.Declarations, 2)
	john := code.Declarations[0]
	ppl := code.Declarations[1]

	assert.Equal(t, "john", john.InstanceName)
	assert.Equal(t, "ppl", ppl.InstanceName)
	assert.True(t, ppl.IsList)
	assert.Equal(t, []InstanceAttr{{Name: "john", Ref: "john", IsRef: true}}, ppl.Attrs)
}

func TestGenerate_DeclarationOrderIsTopological(t *testing.T) {
	code := mustGenerate(t, `<root><kitten Name="Whiskers"><parent><cat Name="The Garfield"/></parent></kitten></root>`)

	seen := map[string]bool{}
	for _, d := range code.Declarations {
		for _, a := range d.Attrs {
			if a.IsRef {
				assert.True(t, seen[a.Ref], "ref %q used before it was declared", a.Ref)
			}
		}
		seen[d.InstanceName] = true
	}
}

func TestGenerate_ResolvesForwardReferenceTagsToClassNames(t *testing.T) {
	code := mustGenerate(t, `<root><kitten Name="Whiskers"><parent><cat Name="The Garfield"/></parent></kitten></root>`)

	require.Len(t, code.Classes, 1)
	attrs := code.Classes[0].Attrs
	require.Len(t, attrs, 2)
	assert.Equal(t, "string", attrs[0].TypeTag)
	assert.Equal(t, "Class1", attrs[1].TypeTag)
}

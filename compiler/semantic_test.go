package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTree(t *testing.T, src string) *Element {
	t.Helper()
	tokens, err := Scan([]rune(src))
	require.NoError(t, err)
	xmlTokens, err := Parse(tokens)
	require.NoError(t, err)
	root, err := BuildTree(xmlTokens)
	require.NoError(t, err)
	return root
}

func TestAnalyze_SingleDeclaration(t *testing.T) {
	root := mustTree(t, `<root><cat Name="Whiskers"/></root>`)
	typedRoot, types, err := Analyze(root)
	require.NoError(t, err)

	require.Len(t, types, 1)
	assert.Equal(t, Signature{{Name: "Name", TypeTag: "string"}}, types[0])

	require.Len(t, typedRoot.Children, 1)
	cat := typedRoot.Children[0]
	assert.Equal(t, RoleDeclaration, cat.Role)
	assert.Equal(t, 0, cat.TypeIndex)
}

func TestAnalyze_SelfReferentialMerge(t *testing.T) {
	root := mustTree(t, `<root><kitten Name="Whiskers"><parent><cat Name="The Garfield"/></parent></kitten></root>`)
	typedRoot, types, err := Analyze(root)
	require.NoError(t, err)

	require.Len(t, types, 1)
	assert.Equal(t, "parent", types[0][1].Name)

	kitten := typedRoot.Children[0]
	assert.Equal(t, RoleDeclaration, kitten.Role)
	parent := kitten.Children[0]
	assert.Equal(t, RoleAttribute, parent.Role)
	assert.Equal(t, kitten.TypeIndex, parent.TypeIndex)
}

func TestAnalyze_ListUnderRoot(t *testing.T) {
	root := mustTree(t, `<root><ppl><john Name="John"/></ppl></root>`)
	typedRoot, _, err := Analyze(root)
	require.NoError(t, err)

	ppl := typedRoot.Children[0]
	assert.Equal(t, RoleVariable, ppl.Role)
	assert.True(t, ppl.IsList)
}

func TestAnalyze_DeclarationUnderDeclarationIsError(t *testing.T) {
	root := mustTree(t, `<root><a x="1"><b y="2"/></a></root>`)
	_, _, err := Analyze(root)
	require.Error(t, err)
	assert.IsType(t, &SemanticError{}, err)
}

func TestAnalyze_MixedTypeListFailsStrictPass(t *testing.T) {
	root := mustTree(t, `<root><mix><a p="1"/><b q="2"/></mix></root>`)
	_, _, err := Analyze(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple different types")
}

func TestAnalyze_TypeMergeAcrossSiblings(t *testing.T) {
	root := mustTree(t, `<root><x a="1"/><y b="2"/><z a="1" b="2"/></root>`)
	typedRoot, types, err := Analyze(root)
	require.NoError(t, err)

	require.Len(t, types, 1)
	for _, c := range typedRoot.Children {
		assert.Equal(t, 0, c.TypeIndex)
	}
}

func TestAnalyze_DuplicateNameIsError(t *testing.T) {
	root := mustTree(t, `<root><a x="1"/><a y="2"/></root>`)
	_, _, err := Analyze(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "was already found")
}

func TestAnalyze_DuplicateAttributeIsError(t *testing.T) {
	root := mustTree(t, `<root><a x="1" x="2"/></root>`)
	_, _, err := Analyze(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple declarations of one attribute")
}

func TestAnalyze_RootNameRequired(t *testing.T) {
	root := &Element{Name: "notroot"}
	_, _, err := Analyze(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must start with a root node")
}

func TestAnalyze_EmptyRoot(t *testing.T) {
	root := mustTree(t, `<root/>`)
	typedRoot, types, err := Analyze(root)
	require.NoError(t, err)
	assert.Empty(t, types)
	assert.Equal(t, RoleRoot, typedRoot.Role)
	assert.Empty(t, typedRoot.Children)
}

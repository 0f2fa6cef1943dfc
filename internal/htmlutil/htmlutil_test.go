package htmlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDocument(t *testing.T) {
	doc, err := LoadDocument(`<html><body><p id="x">hi</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "hi", doc.Find("#x").Text())
}

func TestValidateRejectsEmptyAndOversized(t *testing.T) {
	assert.Error(t, Validate(""))
	assert.Error(t, Validate(strings.Repeat("x", MaxDocumentSize+1)))
	assert.NoError(t, Validate("<p></p>"))
}

func TestParseFragmentDetachesNodes(t *testing.T) {
	nodes, err := ParseFragment(`<li>a</li><li>b</li>`)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	for _, n := range nodes {
		assert.Nil(t, n.Parent)
		assert.Nil(t, n.PrevSibling)
		assert.Nil(t, n.NextSibling)
	}
}

func TestNewElementLowercasesTagName(t *testing.T) {
	n := NewElement("DIV")
	assert.Equal(t, "div", n.Data)
	assert.Nil(t, n.Parent)
}

func TestRenderRoundTrip(t *testing.T) {
	nodes, err := ParseFragment(`<p class="a">text</p>`)
	require.NoError(t, err)
	assert.Equal(t, `<p class="a">text</p>`, Render(nodes))
}

func TestTextCollectsNestedContent(t *testing.T) {
	nodes, err := ParseFragment(`<div>a<span>b</span>c</div>`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "abc", Text(nodes[0]))
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeWhitespace("  a \n b\t c  "))
}

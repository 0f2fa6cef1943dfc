package domkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendKeepsSequenceOrder(t *testing.T) {
	d := loadSample(t)

	a := d.Create("em")
	b := d.Create("strong")
	d.SetText(Node(a), "first")
	d.SetText(Node(b), "second")

	d.Append(Sel("#sidebar"), Node(a), Node(b))

	children := d.SelectAll("#sidebar > *")
	require.Equal(t, 3, children.Length())
	assert.Equal(t, "em", children.Eq(1).Nodes[0].Data)
	assert.Equal(t, "strong", children.Eq(2).Nodes[0].Data)
}

func TestPrependKeepsSequenceOrder(t *testing.T) {
	d := loadSample(t)

	a := d.Create("em")
	b := d.Create("strong")

	d.Prepend(Sel("#sidebar"), Node(a), Node(b))

	children := d.SelectAll("#sidebar > *")
	require.Equal(t, 3, children.Length())
	assert.Equal(t, "em", children.Eq(0).Nodes[0].Data)
	assert.Equal(t, "strong", children.Eq(1).Nodes[0].Data)
	assert.Equal(t, "p", children.Eq(2).Nodes[0].Data)
}

func TestAppendMovesAttachedNode(t *testing.T) {
	d := loadSample(t)

	// The sidebar paragraph moves into the container; it is not cloned.
	d.Append(Sel("#container"), Sel("#sidebar .text"))

	assert.Equal(t, 0, d.SelectAll("#sidebar .text").Length())
	assert.Equal(t, 2, d.SelectAll("#container .text").Length())
}

func TestAppendToUnresolvedParentIsNoOp(t *testing.T) {
	d := loadSample(t)

	el := d.Create("em")
	d.Append(Sel("#missing"), Node(el))
	assert.Nil(t, el.Nodes[0].Parent)
}

func TestRemoveDetachesTargets(t *testing.T) {
	d := loadSample(t)

	d.Remove(Sel(".headline"))
	assert.Equal(t, 0, d.SelectAll(".headline").Length())
}

func TestLoadScriptAppendsToBody(t *testing.T) {
	d := loadSample(t)

	d.LoadScript("https://cdn.example.com/lib.js")
	d.LoadScript("https://cdn.example.com/lib.js")

	// No de-duplication: two calls, two elements.
	scripts := d.SelectAll("body script")
	assert.Equal(t, 2, scripts.Length())

	src, ok := scripts.First().Attr("src")
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/lib.js", src)
}

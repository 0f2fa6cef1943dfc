package domkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `
<!DOCTYPE html>
<html>
<head>
	<title>Sample Page</title>
</head>
<body>
	<div id="container">
		<h2 class="headline">First</h2>
		<h2 class="headline">Second</h2>
		<p class="text" style="color: red">Red paragraph</p>
	</div>
	<div id="sidebar">
		<p class="text">Sidebar paragraph</p>
	</div>
</body>
</html>
`

func loadSample(t *testing.T) *Doc {
	t.Helper()
	t.Setenv("DOMKIT_STORAGE_DIR", t.TempDir())
	t.Setenv("DOMKIT_LOG_LEVEL", "error")

	d, err := Load(samplePage)
	require.NoError(t, err)
	return d
}

func TestLoadRejectsEmptyInput(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestNewProducesEmptyDocument(t *testing.T) {
	d := New()
	assert.Equal(t, 1, d.Select("body").Length())
	assert.Equal(t, "", d.GetText(Sel("body")))
}

func TestInitScopesSelectorResolution(t *testing.T) {
	d := loadSample(t)

	sidebar := d.Init(Sel("#sidebar"))
	assert.Equal(t, 1, sidebar.SelectAll(".text").Length())
	assert.Equal(t, 2, d.SelectAll(".text").Length())
}

func TestInitFallsBackToDocument(t *testing.T) {
	d := loadSample(t)

	whole := d.Init(Sel("#no-such-root"))
	assert.Equal(t, 2, whole.SelectAll(".text").Length())
}

func TestInitInstancesHaveIndependentGlobals(t *testing.T) {
	d := loadSample(t)
	sub := d.Init(Sel("#sidebar"))

	d.Set("shared", 1)
	_, ok := sub.Get("shared")
	assert.False(t, ok)
}

func TestHelloWorldEndToEnd(t *testing.T) {
	d := loadSample(t)

	h1 := d.Create("h1")
	d.SetText(Node(h1), "Hello, world!")
	d.Append(Sel("#container"), Node(h1))

	assert.Equal(t, "Hello, world!", d.GetText(Sel("#container h1")))
}

func TestRenderRoundTripsDocument(t *testing.T) {
	d := loadSample(t)

	out, err := d.Render()
	require.NoError(t, err)
	assert.Contains(t, out, `<div id="container">`)
	assert.Contains(t, out, "Sidebar paragraph")
}

package domkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFireReachesBroadcastBoundListeners(t *testing.T) {
	d := loadSample(t)

	var hits int
	handler := func(Event) { hits++ }

	d.AddEvent(Sel(".headline"), "click", handler)
	d.Fire(Sel(".headline"), "click", nil)

	assert.Equal(t, 2, hits)
}

func TestFireBubblesToAncestors(t *testing.T) {
	d := loadSample(t)

	var got []string
	d.AddEvent(Sel("#container"), "click", func(ev Event) {
		got = append(got, "container")
		// Target identity is preserved during propagation.
		assert.Equal(t, "p", ev.Target.Data)
	})
	d.AddEvent(Sel("#container p"), "click", func(Event) {
		got = append(got, "p")
	})

	d.Fire(Sel("#container p"), "click", nil)
	require.Equal(t, []string{"p", "container"}, got)
}

func TestFireCarriesData(t *testing.T) {
	d := loadSample(t)

	var got interface{}
	d.AddEvent(Sel("#container"), "change", func(ev Event) { got = ev.Data })
	d.Fire(Sel("#container"), "change", 42)

	assert.Equal(t, 42, got)
}

func TestRemoveEventRequiresSameHandlerReference(t *testing.T) {
	d := loadSample(t)

	var hits int
	bound := func(Event) { hits++ }

	d.AddEvent(Sel("#container"), "click", bound)

	// A different function reference removes nothing.
	d.RemoveEvent(Sel("#container"), "click", func(Event) { hits += 100 })
	d.Fire(Sel("#container"), "click", nil)
	assert.Equal(t, 1, hits)

	// The original reference unbinds.
	d.RemoveEvent(Sel("#container"), "click", bound)
	d.Fire(Sel("#container"), "click", nil)
	assert.Equal(t, 1, hits)
}

func TestRemoveEventMatchesEventType(t *testing.T) {
	d := loadSample(t)

	var hits int
	bound := func(Event) { hits++ }

	d.AddEvent(Sel("#container"), "click", bound)
	d.RemoveEvent(Sel("#container"), "hover", bound)

	d.Fire(Sel("#container"), "click", nil)
	assert.Equal(t, 1, hits)
}

func TestInitInstancesShareListenerRegistry(t *testing.T) {
	d := loadSample(t)
	sub := d.Init(Sel("#container"))

	var hits int
	sub.AddEvent(Sel("p"), "click", func(Event) { hits++ })

	d.Fire(Sel("#container p"), "click", nil)
	assert.Equal(t, 1, hits)
}

func TestFireOnUnresolvedRefIsNoOp(t *testing.T) {
	d := loadSample(t)
	d.Fire(Sel("#missing"), "click", nil)
}

package domkit

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// Event is delivered to handlers on dispatch.
type Event struct {
	Type   string
	Target *html.Node
	Data   interface{}
}

// Handler receives dispatched events.
type Handler func(Event)

type listener struct {
	id uuid.UUID
	fn Handler
	// identity is the handler's function pointer; removal matches on
	// it, the platform listener-identity rule.
	identity uintptr
}

// registry holds listeners per node and event type. Shared across
// instances produced by Init so a sub-scoped facade sees the same
// bindings.
type registry struct {
	mu        sync.Mutex
	listeners map[*html.Node]map[string][]listener
}

func newRegistry() *registry {
	return &registry{listeners: make(map[*html.Node]map[string][]listener)}
}

func (reg *registry) add(n *html.Node, event string, fn Handler) uuid.UUID {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	byType := reg.listeners[n]
	if byType == nil {
		byType = make(map[string][]listener)
		reg.listeners[n] = byType
	}

	l := listener{
		id:       uuid.New(),
		fn:       fn,
		identity: reflect.ValueOf(fn).Pointer(),
	}
	byType[event] = append(byType[event], l)
	return l.id
}

// remove unbinds every listener on n for event whose handler identity
// matches fn. A mismatch removes nothing.
func (reg *registry) remove(n *html.Node, event string, fn Handler) int {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	byType := reg.listeners[n]
	if byType == nil {
		return 0
	}

	identity := reflect.ValueOf(fn).Pointer()
	kept := byType[event][:0]
	removed := 0
	for _, l := range byType[event] {
		if l.identity == identity {
			removed++
			continue
		}
		kept = append(kept, l)
	}

	if len(kept) == 0 {
		delete(byType, event)
		if len(byType) == 0 {
			delete(reg.listeners, n)
		}
	} else {
		byType[event] = kept
	}
	return removed
}

// handlers snapshots the listeners for n and event so dispatch runs
// outside the lock.
func (reg *registry) handlers(n *html.Node, event string) []Handler {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	ls := reg.listeners[n][event]
	if len(ls) == 0 {
		return nil
	}
	out := make([]Handler, len(ls))
	for i, l := range ls {
		out[i] = l.fn
	}
	return out
}

// AddEvent binds a handler for an event type on every resolved
// target.
func (d *Doc) AddEvent(r Ref, event string, fn Handler) {
	if fn == nil {
		return
	}
	for _, n := range d.all(r).Nodes {
		id := d.events.add(n, event, fn)
		d.log.Debug("listener bound",
			zap.String("event", event),
			zap.String("id", id.String()),
		)
	}
}

// RemoveEvent unbinds a handler from every resolved target. Removal
// takes effect only when the same function reference and the same
// event type were bound; otherwise it is a silent no-op.
func (d *Doc) RemoveEvent(r Ref, event string, fn Handler) {
	if fn == nil {
		return
	}
	for _, n := range d.all(r).Nodes {
		d.events.remove(n, event, fn)
	}
}

// Fire dispatches an event to every resolved target: listeners run in
// registration order on the target, then on each ancestor up the
// tree. Target identity is preserved during propagation.
func (d *Doc) Fire(r Ref, event string, data interface{}) {
	for _, n := range d.all(r).Nodes {
		ev := Event{Type: event, Target: n, Data: data}
		for cur := n; cur != nil; cur = cur.Parent {
			for _, fn := range d.events.handlers(cur, event) {
				fn(ev)
			}
		}
	}
}

package domkit

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

type refKind int

const (
	refEmpty refKind = iota
	refSelector
	refHandle
	refList
)

// Ref identifies the subject of an operation: a CSS selector resolved
// lazily against the instance root, an already-resolved handle, or an
// ordered list of either. The zero value resolves to nothing.
type Ref struct {
	kind     refKind
	selector string
	handle   *goquery.Selection
	list     []Ref
}

// Sel wraps a CSS selector. Resolution happens on every call against
// the live tree; the same selector can name different elements across
// calls.
func Sel(selector string) Ref {
	return Ref{kind: refSelector, selector: selector}
}

// Node wraps an already-resolved handle.
func Node(sel *goquery.Selection) Ref {
	return Ref{kind: refHandle, handle: sel}
}

// List wraps an ordered sequence of refs for broadcast operations.
func List(refs ...Ref) Ref {
	return Ref{kind: refList, list: refs}
}

// first resolves r to its first matching element. Single-subject
// operations use this; an empty selection means the subsequent
// operation is a no-op.
func (d *Doc) first(r Ref) *goquery.Selection {
	switch r.kind {
	case refSelector:
		return d.root.Find(r.selector).First()
	case refHandle:
		if r.handle == nil {
			return d.emptySelection()
		}
		return r.handle.First()
	case refList:
		for _, sub := range r.list {
			if s := d.first(sub); s.Length() > 0 {
				return s
			}
		}
	}
	return d.emptySelection()
}

// all resolves every target of r in sequence order. Broadcast
// operations use this: a selector yields all matches, a handle yields
// its own nodes, a list concatenates its members.
func (d *Doc) all(r Ref) *goquery.Selection {
	switch r.kind {
	case refSelector:
		return d.root.Find(r.selector)
	case refHandle:
		if r.handle == nil {
			return d.emptySelection()
		}
		return r.handle
	case refList:
		out := d.emptySelection()
		for _, sub := range r.list {
			out = out.AddSelection(d.all(sub))
		}
		return out
	}
	return d.emptySelection()
}

// emptySelection returns a selection with no nodes bound to the
// document.
func (d *Doc) emptySelection() *goquery.Selection {
	return d.doc.FindMatcher(nilMatcher{})
}

// wrap binds detached nodes into a selection usable with the rest of
// the facade.
func (d *Doc) wrap(nodes []*html.Node) *goquery.Selection {
	if len(nodes) == 0 {
		return d.emptySelection()
	}
	sel := goquery.NewDocumentFromNode(nodes[0]).Selection
	return sel.AddNodes(nodes[1:]...)
}

// nilMatcher matches nothing; used to build empty selections.
type nilMatcher struct{}

func (nilMatcher) Match(*html.Node) bool            { return false }
func (nilMatcher) MatchAll(*html.Node) []*html.Node { return nil }
func (nilMatcher) Filter([]*html.Node) []*html.Node { return nil }

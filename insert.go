package domkit

import "go.uber.org/zap"

// Append inserts each child at the end of the parent's child list, in
// sequence order. Child refs are resolved independently; a child that
// resolves to nothing is skipped. An already-attached child moves
// rather than clones.
func (d *Doc) Append(parent Ref, children ...Ref) {
	target := d.first(parent)
	if target.Length() == 0 {
		return
	}

	for _, child := range children {
		el := d.first(child)
		if el.Length() == 0 {
			continue
		}
		target.AppendSelection(el)
	}
}

// Prepend inserts each child at the beginning of the parent's child
// list, preserving sequence order: the first child ends up first.
func (d *Doc) Prepend(parent Ref, children ...Ref) {
	target := d.first(parent)
	if target.Length() == 0 {
		return
	}

	for i := len(children) - 1; i >= 0; i-- {
		el := d.first(children[i])
		if el.Length() == 0 {
			continue
		}
		target.PrependSelection(el)
	}
}

// Remove detaches every resolved target from the tree. Listeners
// bound to removed nodes stay registered; the nodes simply leave the
// document.
func (d *Doc) Remove(r Ref) {
	d.all(r).Remove()
}

// LoadScript creates a script element pointing at url and appends it
// to the document body. Fire-and-forget: no completion signal and no
// de-duplication, so calling twice appends twice.
func (d *Doc) LoadScript(url string) {
	script := d.Create("script")
	script.SetAttr("src", url)

	body := d.doc.Find("body").First()
	if body.Length() == 0 {
		d.log.Debug("script load skipped, document has no body", zap.String("url", url))
		return
	}
	body.AppendSelection(script)
}

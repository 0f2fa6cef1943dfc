package domkit

import "github.com/PuerkitoBio/goquery"

// HasClass reports whether the first resolved target carries the
// class.
func (d *Doc) HasClass(r Ref, name string) bool {
	return d.first(r).HasClass(name)
}

// AddClass adds every class name to every resolved target (full
// cross-product). Already-present names are left alone.
func (d *Doc) AddClass(r Ref, names ...string) {
	targets := d.all(r)
	for _, name := range names {
		targets.AddClass(name)
	}
}

// RemoveClass removes every class name from every resolved target.
// Absent names are a no-op.
func (d *Doc) RemoveClass(r Ref, names ...string) {
	targets := d.all(r)
	for _, name := range names {
		targets.RemoveClass(name)
	}
}

// ToggleClass flips class membership on every resolved target. An
// optional force flag pins the result: true always adds, false always
// removes.
func (d *Doc) ToggleClass(r Ref, name string, force ...bool) {
	targets := d.all(r)

	if len(force) > 0 {
		if force[0] {
			targets.AddClass(name)
		} else {
			targets.RemoveClass(name)
		}
		return
	}

	targets.Each(func(_ int, el *goquery.Selection) {
		el.ToggleClass(name)
	})
}

package domkit

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

var sanitizer = bluemonday.UGCPolicy()

// GetText returns the rendered text content of the first resolved
// target: every text node under it, markup stripped.
func (d *Doc) GetText(r Ref) string {
	return d.first(r).Text()
}

// SetText replaces the content of every resolved target with a single
// text node. The string round-trips through GetText verbatim.
func (d *Doc) SetText(r Ref, text string) {
	d.all(r).SetText(text)
}

// GetHTML returns the inner markup of the first resolved target.
func (d *Doc) GetHTML(r Ref) string {
	markup, err := d.first(r).Html()
	if err != nil {
		d.log.Debug("markup read failed", zap.Error(err))
		return ""
	}
	return markup
}

// SetHTML replaces all markup under every resolved target.
func (d *Doc) SetHTML(r Ref, markup string) {
	d.all(r).SetHtml(markup)
}

// SetHTMLSafe is SetHTML with the markup sanitized first. Script
// tags, event handler attributes, and similar content are stripped.
func (d *Doc) SetHTMLSafe(r Ref, markup string) {
	d.all(r).SetHtml(sanitizer.Sanitize(markup))
}

// AddHTML appends markup to every resolved target by concatenating
// onto the existing inner markup and re-parsing the combined string.
// A fragment that closes a tag left open by the existing content will
// change the resulting tree; callers get the re-parse semantics, not
// a structural guarantee.
func (d *Doc) AddHTML(r Ref, markup string) {
	d.all(r).Each(func(_ int, el *goquery.Selection) {
		existing, err := el.Html()
		if err != nil {
			existing = ""
		}
		el.SetHtml(existing + markup)
	})
}

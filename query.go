package domkit

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"go.uber.org/zap"
)

// Find looks up a unique identifier scoped to the root and returns
// the first match. No match yields an empty selection, never an error.
func (d *Doc) Find(id string) *goquery.Selection {
	return d.root.Find("#" + id).First()
}

// Select returns the first match of an arbitrary CSS selector.
func (d *Doc) Select(selector string) *goquery.Selection {
	return d.root.Find(selector).First()
}

// SelectAll returns every match of a CSS selector, in document order.
func (d *Doc) SelectAll(selector string) *goquery.Selection {
	return d.root.Find(selector)
}

// SelectXPath returns every match of an XPath expression scoped to
// the root. A malformed expression yields an empty selection.
func (d *Doc) SelectXPath(expr string) *goquery.Selection {
	if len(d.root.Nodes) == 0 {
		return d.emptySelection()
	}

	nodes, err := htmlquery.QueryAll(d.root.Nodes[0], expr)
	if err != nil {
		d.log.Debug("xpath query failed", zap.String("expr", expr), zap.Error(err))
		return d.emptySelection()
	}

	return d.wrap(nodes)
}

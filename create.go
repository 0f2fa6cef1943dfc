package domkit

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/domkit/domkit/internal/htmlutil"
)

// Create constructs one unattached element with the given tag name.
// The name is not validated; whatever the parser accepts is accepted
// here.
func (d *Doc) Create(name string) *goquery.Selection {
	return d.wrap([]*html.Node{htmlutil.NewElement(name)})
}

// CreateAll constructs one unattached element per tag name, in
// matching order.
func (d *Doc) CreateAll(names []string) []*goquery.Selection {
	out := make([]*goquery.Selection, len(names))
	for i, name := range names {
		out[i] = d.Create(name)
	}
	return out
}

// CreateHTML parses a markup fragment into unattached elements.
func (d *Doc) CreateHTML(src string) (*goquery.Selection, error) {
	nodes, err := htmlutil.ParseFragment(src)
	if err != nil {
		return nil, err
	}
	return d.wrap(nodes), nil
}

package domkit

import (
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/domkit/domkit/internal/config"
	"github.com/domkit/domkit/internal/htmlutil"
	"github.com/domkit/domkit/internal/httpclient"
	"github.com/domkit/domkit/internal/logging"
	"github.com/domkit/domkit/internal/store"
)

// Doc is one facade instance: a parsed document, a root node scoping
// selector resolution, and an instance-local globals map. Instances
// produced by Init share the document and listener registry but
// nothing else.
type Doc struct {
	doc    *goquery.Document
	root   *goquery.Selection
	events *registry

	globals sync.Map
	http    *httpclient.Client
	storeMu sync.Mutex
	store   *store.Store

	cfg *config.Config
	log *logging.Logger
}

// Option customizes a facade instance at construction.
type Option func(*Doc)

// WithLogger replaces the default logger.
func WithLogger(l *logging.Logger) Option {
	return func(d *Doc) { d.log = l }
}

// WithToken sets the bearer token used by the network helpers.
func WithToken(token string) Option {
	return func(d *Doc) { d.http.SetToken(token) }
}

// emptyDocument is what New parses; the parser fills in html/head/body.
const emptyDocument = "<!DOCTYPE html><html><head></head><body></body></html>"

// Load parses markup into a new facade instance scoped to the whole
// document. Charset is detected automatically.
func Load(src string, opts ...Option) (*Doc, error) {
	gq, err := htmlutil.LoadDocument(src)
	if err != nil {
		return nil, err
	}
	return fromDocument(gq, opts...), nil
}

// New returns a facade instance over an empty document.
func New(opts ...Option) *Doc {
	d, err := Load(emptyDocument, opts...)
	if err != nil {
		// The empty document is a constant; parsing it cannot fail.
		panic(err)
	}
	return d
}

func fromDocument(gq *goquery.Document, opts ...Option) *Doc {
	cfg := config.LoadOrDefault()

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log = logging.Nop()
	}

	d := &Doc{
		doc:    gq,
		root:   gq.Selection,
		events: newRegistry(),
		http:   httpclient.New(httpConfig(cfg)),
		cfg:    cfg,
		log:    log,
	}

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Init produces a new, independent instance scoped to the resolved
// root. It shares the document and listener registry with the parent
// but carries its own globals. When the ref resolves to nothing the
// new instance falls back to the whole document.
func (d *Doc) Init(r Ref) *Doc {
	root := d.first(r)
	if root.Length() == 0 {
		root = d.doc.Selection
	}

	return &Doc{
		doc:    d.doc,
		root:   root,
		events: d.events,
		http:   d.http,
		cfg:    d.cfg,
		log:    d.log,
	}
}

// Root returns the selection the instance resolves selectors against.
func (d *Doc) Root() *goquery.Selection {
	return d.root
}

// Render serializes the whole document back to markup.
func (d *Doc) Render() (string, error) {
	return goquery.OuterHtml(d.doc.Selection)
}

// Package domkit wraps an HTML element tree behind short method names:
// element creation, attribute/class/style setters, markup injection,
// event binding, simple authenticated HTTP calls, and key-value
// persistence. Every operation forwards to the underlying platform,
// optionally broadcast over a collection of targets.
//
// The package is organized by concern:
//   - create: element construction
//   - query: CSS selector and XPath lookups
//   - attrs: attribute and data-attribute access
//   - style: inline style, computed style, transforms
//   - classes: class-list queries and mutations
//   - content: text and markup read/write
//   - insert: child insertion and script loading
//   - events: listener registry and dispatch
//   - ajax: authenticated GET/POST with callbacks
//   - globals: instance storage and durable persistence
//
// Built on specialized libraries:
//   - goquery: jQuery-like CSS selectors over x/net/html
//   - htmlquery: XPath support for HTML
//   - bluemonday: HTML sanitization
//   - chardet: character encoding detection
//   - resty: HTTP client
//
// Every operation takes a Ref naming its subject: a selector resolved
// lazily against the instance root, an already-resolved handle, or a
// list of either. Resolution that yields nothing is not an error; the
// operation degrades to an empty result or a silent no-op.
//
// Example Usage:
//
//	d, err := domkit.Load(page)
//	h1 := d.Create("h1")
//	d.SetText(domkit.Node(h1), "Hello, world!")
//	d.Append(domkit.Sel("#container"), domkit.Node(h1))
package domkit

package domkit

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// inheritable lists the style properties GetComputedCSS resolves
// through ancestors when an element carries no own declaration.
var inheritable = map[string]bool{
	"color":          true,
	"cursor":         true,
	"direction":      true,
	"font":           true,
	"font-family":    true,
	"font-size":      true,
	"font-style":     true,
	"font-weight":    true,
	"letter-spacing": true,
	"line-height":    true,
	"list-style":     true,
	"text-align":     true,
	"text-indent":    true,
	"text-transform": true,
	"visibility":     true,
	"white-space":    true,
	"word-spacing":   true,
}

// SetCSS sets inline style properties on every resolved target.
// Property names are accepted in camelCase and normalized to
// hyphenated form in the style attribute.
func (d *Doc) SetCSS(r Ref, props map[string]string) {
	d.all(r).Each(func(_ int, el *goquery.Selection) {
		names, decls := parseStyle(el.AttrOr("style", ""))
		for name, value := range props {
			name = hyphenate(name)
			if _, ok := decls[name]; !ok {
				names = append(names, name)
			}
			decls[name] = value
		}
		el.SetAttr("style", renderStyle(names, decls))
	})
}

// GetCSS reads an inline style property from the first resolved
// target. Only the element's own declarations are consulted.
func (d *Doc) GetCSS(r Ref, prop string) (string, bool) {
	el := d.first(r)
	if el.Length() == 0 {
		return "", false
	}
	_, decls := parseStyle(el.AttrOr("style", ""))
	v, ok := decls[hyphenate(prop)]
	return v, ok
}

// GetComputedCSS resolves a style property the way the cascade would:
// the element's own inline declaration wins, then, for inheritable
// properties, the nearest ancestor declaration.
func (d *Doc) GetComputedCSS(r Ref, prop string) (string, bool) {
	prop = hyphenate(prop)

	el := d.first(r)
	if el.Length() == 0 {
		return "", false
	}

	_, decls := parseStyle(el.AttrOr("style", ""))
	if v, ok := decls[prop]; ok {
		return v, true
	}

	if !inheritable[prop] {
		return "", false
	}

	for parent := el.Parent(); parent.Length() > 0; parent = parent.Parent() {
		_, decls := parseStyle(parent.AttrOr("style", ""))
		if v, ok := decls[prop]; ok {
			return v, true
		}
	}

	return "", false
}

// Rotate sets a rotation transform on every resolved target. Pure
// style shorthand; no layout computation happens here.
func (d *Doc) Rotate(r Ref, degrees float64) {
	d.SetCSS(r, map[string]string{"transform": fmt.Sprintf("rotate(%gdeg)", degrees)})
}

// Hide sets display:none on every resolved target.
func (d *Doc) Hide(r Ref) {
	d.SetCSS(r, map[string]string{"display": "none"})
}

// Show clears a display:none declaration set by Hide.
func (d *Doc) Show(r Ref) {
	d.all(r).Each(func(_ int, el *goquery.Selection) {
		names, decls := parseStyle(el.AttrOr("style", ""))
		if decls["display"] != "none" {
			return
		}
		delete(decls, "display")
		el.SetAttr("style", renderStyle(names, decls))
	})
}

// parseStyle splits a style attribute into declarations, preserving
// declaration order in names.
func parseStyle(style string) (names []string, decls map[string]string) {
	decls = make(map[string]string)
	for _, part := range strings.Split(style, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if _, seen := decls[name]; !seen {
			names = append(names, name)
		}
		decls[name] = strings.TrimSpace(value)
	}
	return names, decls
}

// renderStyle serializes declarations back in their recorded order.
func renderStyle(names []string, decls map[string]string) string {
	var b strings.Builder
	for _, name := range names {
		value, ok := decls[name]
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
	}
	return b.String()
}

// hyphenate converts camelCase property names to their hyphenated
// form; already-hyphenated names pass through unchanged.
func hyphenate(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

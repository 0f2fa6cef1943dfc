package domkit

// dataPrefix namespaces keys stored via SetData so they live as
// data-attributes rather than ordinary attributes.
const dataPrefix = "data-"

// SetAttr sets each key-value pair as an attribute on every resolved
// target. Pairs are applied independently; there is no transactional
// guarantee across them.
func (d *Doc) SetAttr(r Ref, attrs map[string]string) {
	targets := d.all(r)
	for name, value := range attrs {
		targets.SetAttr(name, value)
	}
}

// GetAttr reads an attribute from the first resolved target. The
// second return reports whether the attribute was present.
func (d *Doc) GetAttr(r Ref, name string) (string, bool) {
	return d.first(r).Attr(name)
}

// RemoveAttr drops an attribute from every resolved target.
func (d *Doc) RemoveAttr(r Ref, name string) {
	d.all(r).RemoveAttr(name)
}

// SetData stores each pair under the data- namespace.
func (d *Doc) SetData(r Ref, data map[string]string) {
	targets := d.all(r)
	for name, value := range data {
		targets.SetAttr(dataPrefix+name, value)
	}
}

// GetData reads a data-attribute from the first resolved target.
func (d *Doc) GetData(r Ref, name string) (string, bool) {
	return d.first(r).Attr(dataPrefix + name)
}

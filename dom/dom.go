// Package dom implements a minimal element tree with attributes, classes and
// bubbling events. It is the surface that gesture recognizers and the sketch
// pad talk to, independent of how elements end up on screen.
package dom

import (
	"image"

	"golang.org/x/exp/slices"
)

// Document owns a tree of elements rooted at an html element.
type Document struct {
	root     *Element
	body     *Element
	viewport image.Point
}

func NewDocument() *Document {
	doc := &Document{}
	doc.root = doc.CreateElement("html")
	doc.body = doc.CreateElement("body")
	doc.root.Append(doc.body)
	return doc
}

// Root returns the document element.
func (doc *Document) Root() *Element { return doc.root }
func (doc *Document) Body() *Element { return doc.body }

// Viewport returns the size of the viewport, in pixels.
func (doc *Document) Viewport() image.Point { return doc.viewport }

func (doc *Document) SetViewport(sz image.Point) { doc.viewport = sz }

// CreateElement returns a new detached element belonging to doc.
func (doc *Document) CreateElement(tag string) *Element {
	return &Element{
		doc: doc,
		tag: tag,
	}
}

type Element struct {
	doc       *Document
	tag       string
	parent    *Element
	children  []*Element
	attrs     map[string]string
	classes   []string
	listeners map[string][]*listener
}

func (el *Element) Tag() string          { return el.tag }
func (el *Element) Document() *Document  { return el.doc }
func (el *Element) Parent() *Element     { return el.parent }
func (el *Element) Children() []*Element { return el.children }
func (el *Element) ID() string {
	v, _ := el.Attr("id")
	return v
}
func (el *Element) SetID(id string)        { el.SetAttr("id", id) }
func (el *Element) String() string         { return "<" + el.tag + " id=" + el.ID() + ">" }
func (el *Element) HasClass(c string) bool { return slices.Contains(el.classes, c) }

// Append adds child as the last child of el, detaching it from its previous
// parent first.
func (el *Element) Append(child *Element) {
	if child.parent != nil {
		child.Remove()
	}
	child.parent = el
	el.children = append(el.children, child)
}

// Remove detaches el from its parent. It is a no-op for detached elements.
func (el *Element) Remove() {
	p := el.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, el); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	el.parent = nil
}

// RemoveChildren detaches all children of el.
func (el *Element) RemoveChildren() {
	for _, c := range el.children {
		c.parent = nil
	}
	el.children = nil
}

func (el *Element) Attr(name string) (string, bool) {
	v, ok := el.attrs[name]
	return v, ok
}

func (el *Element) SetAttr(name, value string) {
	if el.attrs == nil {
		el.attrs = map[string]string{}
	}
	el.attrs[name] = value
}

func (el *Element) RemoveAttr(name string) {
	delete(el.attrs, name)
}

// Data returns the value of the data-key attribute.
func (el *Element) Data(key string) (string, bool) { return el.Attr("data-" + key) }
func (el *Element) SetData(key, value string)      { el.SetAttr("data-"+key, value) }
func (el *Element) DeleteData(key string)          { el.RemoveAttr("data-" + key) }

func (el *Element) AddClass(c string) {
	if !el.HasClass(c) {
		el.classes = append(el.classes, c)
	}
}

func (el *Element) RemoveClass(c string) {
	el.classes = slices.DeleteFunc(el.classes, func(o string) bool { return o == c })
}

// NearestAttribute returns the first non-empty value of the attribute name,
// looking at el and then its ancestors. The document element itself is never
// consulted. def is returned if no element carries the attribute.
func NearestAttribute(el *Element, name, def string) string {
	for ; el != nil && !el.isRoot(); el = el.parent {
		if v, ok := el.attrs[name]; ok && v != "" {
			return v
		}
	}
	return def
}

func (el *Element) isRoot() bool {
	return el.doc != nil && el.doc.root == el
}

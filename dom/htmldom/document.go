// Package htmldom implements the dom contract on top of golang.org/x/net/html
// nodes. It needs no browser, which makes it the host for tests and for
// server-side previews. Shadow roots serialize as declarative shadow DOM.
package htmldom

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vcrobe/nojs-wc/dom"
)

// Compile-time assertions.
var (
	_ dom.Document  = (*Document)(nil)
	_ dom.Element   = (*Element)(nil)
	_ dom.Host      = (*Host)(nil)
	_ dom.Container = (*ShadowRoot)(nil)
)

// Document owns an html.Node tree and the wrappers handed out for its nodes.
// Wrappers are cached per node so that listener registrations and identity
// comparisons survive repeated lookups.
type Document struct {
	root *html.Node
	head *html.Node
	body *html.Node

	elements map[*html.Node]*Element
	hosts    map[*html.Node]*Host
	shadows  map[*html.Node]*ShadowRoot // keyed by the <template> node
}

// NewDocument returns an empty <html><head></head><body></body></html> document.
func NewDocument() *Document {
	d := &Document{
		root:     &html.Node{Type: html.DocumentNode},
		elements: make(map[*html.Node]*Element),
		hosts:    make(map[*html.Node]*Host),
		shadows:  make(map[*html.Node]*ShadowRoot),
	}
	d.root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	htmlNode := newNode("html")
	d.head = newNode("head")
	d.body = newNode("body")
	htmlNode.AppendChild(d.head)
	htmlNode.AppendChild(d.body)
	d.root.AppendChild(htmlNode)
	return d
}

func newNode(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) dom.Element {
	return d.wrap(newNode(tag))
}

// CreateHost creates a detached element able to carry a shadow root, the
// platform side of a custom element instance.
func (d *Document) CreateHost(tag string) *Host {
	n := newNode(tag)
	h := &Host{Element: d.wrap(n)}
	d.hosts[n] = h
	return h
}

// Head returns the <head> element.
func (d *Document) Head() *Element {
	return d.wrap(d.head)
}

// Body returns the <body> element.
func (d *Document) Body() *Element {
	return d.wrap(d.body)
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the serialized document.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// OuterHTML serializes a single element including its shadow root.
func OuterHTML(el dom.Element) string {
	n := nodeOf(el)
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

func (d *Document) wrap(n *html.Node) *Element {
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elements[n] = el
	return el
}

// isShadowTemplate reports whether n is the backing node of a shadow root.
// Those nodes are not children from the DOM's point of view.
func (d *Document) isShadowTemplate(n *html.Node) bool {
	_, ok := d.shadows[n]
	return ok
}

type htmlNoder interface {
	htmlNode() *html.Node
}

func nodeOf(el dom.Element) *html.Node {
	if n, ok := el.(htmlNoder); ok {
		return n.htmlNode()
	}
	return nil
}

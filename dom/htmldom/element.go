package htmldom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/vcrobe/nojs-wc/dom"
	"github.com/vcrobe/nojs-wc/events"
)

// Element wraps an element node.
type Element struct {
	doc       *Document
	node      *html.Node
	listeners events.ListenerSet
}

func (e *Element) htmlNode() *html.Node { return e.node }

// Node exposes the underlying html.Node.
func (e *Element) Node() *html.Node { return e.node }

func (e *Element) TagName() string { return e.node.Data }

func (e *Element) OwnerDocument() dom.Document { return e.doc }

// IsConnected reports whether the element is attached to its document.
func (e *Element) IsConnected() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}

func (e *Element) GetAttribute(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

func (e *Element) RemoveAttribute(name string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr = append(e.node.Attr[:i:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

func (e *Element) TextContent() string {
	return textContent(e.doc, e.node)
}

func textContent(d *Document, n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.TextNode:
				b.WriteString(c.Data)
			case c.Type == html.ElementNode && !d.isShadowTemplate(c):
				walk(c)
			}
		}
	}
	walk(n)
	return b.String()
}

// SetTextContent replaces the light children with a text node. An attached
// shadow root is kept.
func (e *Element) SetTextContent(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		if !e.doc.isShadowTemplate(c) {
			e.node.RemoveChild(c)
		}
		c = next
	}
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// SetValue stores the value as an attribute; there is no live form state.
func (e *Element) SetValue(value string) {
	e.SetAttribute("value", value)
}

func (e *Element) AppendChild(child dom.Element) {
	appendChild(e.node, child)
}

func (e *Element) InsertBefore(child, ref dom.Element) {
	insertBefore(e.node, child, ref)
}

func (e *Element) RemoveChild(child dom.Element) {
	removeChild(e.node, child)
}

func (e *Element) ReplaceChild(newChild, oldChild dom.Element) {
	insertBefore(e.node, newChild, oldChild)
	removeChild(e.node, oldChild)
}

func (e *Element) Children() []dom.Element {
	return children(e.doc, e.node)
}

func (e *Element) AddEventListener(typ string, l *events.Listener) {
	e.listeners.Add(typ, l)
}

func (e *Element) RemoveEventListener(typ string, l *events.Listener) {
	e.listeners.Remove(typ, l)
}

// DispatchEvent runs the element's listeners and, for bubbling events, those
// of its ancestors. Events only cross a shadow boundary when Composed is set.
func (e *Element) DispatchEvent(ev *events.Event) bool {
	e.listeners.Dispatch(ev)
	if ev.Bubbles {
		if parent := e.doc.parentTarget(e.node); parent != nil {
			parent.DispatchEvent(ev)
		}
	}
	return !ev.DefaultPrevented()
}

func (d *Document) parentTarget(n *html.Node) events.Target {
	p := n.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	if sr, ok := d.shadows[p]; ok {
		return sr
	}
	return d.wrap(p)
}

func children(d *Document, n *html.Node) []dom.Element {
	var out []dom.Element
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || d.isShadowTemplate(c) {
			continue
		}
		if h, ok := d.hosts[c]; ok {
			out = append(out, h)
			continue
		}
		out = append(out, d.wrap(c))
	}
	return out
}

func appendChild(parent *html.Node, child dom.Element) {
	c := nodeOf(child)
	if c == nil {
		return
	}
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	parent.AppendChild(c)
}

func insertBefore(parent *html.Node, child, ref dom.Element) {
	if ref == nil {
		appendChild(parent, child)
		return
	}
	c, r := nodeOf(child), nodeOf(ref)
	if c == nil || r == nil || r.Parent != parent {
		appendChild(parent, child)
		return
	}
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	parent.InsertBefore(c, r)
}

func removeChild(parent *html.Node, child dom.Element) {
	c := nodeOf(child)
	if c == nil || c.Parent != parent {
		return
	}
	parent.RemoveChild(c)
}

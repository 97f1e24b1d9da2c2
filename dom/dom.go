// Package dom is the host platform contract: the minimal DOM surface the
// virtual DOM builder and the custom element adapter need. The browser host
// lives in dom/jsdom, the in-memory host used by tests and server-side
// previews in dom/htmldom.
package dom

import "github.com/vcrobe/nojs-wc/events"

// Document creates nodes.
type Document interface {
	CreateElement(tag string) Element
}

// Container is a node that holds child elements: an element or a shadow root.
type Container interface {
	events.Target

	AppendChild(child Element)
	InsertBefore(child, ref Element)
	RemoveChild(child Element)
	ReplaceChild(newChild, oldChild Element)
	// Children returns the element children in document order.
	Children() []Element
	OwnerDocument() Document
}

// Element is a DOM element.
type Element interface {
	Container

	TagName() string
	GetAttribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	TextContent() string
	// SetTextContent replaces all children with a single text node.
	SetTextContent(text string)
	// SetValue sets the live value of form controls.
	SetValue(value string)
}

// Host is the platform element a custom element instance lives on.
type Host interface {
	Element

	// AttachShadow attaches an open shadow root, or returns the existing one.
	AttachShadow() Container
	// ShadowRoot returns the attached shadow root, or nil.
	ShadowRoot() Container
}

// FindChild returns the first element child of c matching pred.
func FindChild(c Container, pred func(Element) bool) (Element, bool) {
	for _, child := range c.Children() {
		if pred(child) {
			return child, true
		}
	}
	return nil, false
}

// HasAttribute reports whether el carries name with exactly value.
func HasAttribute(el Element, name, value string) bool {
	v, ok := el.GetAttribute(name)
	return ok && v == value
}

package vdom

import (
	"strings"

	"github.com/vcrobe/nojs-wc/events"
)

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string                         // The HTML tag name
	Attributes map[string]any                 // The attributes of the node
	Children   []*VNode                       // The child nodes
	Content    string                         // The content of the node
	Handlers   map[string]func(*events.Event) // Event handlers keyed by DOM event type ("click")

	listeners map[string]*events.Listener // Listeners attached by Build/Patch, released on patch
}

// NewVNode creates a new VNode.
// Attributes named on<Event> holding a func() or func(*events.Event) are moved
// into Handlers so they are attached as listeners instead of rendered as HTML
// attributes.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var handlers map[string]func(*events.Event)
	for key, v := range attributes {
		typ, ok := eventType(key)
		if !ok {
			continue
		}
		var fn func(*events.Event)
		switch h := v.(type) {
		case func():
			fn = func(*events.Event) { h() }
		case func(*events.Event):
			fn = h
		default:
			continue
		}
		if handlers == nil {
			handlers = make(map[string]func(*events.Event))
		}
		handlers[typ] = fn
		// Remove from attributes so it doesn't get rendered as an HTML attribute
		delete(attributes, key)
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		Handlers:   handlers,
	}
}

// eventType maps "onClick" to "click".
func eventType(attr string) (string, bool) {
	if len(attr) <= 2 || attr[0] != 'o' || attr[1] != 'n' {
		return "", false
	}
	return strings.ToLower(attr[2:]), true
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// Element creates a VNode for an arbitrary tag.
func Element(tag string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode(tag, attrs, children, "")
}

// Text creates a VNode for tag holding only text.
func Text(tag, text string, attrs map[string]any) *VNode {
	return NewVNode(tag, attrs, nil, text)
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Span creates a <span> VNode holding text.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// InputText returns a VNode representing an <input type="text"> element.
// Optionally accepts a map of attributes (e.g., {"placeholder": "Type here"}).
func InputText(attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = "text"
	return NewVNode("input", attrs, nil, "")
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}

// Slot creates a <slot> VNode, projecting the custom element's light children
// into its shadow root.
func Slot(name string) *VNode {
	var attrs map[string]any
	if name != "" {
		attrs = map[string]any{"name": name}
	}
	return NewVNode("slot", attrs, nil, "")
}

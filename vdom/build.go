package vdom

import (
	"fmt"

	"github.com/vcrobe/nojs-wc/dom"
	"github.com/vcrobe/nojs-wc/events"
)

// Build creates the DOM element for n, recursively, using doc.
func Build(doc dom.Document, n *VNode) dom.Element {
	if doc == nil || n == nil || n.Tag == "" {
		return nil
	}

	el := doc.CreateElement(n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachEventListeners(el, n)

	switch {
	case isFormControl(n.Tag):
		// For text input, set value if provided in Content
		if n.Content != "" {
			el.SetValue(n.Content)
		}
	case len(n.Children) > 0:
		for _, child := range n.Children {
			if childEl := Build(doc, child); childEl != nil {
				el.AppendChild(childEl)
			}
		}
	case n.Content != "":
		el.SetTextContent(n.Content)
	}
	return el
}

// Mount builds n and appends it to parent, returning the created element.
func Mount(parent dom.Container, n *VNode) dom.Element {
	el := Build(parent.OwnerDocument(), n)
	if el != nil {
		parent.AppendChild(el)
	}
	return el
}

// Release detaches every listener Build or Patch attached for the tree rooted at v.
func Release(v *VNode, el dom.Element) {
	if v == nil {
		return
	}
	releaseCallbacks(v, el)
	if el == nil {
		for _, child := range v.Children {
			Release(child, nil)
		}
		return
	}
	domChildren := el.Children()
	next := 0
	for _, child := range v.Children {
		if child == nil {
			continue
		}
		var childEl dom.Element
		if next < len(domChildren) {
			childEl = domChildren[next]
			next++
		}
		Release(child, childEl)
	}
}

func releaseCallbacks(v *VNode, el dom.Element) {
	for typ, l := range v.listeners {
		if el != nil {
			el.RemoveEventListener(typ, l)
		}
	}
	v.listeners = nil
}

func attachEventListeners(el dom.Element, v *VNode) {
	for typ, fn := range v.Handlers {
		l := events.NewListener(fn)
		el.AddEventListener(typ, l)
		if v.listeners == nil {
			v.listeners = make(map[string]*events.Listener)
		}
		v.listeners[typ] = l
	}
}

// setAttributeValue sets an attribute on an element, handling boolean attributes correctly.
func setAttributeValue(el dom.Element, key string, value any) {
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			// For boolean attributes, set them without a value (or with empty string)
			el.SetAttribute(key, "")
		} else {
			el.RemoveAttribute(key)
		}
		return
	}
	el.SetAttribute(key, fmt.Sprint(value))
}

func isFormControl(tag string) bool {
	return tag == "input" || tag == "textarea" || tag == "select"
}

// Patch updates el, a child of parent built from oldVNode, to match newVNode
// and returns the element now representing newVNode. When tags differ the
// element is replaced.
func Patch(parent dom.Container, el dom.Element, oldVNode, newVNode *VNode) dom.Element {
	if newVNode == nil {
		if el != nil {
			Release(oldVNode, el)
			parent.RemoveChild(el)
		}
		return nil
	}
	if el == nil || oldVNode == nil {
		return Mount(parent, newVNode)
	}

	// If tags are different, replace the entire element
	if oldVNode.Tag != newVNode.Tag {
		Release(oldVNode, el)
		newElement := Build(parent.OwnerDocument(), newVNode)
		if newElement != nil {
			parent.ReplaceChild(newElement, el)
		}
		return newElement
	}

	// Same tag - update attributes
	patchAttributes(el, oldVNode.Attributes, newVNode.Attributes)

	// Release old callbacks and attach new ones
	releaseCallbacks(oldVNode, el)
	attachEventListeners(el, newVNode)

	switch {
	case isFormControl(newVNode.Tag):
		if newVNode.Content != oldVNode.Content {
			el.SetValue(newVNode.Content)
		}
	case len(newVNode.Children) == 0 && len(oldVNode.Children) == 0:
		if oldVNode.Content != newVNode.Content {
			el.SetTextContent(newVNode.Content)
		}
	case len(oldVNode.Children) == 0:
		// Text content gives way to element children.
		el.SetTextContent("")
	}

	patchChildren(el, oldVNode.Children, newVNode.Children)
	if len(newVNode.Children) == 0 && len(oldVNode.Children) > 0 && newVNode.Content != "" {
		el.SetTextContent(newVNode.Content)
	}
	return el
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(el dom.Element, oldAttrs, newAttrs map[string]any) {
	// Remove old attributes that are not in new attributes
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists {
			el.RemoveAttribute(key)
		}
	}

	for key, value := range newAttrs {
		if old, ok := oldAttrs[key]; !ok || fmt.Sprint(old) != fmt.Sprint(value) {
			setAttributeValue(el, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element.
// Nil entries stand for conditionally hidden children and own no DOM node.
func patchChildren(el dom.Element, oldChildren, newChildren []*VNode) {
	domChildren := el.Children()
	next := 0 // index into domChildren of the node backing the next non-nil old child

	for i := 0; i < len(oldChildren) || i < len(newChildren); i++ {
		var oldChild, newChild *VNode
		if i < len(oldChildren) {
			oldChild = oldChildren[i]
		}
		if i < len(newChildren) {
			newChild = newChildren[i]
		}

		var current dom.Element
		if oldChild != nil && next < len(domChildren) {
			current = domChildren[next]
			next++
		}

		switch {
		case oldChild == nil && newChild == nil:
		case oldChild == nil:
			childEl := Build(el.OwnerDocument(), newChild)
			if childEl == nil {
				continue
			}
			// Find the correct position to insert
			if next < len(domChildren) {
				el.InsertBefore(childEl, domChildren[next])
			} else {
				el.AppendChild(childEl)
			}
		default:
			Patch(el, current, oldChild, newChild)
		}
	}
}

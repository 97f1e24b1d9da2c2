//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-wc/dom"
)

// Element wraps a browser element.
type Element struct {
	node
}

// Wrap returns the element wrapper of v.
func Wrap(v js.Value) *Element {
	return &Element{node: node{doc: Global(), v: v}}
}

func (e *Element) TagName() string {
	return e.v.Get("localName").String()
}

func (e *Element) GetAttribute(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (e *Element) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *Element) RemoveAttribute(name string) {
	e.v.Call("removeAttribute", name)
}

func (e *Element) TextContent() string {
	return e.v.Get("textContent").String()
}

func (e *Element) SetTextContent(text string) {
	e.v.Set("textContent", text)
}

// SetValue updates the live value, leaving the focused control alone so the
// user's typing is not overwritten.
func (e *Element) SetValue(value string) {
	if e.v.Call("matches", ":focus").Bool() {
		return
	}
	if e.v.Get("value").String() != value {
		e.v.Set("value", value)
	}
}

// Host is the browser element behind a custom element instance. The shadow
// root wrapper is cached: renderers are keyed by container identity.
type Host struct {
	*Element
	shadow *ShadowRoot
}

func (h *Host) AttachShadow() dom.Container {
	if sr := h.ShadowRoot(); sr != nil {
		return sr
	}
	h.shadow = &ShadowRoot{node: node{doc: h.doc, v: h.v.Call("attachShadow", map[string]any{"mode": "open"})}}
	return h.shadow
}

func (h *Host) ShadowRoot() dom.Container {
	if h.shadow != nil {
		return h.shadow
	}
	sr := h.v.Get("shadowRoot")
	if !sr.Truthy() {
		return nil
	}
	h.shadow = &ShadowRoot{node: node{doc: h.doc, v: sr}}
	return h.shadow
}

// ShadowRoot wraps an open shadow root.
type ShadowRoot struct {
	node
}

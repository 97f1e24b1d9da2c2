//go:build js && wasm

// Package jsdom implements the dom contract on the browser DOM through
// syscall/js, and defines custom elements backed by element.Class.
package jsdom

import (
	"fmt"
	"syscall/js"

	"github.com/vcrobe/nojs-wc/dom"
	"github.com/vcrobe/nojs-wc/events"
)

// Compile-time assertions.
var (
	_ dom.Document  = (*Document)(nil)
	_ dom.Element   = (*Element)(nil)
	_ dom.Host      = (*Host)(nil)
	_ dom.Container = (*ShadowRoot)(nil)
)

// Document wraps the browser document. It also tracks the js.Func created
// for each listener so that RemoveEventListener can find and release it.
type Document struct {
	v         js.Value
	listeners map[*events.Listener][]registration
}

type registration struct {
	target js.Value
	typ    string
	fn     js.Func
}

var global *Document

// Global returns the wrapper of window.document.
func Global() *Document {
	if global == nil {
		global = &Document{
			v:         js.Global().Get("document"),
			listeners: make(map[*events.Listener][]registration),
		}
	}
	return global
}

func (d *Document) CreateElement(tag string) dom.Element {
	return &Element{node: node{doc: d, v: d.v.Call("createElement", tag)}}
}

// node holds what elements and shadow roots share.
type node struct {
	doc *Document
	v   js.Value
}

// Value exposes the wrapped js.Value.
func (n *node) Value() js.Value { return n.v }

func (n *node) OwnerDocument() dom.Document { return n.doc }

func (n *node) AppendChild(child dom.Element) {
	if c, ok := valueOf(child); ok {
		n.v.Call("appendChild", c)
	}
}

func (n *node) InsertBefore(child, ref dom.Element) {
	c, ok := valueOf(child)
	if !ok {
		return
	}
	r, ok := valueOf(ref)
	if !ok {
		n.v.Call("appendChild", c)
		return
	}
	n.v.Call("insertBefore", c, r)
}

func (n *node) RemoveChild(child dom.Element) {
	if c, ok := valueOf(child); ok && c.Get("parentNode").Equal(n.v) {
		n.v.Call("removeChild", c)
	}
}

func (n *node) ReplaceChild(newChild, oldChild dom.Element) {
	nc, ok1 := valueOf(newChild)
	oc, ok2 := valueOf(oldChild)
	if ok1 && ok2 {
		n.v.Call("replaceChild", nc, oc)
	}
}

func (n *node) Children() []dom.Element {
	list := n.v.Get("children")
	out := make([]dom.Element, 0, list.Length())
	for i := 0; i < list.Length(); i++ {
		out = append(out, &Element{node: node{doc: n.doc, v: list.Index(i)}})
	}
	return out
}

func (n *node) AddEventListener(typ string, l *events.Listener) {
	for _, reg := range n.doc.listeners[l] {
		if reg.typ == typ && reg.target.Equal(n.v) {
			return
		}
	}
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		native := args[0]
		ev := &events.Event{
			Type:     native.Get("type").String(),
			Detail:   fromJS(native.Get("detail")),
			Bubbles:  native.Get("bubbles").Truthy(),
			Composed: native.Get("composed").Truthy(),
		}
		l.Handle(ev)
		if ev.DefaultPrevented() {
			native.Call("preventDefault")
		}
		return nil
	})
	n.v.Call("addEventListener", typ, fn)
	n.doc.listeners[l] = append(n.doc.listeners[l], registration{target: n.v, typ: typ, fn: fn})
}

func (n *node) RemoveEventListener(typ string, l *events.Listener) {
	regs := n.doc.listeners[l]
	for i, reg := range regs {
		if reg.typ != typ || !reg.target.Equal(n.v) {
			continue
		}
		n.v.Call("removeEventListener", typ, reg.fn)
		reg.fn.Release()
		regs = append(regs[:i:i], regs[i+1:]...)
		break
	}
	if len(regs) == 0 {
		delete(n.doc.listeners, l)
	} else {
		n.doc.listeners[l] = regs
	}
}

// DispatchEvent dispatches ev as a CustomEvent.
func (n *node) DispatchEvent(ev *events.Event) bool {
	init := map[string]any{
		"detail":     toJS(ev.Detail),
		"bubbles":    ev.Bubbles,
		"composed":   ev.Composed,
		"cancelable": true,
	}
	native := js.Global().Get("CustomEvent").New(ev.Type, init)
	ok := n.v.Call("dispatchEvent", native).Bool()
	if !ok {
		ev.PreventDefault()
	}
	return ok
}

type jsValuer interface {
	Value() js.Value
}

func valueOf(el dom.Element) (js.Value, bool) {
	if el == nil {
		return js.Value{}, false
	}
	if v, ok := el.(jsValuer); ok {
		return v.Value(), true
	}
	return js.Value{}, false
}

// fromJS converts primitives to Go values and keeps anything else as js.Value.
func fromJS(v js.Value) any {
	switch v.Type() {
	case js.TypeUndefined, js.TypeNull:
		return nil
	case js.TypeString:
		return v.String()
	case js.TypeNumber:
		return v.Float()
	case js.TypeBoolean:
		return v.Bool()
	default:
		return v
	}
}

// toJS converts v for JavaScript. Values js.ValueOf rejects are passed as
// their fmt representation.
func toJS(v any) (out js.Value) {
	switch x := v.(type) {
	case nil:
		return js.Undefined()
	case js.Value:
		return x
	case error:
		return js.ValueOf(x.Error())
	}
	defer func() {
		if recover() != nil {
			out = js.ValueOf(fmt.Sprint(v))
		}
	}()
	return js.ValueOf(v)
}

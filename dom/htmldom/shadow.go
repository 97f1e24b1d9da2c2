package htmldom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vcrobe/nojs-wc/dom"
	"github.com/vcrobe/nojs-wc/events"
)

// Host is an element that can carry a shadow root.
type Host struct {
	*Element
	shadow *ShadowRoot
}

// AttachShadow inserts a <template shadowrootmode="open"> as the host's first
// child and returns it as a shadow root. Calling it again returns the same root.
func (h *Host) AttachShadow() dom.Container {
	if h.shadow != nil {
		return h.shadow
	}
	tmpl := &html.Node{
		Type:     html.ElementNode,
		Data:     "template",
		DataAtom: atom.Template,
		Attr:     []html.Attribute{{Key: "shadowrootmode", Val: "open"}},
	}
	h.node.InsertBefore(tmpl, h.node.FirstChild)
	h.shadow = &ShadowRoot{doc: h.doc, node: tmpl, host: h}
	h.doc.shadows[tmpl] = h.shadow
	return h.shadow
}

// ShadowRoot returns the attached shadow root or nil. The nil check keeps a
// nil *ShadowRoot from turning into a non-nil interface.
func (h *Host) ShadowRoot() dom.Container {
	if h.shadow == nil {
		return nil
	}
	return h.shadow
}

// ShadowRoot is an isolated sub-tree attached to a Host.
type ShadowRoot struct {
	doc       *Document
	node      *html.Node
	host      *Host
	listeners events.ListenerSet
}

// Host returns the element the root is attached to.
func (s *ShadowRoot) Host() *Host { return s.host }

func (s *ShadowRoot) OwnerDocument() dom.Document { return s.doc }

func (s *ShadowRoot) AppendChild(child dom.Element) {
	appendChild(s.node, child)
}

func (s *ShadowRoot) InsertBefore(child, ref dom.Element) {
	insertBefore(s.node, child, ref)
}

func (s *ShadowRoot) RemoveChild(child dom.Element) {
	removeChild(s.node, child)
}

func (s *ShadowRoot) ReplaceChild(newChild, oldChild dom.Element) {
	insertBefore(s.node, newChild, oldChild)
	removeChild(s.node, oldChild)
}

func (s *ShadowRoot) Children() []dom.Element {
	return children(s.doc, s.node)
}

// InnerHTML serializes the shadow root's content.
func (s *ShadowRoot) InnerHTML() string {
	var out string
	for _, c := range s.Children() {
		out += OuterHTML(c)
	}
	return out
}

func (s *ShadowRoot) AddEventListener(typ string, l *events.Listener) {
	s.listeners.Add(typ, l)
}

func (s *ShadowRoot) RemoveEventListener(typ string, l *events.Listener) {
	s.listeners.Remove(typ, l)
}

// DispatchEvent runs the root's listeners. Bubbling, composed events continue
// on the host.
func (s *ShadowRoot) DispatchEvent(ev *events.Event) bool {
	s.listeners.Dispatch(ev)
	if ev.Bubbles && ev.Composed {
		s.host.DispatchEvent(ev)
	}
	return !ev.DefaultPrevented()
}

// Package element turns a component of a declarative rendering framework into
// a custom element.
//
// A Class is the custom element "class" produced for one component. Each
// instance (Element) keeps a property table in front of the host element: keys
// declared by the component's schema look present before they are written, and
// the first write of any unknown key synthesizes a reactive cell that renders
// the component again on every later write. Rendering starts once the platform
// reports the element as connected.
package element

import (
	"sort"

	"github.com/vcrobe/nojs-wc/dom"
	"github.com/vcrobe/nojs-wc/events"
)

// Options configure a Class. They are resolved once, at construction.
type Options struct {
	// Shadow routes rendered content into an open shadow root instead of the
	// element's own children.
	Shadow bool `yaml:"shadow" json:"shadow"`
	// CSS is the stylesheet reference. It only has an effect together with Shadow.
	CSS string `yaml:"css" json:"css"`
	// EmbeddCSS inlines Style in a <style> element instead of linking CSS.
	EmbeddCSS bool `yaml:"embeddCss" json:"embeddCss"`
	// Style is the stylesheet text inlined when EmbeddCSS is set.
	Style string `yaml:"-" json:"-"`
}

// PropType describes one declared property. The adapter only uses the
// property names; the rest is informational.
type PropType struct {
	Kind     string
	Required bool
}

// PropTypes is a component's property schema, keyed by property name.
type PropTypes map[string]PropType

// Declarer is implemented by components exposing a property schema.
type Declarer interface {
	PropTypes() PropTypes
}

// Framework is the rendering framework the wrapped component belongs to.
type Framework interface {
	// CreateElement binds component and data into an opaque render descriptor.
	CreateElement(component any, data map[string]any) (any, error)
	// Render mounts descriptor into target and returns a render handle.
	Render(descriptor any, target dom.Container) (any, error)
}

// Class is the custom element class generated for a component.
type Class struct {
	name      string
	component any
	framework Framework
	options   Options
	schema    PropTypes
	observed  []string
	events    *events.Channel
}

// NewClass wraps component, rendered through framework, into a custom element class.
func NewClass(component any, framework Framework, opts Options) *Class {
	c := &Class{
		component: component,
		framework: framework,
		options:   opts,
		events:    &events.Channel{},
	}
	if d, ok := component.(Declarer); ok {
		c.schema = d.PropTypes()
	}
	for name := range c.schema {
		c.observed = append(c.observed, name)
	}
	sort.Strings(c.observed)
	return c
}

// Name returns the tag name the class was defined under, if any.
func (c *Class) Name() string { return c.name }

// Component returns the wrapped component.
func (c *Class) Component() any { return c.component }

// Options returns the class configuration.
func (c *Class) Options() Options { return c.options }

// ObservedAttributes lists the attribute names the platform must report
// changes for: the declared property names, sorted. Empty without a schema.
func (c *Class) ObservedAttributes() []string {
	return append([]string(nil), c.observed...)
}

// EventHandling returns the event channel shared by every instance of the
// class. It is rebound on each render to the container that hosts the content.
func (c *Class) EventHandling() *events.Channel {
	return c.events
}

// Declares reports whether key is part of the component's schema.
func (c *Class) Declares(key string) bool {
	_, ok := c.schema[key]
	return ok
}

// New runs the construction step for a new instance on host. The shadow root,
// when configured, is attached here, before any render.
func (c *Class) New(host dom.Host) *Element {
	if c.options.Shadow {
		host.AttachShadow()
	}
	return &Element{
		class:       c,
		host:        host,
		props:       make(map[string]*property),
		renderAdded: make(map[string]struct{}),
	}
}

// hostKeys are the members every custom element inherits from the platform
// (Node, Element, HTMLElement, the global event handlers and the custom
// element callbacks). Writing one creates a plain property instead of a
// reactive cell, as it would on the browser prototype chain.
var hostKeys = newKeySet(
	// Node
	[]string{
		"addEventListener", "appendChild", "baseURI", "childNodes", "cloneNode",
		"compareDocumentPosition", "contains", "dispatchEvent", "firstChild",
		"getRootNode", "hasChildNodes", "insertBefore", "isConnected",
		"isDefaultNamespace", "isEqualNode", "isSameNode", "lastChild",
		"lookupNamespaceURI", "lookupPrefix", "nextSibling", "nodeName", "nodeType",
		"nodeValue", "normalize", "ownerDocument", "parentElement", "parentNode",
		"previousSibling", "removeChild", "removeEventListener", "replaceChild",
		"textContent",
	},
	// Element
	[]string{
		"after", "animate", "append", "ariaAtomic", "ariaBusy", "ariaChecked",
		"ariaCurrent", "ariaDescription", "ariaDisabled", "ariaExpanded", "ariaHidden",
		"ariaLabel", "ariaLevel", "ariaLive", "ariaPressed", "ariaReadOnly",
		"ariaRequired", "ariaSelected", "assignedSlot", "attachShadow", "attributes",
		"before", "checkVisibility", "childElementCount", "children", "classList",
		"className", "clientHeight", "clientLeft", "clientTop", "clientWidth",
		"closest", "firstElementChild", "getAnimations", "getAttribute",
		"getAttributeNS", "getAttributeNames", "getAttributeNode",
		"getBoundingClientRect", "getClientRects", "getElementsByClassName",
		"getElementsByTagName", "getElementsByTagNameNS", "hasAttribute",
		"hasAttributeNS", "hasAttributes", "hasPointerCapture", "id", "innerHTML",
		"insertAdjacentElement", "insertAdjacentHTML", "insertAdjacentText",
		"lastElementChild", "localName", "matches", "namespaceURI",
		"nextElementSibling", "outerHTML", "part", "prefix", "prepend",
		"previousElementSibling", "querySelector", "querySelectorAll",
		"releasePointerCapture", "remove", "removeAttribute", "removeAttributeNS",
		"removeAttributeNode", "replaceChildren", "replaceWith", "requestFullscreen",
		"requestPointerLock", "role", "scroll", "scrollBy", "scrollHeight",
		"scrollIntoView", "scrollLeft", "scrollTo", "scrollTop", "scrollWidth",
		"setAttribute", "setAttributeNS", "setAttributeNode", "setPointerCapture",
		"shadowRoot", "slot", "tagName", "toggleAttribute",
	},
	// HTMLElement
	[]string{
		"accessKey", "accessKeyLabel", "attachInternals", "attributeStyleMap",
		"autocapitalize", "autofocus", "blur", "click", "contentEditable", "dataset",
		"dir", "draggable", "enterKeyHint", "focus", "hidden", "hidePopover", "inert",
		"innerText", "inputMode", "isContentEditable", "lang", "nonce", "offsetHeight",
		"offsetLeft", "offsetParent", "offsetTop", "offsetWidth", "outerText",
		"popover", "showPopover", "spellcheck", "style", "tabIndex", "title",
		"togglePopover", "translate",
	},
	// custom element
	[]string{
		"adoptedCallback", "attributeChangedCallback", "connectedCallback",
		"constructor", "disconnectedCallback",
	},
	// global event handlers: onclick, onkeydown, ...
	eventHandlers(
		"abort", "animationcancel", "animationend", "animationiteration",
		"animationstart", "auxclick", "beforeinput", "beforetoggle", "blur", "cancel",
		"canplay", "canplaythrough", "change", "click", "close", "contextmenu", "copy",
		"cuechange", "cut", "dblclick", "drag", "dragend", "dragenter", "dragleave",
		"dragover", "dragstart", "drop", "durationchange", "emptied", "ended", "error",
		"focus", "focusin", "focusout", "formdata", "fullscreenchange",
		"fullscreenerror", "gotpointercapture", "input", "invalid", "keydown",
		"keypress", "keyup", "load", "loadeddata", "loadedmetadata", "loadstart",
		"lostpointercapture", "mousedown", "mouseenter", "mouseleave", "mousemove",
		"mouseout", "mouseover", "mouseup", "paste", "pause", "play", "playing",
		"pointercancel", "pointerdown", "pointerenter", "pointerleave", "pointermove",
		"pointerout", "pointerover", "pointerup", "progress", "ratechange", "reset",
		"resize", "scroll", "scrollend", "securitypolicyviolation", "seeked",
		"seeking", "select", "selectionchange", "selectstart", "slotchange", "stalled",
		"submit", "suspend", "timeupdate", "toggle", "touchcancel", "touchend",
		"touchmove", "touchstart", "transitioncancel", "transitionend",
		"transitionrun", "transitionstart", "volumechange", "waiting", "wheel",
	),
)

func newKeySet(groups ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, g := range groups {
		for _, k := range g {
			set[k] = struct{}{}
		}
	}
	return set
}

// eventHandlers returns the on<type> property names of the given event types.
func eventHandlers(types ...string) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = "on" + t
	}
	return names
}

func inPrototype(key string) bool {
	_, ok := hostKeys[key]
	return ok
}

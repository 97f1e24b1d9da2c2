package element

import (
	"github.com/pkg/errors"

	"github.com/vcrobe/nojs-wc/dom"
)

// stylesheetAttr tags inline <style> nodes with the CSS reference they were
// created for, so that later renders find them.
const stylesheetAttr = "data-stylesheet"

// Element is one instance of a Class, mounted on a host element.
type Element struct {
	class *Class
	host  dom.Host

	props       map[string]*property
	order       []string
	renderAdded map[string]struct{}

	shouldRender bool
	rendering    bool
	handle       any
	stats        Stats
	cellErr      error // result of the render the last cell write triggered
}

// Stats counts render calls. Requested includes calls made before the element
// was connected, which do nothing.
type Stats struct {
	Requested int
	Performed int
}

// Class returns the class the element was constructed from.
func (e *Element) Class() *Class { return e.class }

// Host returns the platform element.
func (e *Element) Host() dom.Host { return e.host }

// ShouldRender reports whether the element has been connected.
func (e *Element) ShouldRender() bool { return e.shouldRender }

// Rendering reports whether a render pass is in progress.
func (e *Element) Rendering() bool { return e.rendering }

// Handle returns what the framework returned from the last render pass.
func (e *Element) Handle() any { return e.handle }

// Stats returns the render counters.
func (e *Element) Stats() Stats { return e.stats }

// Container returns where content is rendered: the shadow root in shadow
// mode, the host element otherwise.
func (e *Element) Container() dom.Container {
	if e.class.options.Shadow {
		if sr := e.host.ShadowRoot(); sr != nil {
			return sr
		}
		return e.host.AttachShadow()
	}
	return e.host
}

// ConnectedCallback is called by the platform when the element joins the
// document. From then on every render request produces a render pass.
func (e *Element) ConnectedCallback() error {
	e.shouldRender = true
	return e.Render()
}

// AttributeChangedCallback mirrors an observed attribute onto the property of
// the same name. The raw string is assigned as is.
func (e *Element) AttributeChangedCallback(name, oldValue, newValue string) error {
	if !e.class.Declares(name) {
		return nil
	}
	return e.Set(name, newValue)
}

// Render performs a render pass: it gathers the enumerable own properties
// (minus render-added ones), hands them to the framework together with the
// container, and stores the returned handle. Before the element is connected
// it does nothing.
//
// While the framework runs, writes to unknown keys are recorded as
// render-added instead of becoming reactive cells. Writes to existing cells
// render again, depth-first.
func (e *Element) Render() error {
	e.stats.Requested++
	if !e.shouldRender {
		return nil
	}

	data := e.gather()

	prev := e.rendering
	e.rendering = true
	defer func() { e.rendering = prev }()

	container := e.Container()
	e.class.events.Bind(container)

	descriptor, err := e.class.framework.CreateElement(e.class.component, data)
	if err != nil {
		return errors.Wrapf(err, "cannot create element for %s", e.describe())
	}
	handle, err := e.class.framework.Render(descriptor, container)
	if err != nil {
		return errors.Wrapf(err, "cannot render %s", e.describe())
	}
	e.handle = handle
	e.stats.Performed++

	e.injectStylesheet(container)
	return nil
}

func (e *Element) gather() map[string]any {
	data := make(map[string]any, len(e.order))
	for _, k := range e.Keys() {
		if e.isRenderAdded(k) {
			continue
		}
		data[k] = e.props[k].get()
	}
	return data
}

func (e *Element) describe() string {
	if e.class.name != "" {
		return "<" + e.class.name + ">"
	}
	return "<" + e.host.TagName() + ">"
}

// injectStylesheet appends the configured stylesheet to a shadow container.
// A stylesheet already present in the container is not added again, so
// repeated renders do not pile up nodes; a framework that clears the
// container gets it back on the next pass.
func (e *Element) injectStylesheet(container dom.Container) {
	opts := e.class.options
	if opts.CSS == "" || !opts.Shadow {
		return
	}
	if _, ok := dom.FindChild(container, opts.isStylesheet); ok {
		return
	}

	doc := container.OwnerDocument()
	var node dom.Element
	if opts.EmbeddCSS {
		node = doc.CreateElement("style")
		node.SetAttribute(stylesheetAttr, opts.CSS)
		node.SetTextContent(opts.Style)
	} else {
		node = doc.CreateElement("link")
		node.SetAttribute("rel", "stylesheet")
		node.SetAttribute("type", "text/css")
		node.SetAttribute("href", opts.CSS)
	}
	container.AppendChild(node)
}

func (o Options) isStylesheet(el dom.Element) bool {
	switch el.TagName() {
	case "style":
		return dom.HasAttribute(el, stylesheetAttr, o.CSS)
	case "link":
		return dom.HasAttribute(el, "rel", "stylesheet") && dom.HasAttribute(el, "href", o.CSS)
	}
	return false
}

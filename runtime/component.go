package runtime

import "github.com/vcrobe/nojs-wc/vdom"

// Component is a nojs component. Wrapped into a custom element, it is
// instantiated once per element container and rendered on every render pass
// the element schedules, after its properties have been applied.
type Component interface {
	// Render returns the component's tree for the current state. Child
	// components are rendered through r.RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer attaches the renderer owning the component, which makes
	// StateHasChanged and Navigate work. It is called before every render.
	SetRenderer(r Renderer)
}

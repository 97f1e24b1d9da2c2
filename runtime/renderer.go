package runtime

import "github.com/vcrobe/nojs-wc/vdom"

// Renderer is what a component sees of the renderer that owns it. RendererImpl
// patches a DOM container; the in-memory TestRenderer only keeps the tree.
type Renderer interface {
	// RenderChild renders a child component. Instances are preserved per key
	// across renders of the same root.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender renders the root component again. StateHasChanged ends up here,
	// so state changes made inside a custom element bypass the element's own
	// render pass and its property table.
	ReRender()

	// Navigate asks the configured NavigationManager to change location.
	Navigate(path string) error
}

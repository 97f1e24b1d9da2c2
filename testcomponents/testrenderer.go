// Package testcomponents holds test harnesses for components that run
// without a browser or a DOM host.
package testcomponents

import (
	"github.com/vcrobe/nojs-wc/runtime"
	"github.com/vcrobe/nojs-wc/vdom"
)

// TestRenderer implements runtime.Renderer in memory. It keeps the last VDOM
// tree a component produced so that tests can inspect it after
// StateHasChanged, and records navigation requests instead of performing them.
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	renders     int
	navigations []string
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to comp.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{component: comp}
	comp.SetRenderer(r)
	return r
}

// RenderRoot renders the component with props, the way a custom element
// render pass hands them over, and returns the resulting tree.
func (r *TestRenderer) RenderRoot(props map[string]any) *vdom.VNode {
	if props != nil {
		runtime.ApplyProps(r.component, props)
	}
	r.ReRender()
	return r.currentVDOM
}

// ReRender is what StateHasChanged ends up calling.
func (r *TestRenderer) ReRender() {
	r.currentVDOM = r.component.Render(r)
	r.renders++
}

// CurrentVDOM returns the most recently rendered tree.
func (r *TestRenderer) CurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Renders returns how many times the component rendered.
func (r *TestRenderer) Renders() int {
	return r.renders
}

// RenderChild renders child in place; instances are not preserved.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	child.SetRenderer(r)
	return child.Render(r)
}

// Navigate records path.
func (r *TestRenderer) Navigate(path string) error {
	r.navigations = append(r.navigations, path)
	return nil
}

// Navigations returns the recorded navigation paths.
func (r *TestRenderer) Navigations() []string {
	return r.navigations
}

//go:build !wasm && !dev

package runtime

import (
	"testing"

	"github.com/vcrobe/nojs-wc/dom/htmldom"
	"github.com/vcrobe/nojs-wc/vdom"
)

type fragile struct {
	ComponentBase
}

func (f *fragile) OnInit() { panic("init failed") }

func (f *fragile) Render(r Renderer) *vdom.VNode {
	return vdom.Paragraph("still here", nil)
}

// TestRenderRoot_RecoversLifecyclePanics verifies a panicking OnInit is logged
// and the component still renders.
func TestRenderRoot_RecoversLifecyclePanics(t *testing.T) {
	doc := htmldom.NewDocument()
	r := NewRenderer(nil, doc.Body())
	r.SetCurrentComponent(&fragile{})

	r.RenderRoot()

	if r.Root() == nil || r.Root().TextContent() != "still here" {
		t.Errorf("Expected the component to render after a recovered panic")
	}
}

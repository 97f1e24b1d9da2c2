package appcomponents

import (
	"fmt"

	"github.com/vcrobe/nojs-wc/runtime"
	"github.com/vcrobe/nojs-wc/vdom"
)

// Greeting greets a person. Attributes arrive as strings, so Age is only set
// when the age property is assigned a string.
type Greeting struct {
	runtime.ComponentBase

	Name string `prop:"name,required"`
	Age  string `prop:"age"`
}

func (g *Greeting) Render(r runtime.Renderer) *vdom.VNode {
	name := g.Name
	if name == "" {
		name = "stranger"
	}
	children := []*vdom.VNode{
		vdom.Text("h2", fmt.Sprintf("Hello, %s!", name), map[string]any{"class": "greeting"}),
	}
	if g.Age != "" {
		children = append(children, vdom.Paragraph("Age: "+g.Age, map[string]any{"class": "age"}))
	}
	children = append(children, vdom.Slot(""))
	return vdom.Div(map[string]any{"class": "greeting-card"}, children...)
}

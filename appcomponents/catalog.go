// Package appcomponents holds the demo components shipped as custom elements.
package appcomponents

import "github.com/vcrobe/nojs-wc/runtime"

// Catalog maps manifest component names to definitions.
type Catalog map[string]*runtime.Definition

// Lookup implements manifest.Catalog.
func (c Catalog) Lookup(name string) (any, bool) {
	d, ok := c[name]
	if !ok {
		return nil, false
	}
	return d, true
}

// Default returns the demo components.
func Default() Catalog {
	return Catalog{
		"Greeting": runtime.Define("Greeting", func() runtime.Component { return &Greeting{} }),
		"Counter":  runtime.Define("Counter", func() runtime.Component { return &Counter{} }),
	}
}

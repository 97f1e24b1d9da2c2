//go:build js && wasm

package main

import (
	"embed"

	"github.com/vcrobe/nojs-wc/appcomponents"
	"github.com/vcrobe/nojs-wc/console"
	"github.com/vcrobe/nojs-wc/dom/jsdom"
	"github.com/vcrobe/nojs-wc/element"
	"github.com/vcrobe/nojs-wc/manifest"
	"github.com/vcrobe/nojs-wc/runtime"
)

//go:embed elements.yaml styles
var assets embed.FS

func main() {
	// 1. Read the element manifest embedded in the binary
	data, err := assets.ReadFile(manifest.FileName)
	if err != nil {
		panic("Error reading " + manifest.FileName + ": " + err.Error())
	}
	m, err := manifest.Parse(data)
	if err != nil {
		panic("Error parsing manifest: " + err.Error())
	}

	// 2. Resolve defaults and load embedded stylesheets
	entries, err := m.Resolve(assets)
	if err != nil {
		panic("Error resolving manifest: " + err.Error())
	}

	// 3. Define every element in the browser registry, rendered by nojs
	catalog := appcomponents.Default()
	framework := runtime.NewFramework(nil)
	registry := element.NewRegistry()
	for _, e := range entries {
		component, ok := catalog.Lookup(e.Component)
		if !ok {
			console.Error("Unknown component", e.Component, "for", e.Tag)
			continue
		}
		if _, err := jsdom.Define(registry, e.Tag, element.NewClass(component, framework, e.Options)); err != nil {
			console.Error("Cannot define", e.Tag+":", err)
			continue
		}
		console.Log("Defined", e.Tag)
	}

	// Keep the Go program running
	select {}
}

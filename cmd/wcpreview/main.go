//go:build !(js && wasm)

package main

import "github.com/vcrobe/nojs-wc/cmd/wcpreview/cmd"

func main() {
	cmd.Execute()
}

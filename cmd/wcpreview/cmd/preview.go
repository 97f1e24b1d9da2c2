//go:build !(js && wasm)

package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/yosssi/gohtml"

	"github.com/vcrobe/nojs-wc/appcomponents"
	"github.com/vcrobe/nojs-wc/dom/htmldom"
	"github.com/vcrobe/nojs-wc/element"
	"github.com/vcrobe/nojs-wc/manifest"
	"github.com/vcrobe/nojs-wc/runtime"
)

// request describes one preview.
type request struct {
	Tag    string
	Attrs  []keyValue // applied before connection, like parsed markup
	Props  []keyValue // assigned after connection, like a script would
	Pretty bool
}

type keyValue struct {
	Key   string
	Value string
}

func parseKeyValues(pairs []string) ([]keyValue, error) {
	out := make([]keyValue, 0, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("expected key=value, got %q", p)
		}
		out = append(out, keyValue{Key: k, Value: v})
	}
	return out, nil
}

// loadRegistry defines every element of the manifest at path.
func loadRegistry(path string) (*element.Registry, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	entries, err := m.Resolve(os.DirFS(filepath.Dir(path)))
	if err != nil {
		return nil, err
	}
	reg := element.NewRegistry()
	if _, err := manifest.Define(reg, runtime.NewFramework(nil), appcomponents.Default(), entries); err != nil {
		return nil, err
	}
	return reg, nil
}

// preview renders req.Tag into a fresh document and writes the HTML to w.
func preview(w io.Writer, reg *element.Registry, req request) error {
	doc := htmldom.NewDocument()
	host := doc.CreateHost(req.Tag)
	el, err := reg.Create(req.Tag, host)
	if err != nil {
		return err
	}

	for _, a := range req.Attrs {
		old, _ := host.GetAttribute(a.Key)
		host.SetAttribute(a.Key, a.Value)
		if err := el.AttributeChangedCallback(a.Key, old, a.Value); err != nil {
			return errors.Wrapf(err, "attribute %s", a.Key)
		}
	}

	doc.Body().AppendChild(host)
	if err := el.ConnectedCallback(); err != nil {
		return err
	}

	for _, p := range req.Props {
		if err := el.Set(p.Key, p.Value); err != nil {
			return errors.Wrapf(err, "property %s", p.Key)
		}
	}

	out := doc.String()
	if req.Pretty {
		out = gohtml.Format(out)
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}

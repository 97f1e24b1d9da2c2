package manifest

import (
	"github.com/pkg/errors"

	"github.com/vcrobe/nojs-wc/element"
)

var ErrUnknownComponent = errors.New("unknown component")

// Catalog looks up components by the name used in the manifest.
type Catalog interface {
	Lookup(name string) (any, bool)
}

// Define creates a class for every resolved entry and defines it in reg.
// It stops at the first failure; classes defined before it stay defined.
func Define(reg *element.Registry, fw element.Framework, catalog Catalog, entries []Resolved) ([]*element.Class, error) {
	classes := make([]*element.Class, 0, len(entries))
	for _, e := range entries {
		component, ok := catalog.Lookup(e.Component)
		if !ok {
			return classes, errors.Wrapf(ErrUnknownComponent, "%s: %q", e.Tag, e.Component)
		}
		c := element.NewClass(component, fw, e.Options)
		if err := reg.Define(e.Tag, c); err != nil {
			return classes, err
		}
		classes = append(classes, c)
	}
	return classes, nil
}

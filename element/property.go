package element

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/vcrobe/nojs-wc/signals"
)

// InternalPrefix marks reserved keys. They are stored as plain, non-enumerable
// properties and never take part in rendering.
const InternalPrefix = "@@"

// IsInternal reports whether key is reserved.
func IsInternal(key string) bool {
	return strings.HasPrefix(key, InternalPrefix)
}

// Origin records how a property came to exist on an instance.
type Origin int

const (
	// OriginNone is an unknown key.
	OriginNone Origin = iota
	// OriginDeclared is a schema key that has not been written yet.
	OriginDeclared
	// OriginExpando is a reactive cell synthesized on first write.
	OriginExpando
	// OriginRenderAdded is a key first written while a render was in progress.
	// It stays a plain property and is left out of gathered render data.
	OriginRenderAdded
	// OriginData is a plain property shadowing a host key.
	OriginData
	// OriginInternal is a reserved key.
	OriginInternal
)

func (o Origin) String() string {
	switch o {
	case OriginDeclared:
		return "declared"
	case OriginExpando:
		return "expando"
	case OriginRenderAdded:
		return "render-added"
	case OriginData:
		return "data"
	case OriginInternal:
		return "internal"
	default:
		return "none"
	}
}

// PropertyDescriptor describes an own (or declared) property. Accessor
// descriptors carry Get and Set; data descriptors carry Value and Writable.
type PropertyDescriptor struct {
	Configurable bool
	Enumerable   bool
	Writable     bool
	Value        any
	Get          func() any
	Set          func(any) error
}

// IsAccessor reports whether d describes a reactive cell.
func (d PropertyDescriptor) IsAccessor() bool {
	return d.Get != nil
}

// property is one entry of the table. Reactive cells keep their value in a
// signal subscribed to the element's render; every other origin uses value.
type property struct {
	value  any
	origin Origin
	cell   *signals.Signal[any]
}

func (p *property) get() any {
	if p.cell != nil {
		return p.cell.Get()
	}
	return p.value
}

// Has reports whether key is an own property, declared by the schema, or
// inherited from the host element.
func (e *Element) Has(key string) bool {
	if _, ok := e.props[key]; ok {
		return true
	}
	return e.class.Declares(key) || inPrototype(key)
}

// Get returns the value of an own property.
func (e *Element) Get(key string) (any, bool) {
	p, ok := e.props[key]
	if !ok {
		return nil, false
	}
	return p.get(), true
}

// Set assigns value to key. The value is always stored; a non-nil error means
// the render pass the write triggered failed.
//
// Own reactive cells store and render. Any other own property is assigned in
// place. A key without an own property goes through interception: internal
// keys, keys first written during a render, and host keys become plain
// properties, every other key becomes a reactive cell.
func (e *Element) Set(key string, value any) error {
	if p, ok := e.props[key]; ok {
		if p.cell != nil {
			p.cell.Set(value)
			return e.takeCellErr()
		}
		p.value = value
		return nil
	}

	if e.rendering {
		e.renderAdded[key] = struct{}{}
	}

	switch {
	case IsInternal(key):
		e.define(key, value, OriginInternal)
	case e.isRenderAdded(key):
		e.define(key, value, OriginRenderAdded)
	case inPrototype(key):
		e.define(key, value, OriginData)
	default:
		return e.DefineReactiveProperty(key, value)
	}
	return nil
}

// DefineReactiveProperty installs a reactive cell for key holding value and
// renders once, so the first write is observable. It only installs cells on
// keys without an own property: cells are not configurable, and plain
// properties stay plain.
func (e *Element) DefineReactiveProperty(key string, value any) error {
	if p, ok := e.props[key]; ok {
		return errors.Wrapf(ErrNotConfigurable, "cannot redefine %s property %q", p.origin, key)
	}
	if IsInternal(key) {
		return errors.Wrapf(ErrNotConfigurable, "cannot make internal property %q reactive", key)
	}
	cell := signals.NewSignal[any](value)
	cell.Subscribe(func() { e.cellErr = e.Render() })
	e.order = append(e.order, key)
	e.props[key] = &property{origin: OriginExpando, cell: cell}
	return e.Render()
}

// takeCellErr returns and clears the error of the render a cell write ran.
func (e *Element) takeCellErr() error {
	err := e.cellErr
	e.cellErr = nil
	return err
}

func (e *Element) define(key string, value any, origin Origin) {
	if _, ok := e.props[key]; !ok {
		e.order = append(e.order, key)
	}
	e.props[key] = &property{value: value, origin: origin}
}

func (e *Element) isRenderAdded(key string) bool {
	_, ok := e.renderAdded[key]
	return ok
}

// Origin reports how key came to exist on the instance.
func (e *Element) Origin(key string) Origin {
	if p, ok := e.props[key]; ok {
		return p.origin
	}
	if e.class.Declares(key) {
		return OriginDeclared
	}
	return OriginNone
}

// OwnPropertyDescriptor returns the descriptor of an own property unchanged.
// Reactive cells are enumerable accessors and are not configurable, matching
// DefineReactiveProperty, which refuses to redefine them. Plain properties are
// configurable data descriptors. A declared but unset key gets a fabricated
// configurable, enumerable, writable descriptor with a nil value, so schema
// introspection sees a slot rather than a missing key.
func (e *Element) OwnPropertyDescriptor(key string) (PropertyDescriptor, bool) {
	if p, ok := e.props[key]; ok {
		if p.cell != nil {
			return PropertyDescriptor{
				Enumerable: true,
				Get:        p.cell.Get,
				Set:        func(v any) error { return e.Set(key, v) },
			}, true
		}
		return PropertyDescriptor{
			Configurable: true,
			Enumerable:   p.origin != OriginInternal,
			Writable:     true,
			Value:        p.value,
		}, true
	}
	if e.class.Declares(key) {
		return PropertyDescriptor{Configurable: true, Enumerable: true, Writable: true}, true
	}
	return PropertyDescriptor{}, false
}

// Keys returns the own enumerable keys in creation order.
func (e *Element) Keys() []string {
	keys := make([]string, 0, len(e.order))
	for _, k := range e.order {
		if e.props[k].origin != OriginInternal {
			keys = append(keys, k)
		}
	}
	return keys
}

// RenderAdded returns the keys first written while a render was in progress.
func (e *Element) RenderAdded() []string {
	var keys []string
	for _, k := range e.order {
		if e.isRenderAdded(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

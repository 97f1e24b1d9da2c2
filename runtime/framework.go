package runtime

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/vcrobe/nojs-wc/console"
	"github.com/vcrobe/nojs-wc/dom"
	"github.com/vcrobe/nojs-wc/element"
)

var (
	ErrNotComponent  = errors.New("not a nojs component")
	ErrBadDescriptor = errors.New("not a nojs render descriptor")
)

// Compile-time assertion to ensure Framework can render custom elements.
var _ element.Framework = (*Framework)(nil)

// Descriptor is what CreateElement returns: a component bound to the
// properties of one render pass.
type Descriptor struct {
	Definition *Definition
	Props      map[string]any
}

// Framework binds nojs to the custom element adapter. It keeps one renderer,
// and so one component instance, per container.
type Framework struct {
	navManager NavigationManager
	mounts     map[dom.Container]*RendererImpl
}

// NewFramework returns a framework whose components navigate through
// navManager, which may be nil.
func NewFramework(navManager NavigationManager) *Framework {
	return &Framework{
		navManager: navManager,
		mounts:     make(map[dom.Container]*RendererImpl),
	}
}

// CreateElement binds data to the component described by component, which
// must be a *Definition.
func (f *Framework) CreateElement(component any, data map[string]any) (any, error) {
	def, ok := component.(*Definition)
	if !ok || def.New == nil {
		return nil, errors.Wrapf(ErrNotComponent, "%T", component)
	}
	return &Descriptor{Definition: def, Props: data}, nil
}

// Render mounts the descriptor's component into target, creating the
// instance on first use, applies the properties and renders. The returned
// handle is the *RendererImpl owning target.
func (f *Framework) Render(descriptor any, target dom.Container) (any, error) {
	d, ok := descriptor.(*Descriptor)
	if !ok {
		return nil, errors.Wrapf(ErrBadDescriptor, "%T", descriptor)
	}

	r, ok := f.mounts[target]
	if !ok {
		r = NewRenderer(f.navManager, target)
		f.mounts[target] = r
	}
	if r.CurrentComponent() == nil {
		comp := d.Definition.New()
		if comp == nil {
			return nil, errors.Wrapf(ErrNotComponent, "%s factory returned nil", d.Definition.Name)
		}
		r.SetCurrentComponent(comp)
	}

	ApplyProps(r.CurrentComponent(), d.Props)
	r.RenderRoot()
	return r, nil
}

// Mounted returns the renderer owning target, if any.
func (f *Framework) Mounted(target dom.Container) (*RendererImpl, bool) {
	r, ok := f.mounts[target]
	return r, ok
}

// Unmount tears down whatever was rendered into target.
func (f *Framework) Unmount(target dom.Container) {
	r, ok := f.mounts[target]
	if !ok {
		return
	}
	r.Unmount()
	delete(f.mounts, target)
}

// ApplyProps hands props to comp. A PropertySetter receives them as is.
// Otherwise each prop is assigned to the field tagged with its name when the
// value's type is assignable to the field; nothing is converted. A nil value
// resets the field to its zero value. Props without a field are ignored.
func ApplyProps(comp Component, props map[string]any) {
	if setter, ok := comp.(PropertySetter); ok {
		setter.SetProperties(props)
		return
	}

	v := reflect.ValueOf(comp)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()
	for name, pf := range propFields(v.Type()) {
		value, ok := props[name]
		if !ok {
			continue
		}
		field := v.FieldByIndex(pf.index)
		if !field.CanSet() {
			continue
		}
		if value == nil {
			field.SetZero()
			continue
		}
		rv := reflect.ValueOf(value)
		if !rv.Type().AssignableTo(field.Type()) {
			console.Warn("prop", name, "expects", field.Type().String(), "got", rv.Type().String()+"; ignored")
			continue
		}
		field.Set(rv)
	}
}

package runtime

import (
	"reflect"
	"strings"

	"github.com/vcrobe/nojs-wc/element"
)

// Compile-time assertion: a Definition carries the property schema.
var _ element.Declarer = (*Definition)(nil)

// Definition describes a component type that can be wrapped into a custom
// element. Every mount gets its own instance from New.
//
// Exported struct fields tagged `prop:"name"` become declared properties:
//
//	type Greeting struct {
//	    runtime.ComponentBase
//	    Name string `prop:"name,required"`
//	    Age  int    `prop:"age"`
//	}
type Definition struct {
	Name  string
	New   func() Component
	props element.PropTypes
}

// Define describes the component built by factory. The schema is read from a
// sample instance: from its PropTypes method when it implements
// element.Declarer, from prop tags otherwise.
func Define(name string, factory func() Component) *Definition {
	d := &Definition{Name: name, New: factory}
	sample := factory()
	if decl, ok := sample.(element.Declarer); ok {
		d.props = decl.PropTypes()
	} else {
		d.props = make(element.PropTypes)
		for prop, f := range propFields(reflect.TypeOf(sample)) {
			d.props[prop] = element.PropType{Kind: f.kind, Required: f.required}
		}
	}
	return d
}

// PropTypes returns the declared properties.
func (d *Definition) PropTypes() element.PropTypes {
	return d.props
}

type propField struct {
	index    []int
	kind     string
	required bool
}

// propFields maps prop names to the tagged fields of the struct t points to.
func propFields(t reflect.Type) map[string]propField {
	fields := make(map[string]propField)
	if t == nil {
		return fields
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fields
	}
	for _, f := range reflect.VisibleFields(t) {
		tag, ok := f.Tag.Lookup("prop")
		if !ok || !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		fields[name] = propField{
			index:    f.Index,
			kind:     f.Type.Kind().String(),
			required: opts == "required",
		}
	}
	return fields
}

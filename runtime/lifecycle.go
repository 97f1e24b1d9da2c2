package runtime

// Initializer is implemented by components that need setup before their
// first render. OnInit is called once per instance.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that react to new
// properties. OnPropertiesSet is called before every render.
type ParameterReceiver interface {
	OnPropertiesSet()
}

// Cleaner is implemented by components holding resources. OnDestroy is
// called when the component leaves the tree.
type Cleaner interface {
	OnDestroy()
}

// PropUpdater is implemented by child components that copy props from a
// freshly constructed instance into the preserved one.
type PropUpdater interface {
	ApplyProps(source Component)
}

// PropertySetter is implemented by components that take custom element
// properties themselves instead of through prop struct tags.
type PropertySetter interface {
	SetProperties(props map[string]any)
}

// NavigationManager performs client-side navigation.
type NavigationManager interface {
	Navigate(path string) error
}

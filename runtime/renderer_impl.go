package runtime

import (
	"fmt"

	"github.com/vcrobe/nojs-wc/dom"
	"github.com/vcrobe/nojs-wc/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

const rootKey = "__root__"

// RendererImpl is the concrete implementation of the Renderer interface.
// It owns one root component mounted into one container and handles the
// rendering lifecycle of the component tree below it.
type RendererImpl struct {
	instances        map[string]Component
	initialized      map[string]bool   // Track which components have been initialized
	activeKeys       map[string]bool   // Track which components are active in the current render
	currentComponent Component         // The root component
	navManager       NavigationManager // Optional: router for client-side navigation
	container        dom.Container
	root             dom.Element // DOM element built from prevVDOM
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
	renders          int
}

// NewRenderer creates a renderer mounting into container.
// If navManager is nil, Navigate reports an error.
func NewRenderer(navManager NavigationManager, container dom.Container) *RendererImpl {
	return &RendererImpl{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		navManager:  navManager,
		container:   container,
	}
}

// SetCurrentComponent sets the root component. A different component resets
// the root lifecycle, so the next render calls OnInit again.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	if r.currentComponent != comp {
		delete(r.initialized, rootKey)
	}
	r.currentComponent = comp
}

// CurrentComponent returns the root component.
func (r *RendererImpl) CurrentComponent() Component {
	return r.currentComponent
}

// Container returns the container the renderer mounts into.
func (r *RendererImpl) Container() dom.Container {
	return r.container
}

// Root returns the DOM element currently representing the root component.
func (r *RendererImpl) Root() dom.Element {
	return r.root
}

// VDOM returns the tree produced by the last render.
func (r *RendererImpl) VDOM() *vdom.VNode {
	return r.prevVDOM
}

// Renders returns how many root renders have run.
func (r *RendererImpl) Renders() int {
	return r.renders
}

// RenderRoot renders the root component and patches the container.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}
	// Reset activeKeys for this render cycle
	r.activeKeys = make(map[string]bool)

	// Ensure the component has a reference to the renderer for StateHasChanged and Navigate.
	r.currentComponent.SetRenderer(r)

	if !r.initialized[rootKey] {
		// Call OnInit only once, before first render
		if initializer, ok := r.currentComponent.(Initializer); ok {
			r.callOnInit(initializer, rootKey)
		}
		r.initialized[rootKey] = true
	}

	// Call OnPropertiesSet before every render (including first)
	if paramReceiver, ok := r.currentComponent.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, rootKey)
	}

	newVDOM := r.currentComponent.Render(r)
	r.root = vdom.Patch(r.container, r.root, r.prevVDOM, newVDOM)

	// Store the new VDOM tree for the next render cycle
	r.prevVDOM = newVDOM
	r.renders++

	// Clean up components that were not rendered in this cycle
	r.cleanupUnmountedComponents()
}

// RenderChild is called by component Render code to render a child component.
// It handles the core logic of instance creation and reuse.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	// Mark this component as active in the current render cycle
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	isFirstRender := false

	if !exists {
		// First time seeing this component at this location, so store the new instance.
		instance = childWithProps
		r.instances[key] = instance
		isFirstRender = true
	} else if updater, ok := instance.(PropUpdater); ok {
		// Preserve the existing instance to keep state, apply the new props to it.
		updater.ApplyProps(childWithProps)
	}

	instance.SetRenderer(r)

	if isFirstRender {
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
		r.initialized[key] = true
	}

	if paramReceiver, ok := instance.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, key)
	}

	return instance.Render(r)
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if !r.activeKeys[key] {
			if cleaner, ok := instance.(Cleaner); ok {
				r.callOnDestroy(cleaner, key)
			}
			delete(r.instances, key)
			delete(r.initialized, key)
		}
	}
}

// ReRender patches the container with the root component's current output.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}

// Unmount removes the rendered tree from the container and destroys every component.
func (r *RendererImpl) Unmount() {
	if r.root != nil {
		vdom.Release(r.prevVDOM, r.root)
		r.container.RemoveChild(r.root)
	}
	r.root, r.prevVDOM = nil, nil
	r.activeKeys = make(map[string]bool)
	r.cleanupUnmountedComponents()
	if cleaner, ok := r.currentComponent.(Cleaner); ok {
		r.callOnDestroy(cleaner, rootKey)
	}
	delete(r.initialized, rootKey)
}

// Navigate delegates to the NavigationManager.
// Returns an error if no router is configured.
func (r *RendererImpl) Navigate(path string) error {
	if r.navManager == nil {
		return fmt.Errorf("no router configured for navigation")
	}
	return r.navManager.Navigate(path)
}

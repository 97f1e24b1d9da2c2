//go:build dev

package runtime

// Development builds let lifecycle panics propagate, so a broken component
// fails at the write or lifecycle callback that triggered its render.

func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	initializer.OnInit()
}

func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	receiver.OnPropertiesSet()
}

func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	cleaner.OnDestroy()
}

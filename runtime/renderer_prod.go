//go:build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/nojs-wc/console"
)

// In production mode, lifecycle panics are recovered and logged so that one
// misbehaving component does not take the whole element down.

func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer recoverLifecycle("OnInit", key)
	initializer.OnInit()
}

func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer recoverLifecycle("OnPropertiesSet", key)
	receiver.OnPropertiesSet()
}

func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	defer recoverLifecycle("OnDestroy", key)
	cleaner.OnDestroy()
}

func recoverLifecycle(stage, key string) {
	if rec := recover(); rec != nil {
		console.Error(fmt.Sprintf("%s panic in component %s: %v", stage, key, rec))
	}
}

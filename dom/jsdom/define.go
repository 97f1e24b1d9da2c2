//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-wc/console"
	"github.com/vcrobe/nojs-wc/element"
	"github.com/vcrobe/nojs-wc/events"
)

// shim builds the JavaScript side of a custom element class. The instance
// prototype is a Proxy: string keys the platform prototype does not know are
// read and written through the Go element, so every property write goes
// through element.Element.Set. Symbol keys never reach Go. Once Go turns a key
// into a reactive cell it calls defineCell, which gives the instance an own
// enumerable accessor backed by the same element, so the key shows up in
// Object.keys, hasOwnProperty and getOwnPropertyDescriptor.
const shim = `
var id = Symbol("nojs.element");
bridge.defineCell = function (self, key) {
	Object.defineProperty(self, key, {
		configurable: false,
		enumerable: true,
		get: function () {
			return bridge.get(this[id], key);
		},
		set: function (value) {
			bridge.set(this[id], key, value);
		}
	});
};
return function (name, observed, eventHandling) {
	var C = function () {
		var self = Reflect.construct(HTMLElement, [], new.target);
		self[id] = bridge.construct(self);
		return self;
	};
	var target = Object.create(HTMLElement.prototype);
	target.constructor = C;
	target.connectedCallback = function () {
		bridge.connected(this[id]);
	};
	target.attributeChangedCallback = function (attr, oldValue, newValue) {
		bridge.attributeChanged(this[id], attr, oldValue, newValue);
	};
	C.prototype = new Proxy(target, {
		has: function (t, key) {
			return (typeof key === "string" && bridge.declares(key)) || key in t;
		},
		get: function (t, key, receiver) {
			if (typeof key === "string" && !(key in t) && receiver[id] !== undefined) {
				return bridge.get(receiver[id], key);
			}
			return Reflect.get(t, key, receiver);
		},
		set: function (t, key, value, receiver) {
			if (typeof key === "symbol" || key in t || receiver[id] === undefined) {
				return Reflect.set(t, key, value, receiver);
			}
			bridge.set(receiver[id], key, value);
			return true;
		},
		getOwnPropertyDescriptor: function (t, key) {
			var own = Reflect.getOwnPropertyDescriptor(t, key);
			if (own) {
				return own;
			}
			if (typeof key === "string" && bridge.declares(key)) {
				return { configurable: true, enumerable: true, writable: true, value: undefined };
			}
		}
	});
	C.observedAttributes = observed;
	C.eventHandling = eventHandling;
	customElements.define(name, C);
	return C;
};
`

// bridge connects one JS class to its element.Class.
type bridge struct {
	class     *element.Class
	obj       js.Value
	instances map[int]*instance
	next      int
	funcs     []js.Func
	jsHandles []jsListener
}

// instance is one constructed element and the JS object it backs.
type instance struct {
	el      *element.Element
	self    js.Value
	exposed map[string]struct{}
}

type jsListener struct {
	typ string
	fn  js.Value
	l   *events.Listener
}

// Define registers class under name in reg and in the browser's
// customElements registry. It returns the JS constructor.
func Define(reg *element.Registry, name string, class *element.Class) (js.Value, error) {
	if err := reg.Define(name, class); err != nil {
		return js.Undefined(), err
	}

	b := &bridge{class: class, instances: make(map[int]*instance)}
	obj := js.Global().Get("Object").New()
	b.obj = obj
	obj.Set("construct", b.fn(b.construct))
	obj.Set("connected", b.fn(b.connected))
	obj.Set("attributeChanged", b.fn(b.attributeChanged))
	obj.Set("declares", b.fn(b.declares))
	obj.Set("get", b.fn(b.get))
	obj.Set("set", b.fn(b.set))

	observed := make([]any, 0, len(class.ObservedAttributes()))
	for _, a := range class.ObservedAttributes() {
		observed = append(observed, a)
	}

	factory := js.Global().Get("Function").New("bridge", shim).Invoke(obj)
	ctor := factory.Invoke(name, observed, b.eventHandling())
	return ctor, nil
}

func (b *bridge) fn(f func(args []js.Value) any) js.Func {
	jf := js.FuncOf(func(this js.Value, args []js.Value) any { return f(args) })
	b.funcs = append(b.funcs, jf)
	return jf
}

// TODO: drop instances once a FinalizationRegistry reports the JS element
// collected; until then every constructed element stays referenced.
func (b *bridge) construct(args []js.Value) any {
	host := &Host{Element: Wrap(args[0])}
	b.next++
	b.instances[b.next] = &instance{
		el:      b.class.New(host),
		self:    args[0],
		exposed: make(map[string]struct{}),
	}
	return b.next
}

func (b *bridge) instance(v js.Value) (*instance, bool) {
	if v.Type() != js.TypeNumber {
		return nil, false
	}
	inst, ok := b.instances[v.Int()]
	return inst, ok
}

// expose installs the own accessor for key once it is a reactive cell.
func (b *bridge) expose(inst *instance, key string) {
	if inst.el.Origin(key) != element.OriginExpando {
		return
	}
	if _, ok := inst.exposed[key]; ok {
		return
	}
	inst.exposed[key] = struct{}{}
	b.obj.Call("defineCell", inst.self, key)
}

func (b *bridge) connected(args []js.Value) any {
	inst, ok := b.instance(args[0])
	if !ok {
		return nil
	}
	if err := inst.el.ConnectedCallback(); err != nil {
		console.Error("connectedCallback:", err)
	}
	return nil
}

func (b *bridge) attributeChanged(args []js.Value) any {
	inst, ok := b.instance(args[0])
	if !ok {
		return nil
	}
	name := args[1].String()
	var err error
	if args[3].IsNull() {
		// Removed attribute: the property becomes nil rather than "".
		if b.class.Declares(name) {
			err = inst.el.Set(name, nil)
		}
	} else {
		err = inst.el.AttributeChangedCallback(name, stringOrEmpty(args[2]), args[3].String())
	}
	b.expose(inst, name)
	if err != nil {
		console.Error("attributeChangedCallback:", err)
	}
	return nil
}

func stringOrEmpty(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (b *bridge) declares(args []js.Value) any {
	return b.class.Declares(args[0].String())
}

func (b *bridge) get(args []js.Value) any {
	inst, ok := b.instance(args[0])
	if !ok {
		return js.Undefined()
	}
	v, ok := inst.el.Get(args[1].String())
	if !ok {
		return js.Undefined()
	}
	return toJS(v)
}

func (b *bridge) set(args []js.Value) any {
	inst, ok := b.instance(args[0])
	if !ok {
		return nil
	}
	key := args[1].String()
	err := inst.el.Set(key, fromJS(args[2]))
	b.expose(inst, key)
	if err != nil {
		console.Error("set", key+":", err)
	}
	return nil
}

// eventHandling exposes the class event channel to JavaScript. Listeners are
// plain JS functions receiving the dispatched event.
func (b *bridge) eventHandling() js.Value {
	ch := b.class.EventHandling()
	obj := js.Global().Get("Object").New()
	obj.Set("dispatchEvent", b.fn(func(args []js.Value) any {
		if len(args) == 0 {
			return false
		}
		var detail any
		if len(args) > 1 {
			detail = fromJS(args[1])
		}
		ev := events.NewEvent(args[0].String(), detail)
		ev.Bubbles, ev.Composed = true, true
		return ch.Dispatch(ev)
	}))
	obj.Set("addEventListener", b.fn(func(args []js.Value) any {
		if len(args) < 2 {
			return nil
		}
		typ, fn := args[0].String(), args[1]
		l := events.NewListener(func(ev *events.Event) {
			fn.Invoke(map[string]any{"type": ev.Type, "detail": toJS(ev.Detail)})
		})
		b.jsHandles = append(b.jsHandles, jsListener{typ: typ, fn: fn, l: l})
		ch.AddEventListener(typ, l)
		return nil
	}))
	obj.Set("removeEventListener", b.fn(func(args []js.Value) any {
		if len(args) < 2 {
			return nil
		}
		typ, fn := args[0].String(), args[1]
		for i, h := range b.jsHandles {
			if h.typ == typ && h.fn.Equal(fn) {
				ch.RemoveEventListener(typ, h.l)
				b.jsHandles = append(b.jsHandles[:i:i], b.jsHandles[i+1:]...)
				break
			}
		}
		return nil
	}))
	return obj
}

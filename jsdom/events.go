//go:build js && wasm

package jsdom

import (
	"sync"
	"syscall/js"

	"github.com/gowade/dom"
)

type event struct {
	v js.Value
}

func (e event) Type() string {
	return e.v.Get("type").String()
}

func (e event) Target() dom.Element {
	return wrap(e.v.Get("target"))
}

func (e event) PreventDefault() {
	e.v.Call("preventDefault")
}

func (e event) StopPropagation() {
	e.v.Call("stopPropagation")
}

// funcs maps listener handles to the js functions handed to the host.
// Removal must pass the identical function object back, so the bridge is
// created once per handle and kept for the life of the program.
var funcs sync.Map // *dom.EventListener -> js.Func

func bridge(l *dom.EventListener) js.Func {
	if f, ok := funcs.Load(l); ok {
		return f.(js.Func)
	}

	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		l.Handle(event{args[0]})
		return nil
	})
	if prev, loaded := funcs.LoadOrStore(l, f); loaded {
		f.Release()
		return prev.(js.Func)
	}

	return f
}

func (e *Element) AddEventListener(typ string, l *dom.EventListener, opts dom.EventOptions) {
	if l == nil {
		return
	}

	e.v.Call("addEventListener", typ, bridge(l), map[string]any{
		"capture": opts.Capture,
		"once":    opts.Once,
		"passive": opts.Passive,
	})
}

func (e *Element) RemoveEventListener(typ string, l *dom.EventListener, opts dom.EventOptions) {
	f, ok := funcs.Load(l)
	if !ok {
		return
	}

	e.v.Call("removeEventListener", typ, f.(js.Func), map[string]any{
		"capture": opts.Capture,
	})
}

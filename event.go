package dom

type (
	// Event is the host event delivered to listeners.
	Event interface {
		Type() string
		Target() Element
		PreventDefault()
		StopPropagation()
	}

	// EventHandler reacts to a host event.
	EventHandler func(Event)

	// EventListener wraps a handler in a retained, comparable handle.
	// Hosts match listeners for removal by this handle's identity, so
	// the caller must keep the value obtained from NewEventListener to
	// be able to remove the registration later.
	EventListener struct {
		fn EventHandler
	}

	// EventOptions mirror the host's listener options. Removal matches
	// on Capture only, per host convention.
	EventOptions struct {
		Capture bool
		Once    bool
		Passive bool
	}
)

// NewEventListener wraps fn in a listener handle.
func NewEventListener(fn EventHandler) *EventListener {
	return &EventListener{fn: fn}
}

// Handle invokes the wrapped handler. Hosts call this when dispatching.
func (l *EventListener) Handle(ev Event) {
	if l.fn != nil {
		l.fn(ev)
	}
}

// On registers l for events of the given type on el. It is a direct
// pass-through to the host; no registry is kept on this side.
func On(el Element, typ string, l *EventListener, opts ...EventOptions) {
	el.AddEventListener(typ, l, firstOpt(opts))
}

// Off removes a registration made by On. The same listener handle and
// the same Capture flag must be supplied, per host semantics; anything
// else is a no-op.
func Off(el Element, typ string, l *EventListener, opts ...EventOptions) {
	el.RemoveEventListener(typ, l, firstOpt(opts))
}

func firstOpt(opts []EventOptions) EventOptions {
	if len(opts) > 0 {
		return opts[0]
	}
	return EventOptions{}
}

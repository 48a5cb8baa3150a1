package gqdom

import (
	"golang.org/x/net/html"

	"github.com/gowade/dom"
)

// Event is the event delivered by Dispatch. It satisfies dom.Event.
type Event struct {
	typ       string
	target    dom.Element
	stopped   bool
	prevented bool
}

// NewEvent builds an event of the given type, ready for Dispatch.
func NewEvent(typ string) *Event {
	return &Event{typ: typ}
}

func (e *Event) Type() string        { return e.typ }
func (e *Event) Target() dom.Element { return e.target }
func (e *Event) PreventDefault()     { e.prevented = true }
func (e *Event) StopPropagation()    { e.stopped = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.prevented }

// Dispatch delivers ev to target synchronously: capture listeners from
// the root down, every listener on the target, then bubble listeners back
// up. StopPropagation halts the remaining phases.
func Dispatch(target dom.Element, ev *Event) {
	t := unwrap(target)
	t.doc.dispatch(t, ev)
}

type phase int

const (
	phaseCapture phase = iota
	phaseTarget
	phaseBubble
)

type entry struct {
	typ      string
	listener *dom.EventListener
	capture  bool
	once     bool
}

// registry holds the listeners of one document, keyed by node. Order of
// registration is preserved per node.
type registry struct {
	entries map[*html.Node][]entry
}

func newRegistry() *registry {
	return &registry{entries: make(map[*html.Node][]entry)}
}

// add registers a listener. A registration identical in type, listener
// identity and capture flag is ignored, per host semantics.
func (r *registry) add(n *html.Node, typ string, l *dom.EventListener, opts dom.EventOptions) {
	if l == nil {
		return
	}
	for _, en := range r.entries[n] {
		if en.typ == typ && en.listener == l && en.capture == opts.Capture {
			return
		}
	}

	r.entries[n] = append(r.entries[n], entry{typ, l, opts.Capture, opts.Once})
}

// remove drops a registration. The listener identity and the capture
// flag must both match; otherwise remove is a no-op.
func (r *registry) remove(n *html.Node, typ string, l *dom.EventListener, opts dom.EventOptions) {
	ens := r.entries[n]
	for i, en := range ens {
		if en.typ == typ && en.listener == l && en.capture == opts.Capture {
			r.entries[n] = append(ens[:i:i], ens[i+1:]...)
			return
		}
	}
}

func (d *Document) dispatch(target *Element, ev *Event) {
	ev.target = target

	var path []*html.Node
	for n := target.node.Parent; n != nil; n = n.Parent {
		if n.Type == html.ElementNode {
			path = append([]*html.Node{n}, path...)
		}
	}

	for _, n := range path {
		if ev.stopped {
			return
		}
		d.events.invoke(n, ev, phaseCapture)
	}
	if ev.stopped {
		return
	}
	d.events.invoke(target.node, ev, phaseTarget)
	for i := len(path) - 1; i >= 0; i-- {
		if ev.stopped {
			return
		}
		d.events.invoke(path[i], ev, phaseBubble)
	}
}

// invoke calls the node's listeners matching the event type and phase,
// in registration order. It iterates a snapshot so listeners added
// during delivery do not fire, but a listener removed by an earlier
// listener in the same delivery must not fire either, so each entry is
// checked against the live registry first. Once listeners are dropped
// before their handler runs.
func (r *registry) invoke(n *html.Node, ev *Event, ph phase) {
	snapshot := append([]entry(nil), r.entries[n]...)
	for _, en := range snapshot {
		if en.typ != ev.typ {
			continue
		}
		if ph == phaseCapture && !en.capture {
			continue
		}
		if ph == phaseBubble && en.capture {
			continue
		}
		if !r.registered(n, en) {
			continue
		}
		if en.once {
			r.remove(n, en.typ, en.listener, dom.EventOptions{Capture: en.capture})
		}
		en.listener.Handle(ev)
	}
}

func (r *registry) registered(n *html.Node, en entry) bool {
	for _, cur := range r.entries[n] {
		if cur.typ == en.typ && cur.listener == en.listener && cur.capture == en.capture {
			return true
		}
	}

	return false
}

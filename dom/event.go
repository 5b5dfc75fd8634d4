package dom

import (
	"time"

	"gioui.org/f32"
	"golang.org/x/exp/slices"
)

// Event is dispatched on a target element and, if it bubbles, on each of the
// target's ancestors in turn.
type Event struct {
	Type       string
	Detail     any
	Bubbles    bool
	Cancelable bool

	// Target is the element the event was dispatched on, CurrentTarget the
	// element whose listener is running.
	Target        *Element
	CurrentTarget *Element

	defaultPrevented bool
	stopped          bool
}

// PreventDefault marks a cancelable event as canceled. It has no effect on
// events that aren't cancelable.
func (ev *Event) PreventDefault() {
	if ev.Cancelable {
		ev.defaultPrevented = true
	}
}

func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// StopPropagation prevents the event from reaching further ancestors. The
// remaining listeners on the current element still run.
func (ev *Event) StopPropagation() { ev.stopped = true }

type listener struct {
	fn      func(*Event)
	removed bool
}

// AddEventListener registers fn for events of type typ dispatched on el or,
// for bubbling events, on one of its descendants. The returned function
// removes the listener.
func (el *Element) AddEventListener(typ string, fn func(*Event)) (remove func()) {
	if el.listeners == nil {
		el.listeners = map[string][]*listener{}
	}
	l := &listener{fn: fn}
	el.listeners[typ] = append(el.listeners[typ], l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		el.listeners[typ] = slices.DeleteFunc(el.listeners[typ], func(o *listener) bool { return o == l })
	}
}

// Dispatch delivers ev to el's listeners and, if ev bubbles, to the listeners
// of el's ancestors. The propagation path is fixed before the first listener
// runs. Dispatch returns false if ev is cancelable and a listener called
// PreventDefault.
func (el *Element) Dispatch(ev *Event) bool {
	ev.Target = el
	ev.defaultPrevented = false
	ev.stopped = false

	path := []*Element{el}
	if ev.Bubbles {
		for p := el.parent; p != nil; p = p.parent {
			path = append(path, p)
		}
	}

	for _, cur := range path {
		ev.CurrentTarget = cur
		// Listeners added during dispatch don't see this event.
		for _, l := range slices.Clone(cur.listeners[ev.Type]) {
			if l.removed {
				continue
			}
			l.fn(ev)
		}
		if ev.stopped {
			break
		}
	}
	ev.CurrentTarget = nil

	return !ev.defaultPrevented
}

// Touch is a single point of contact.
type Touch struct {
	Position f32.Point
	// Type is the kind of device reporting the touch, such as "direct" or
	// "stylus". It is empty if the device doesn't say.
	Type string
}

// TouchEvent is the Detail of touchstart, touchmove, touchend and touchcancel
// events.
type TouchEvent struct {
	// Touches lists all points currently in contact.
	Touches []Touch
	// ChangedTouches lists the points that changed with this event. For
	// touchend that's the points that were lifted.
	ChangedTouches []Touch
	// Time is a monotonic timestamp of the event.
	Time time.Duration
}

// MouseEvent is the Detail of mouseover and click events.
type MouseEvent struct {
	Position f32.Point
	Time     time.Duration
}

const (
	TypeTouchStart  = "touchstart"
	TypeTouchMove   = "touchmove"
	TypeTouchEnd    = "touchend"
	TypeTouchCancel = "touchcancel"
	TypeMouseOver   = "mouseover"
	TypeClick       = "click"
	TypeChange      = "change"
	TypeSubmit      = "submit"
)

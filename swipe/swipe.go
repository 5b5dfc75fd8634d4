// Package swipe recognizes swipe gestures in touch events and reports them as
// swiped and swiped-<direction> events on the element the touch started on.
//
// Thresholds, units and timeouts are configured with data-swipe-* attributes
// on the element or any of its ancestors, see ResolveConfig.
package swipe

import (
	"time"

	"gioui.org/f32"
	"honnef.co/go/swipepad/dom"
)

// EventSwiped is dispatched for every recognized swipe, alongside the
// direction-specific event returned by Direction.EventType.
const EventSwiped = "swiped"

type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (dir Direction) String() string {
	switch dir {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "Direction(?)"
	}
}

// EventType returns the name of the direction-specific event, e.g.
// swiped-left.
func (dir Direction) EventType() string {
	return EventSwiped + "-" + dir.String()
}

// PointerKind is the kind of device that performed a swipe.
type PointerKind uint8

const (
	Direct PointerKind = iota
	Stylus
)

func (k PointerKind) String() string {
	switch k {
	case Direct:
		return "direct"
	case Stylus:
		return "stylus"
	default:
		return "PointerKind(?)"
	}
}

func pointerKind(touchType string) PointerKind {
	if touchType == "stylus" {
		return Stylus
	}
	return Direct
}

// Detail is the Detail of swipe events. XEnd and YEnd are -1 if the event
// that ended the swipe didn't carry a position.
type Detail struct {
	Direction   Direction
	PointerKind PointerKind
	XStart      int
	XEnd        int
	YStart      int
	YEnd        int
}

// DetailOf returns the swipe detail of ev, if it is a swipe event.
func DetailOf(ev *dom.Event) (Detail, bool) {
	d, ok := ev.Detail.(Detail)
	return d, ok
}

type session struct {
	origin *dom.Element
	start  f32.Point
	// delta is start minus the current position; positive X means the
	// finger moved left.
	delta     f32.Point
	startTime time.Duration
}

// Recognizer tracks a single touch at a time. The zero value is ready to
// use. Recognizers aren't safe for concurrent use; feed them from the UI
// goroutine only.
type Recognizer struct {
	session session
}

func New() *Recognizer {
	return &Recognizer{}
}

// Tracking reports whether a touch is currently being tracked.
func (r *Recognizer) Tracking() bool {
	return r.session.origin != nil
}

// Attach makes r listen to touch events dispatched on root or any of its
// descendants. The returned function detaches r again.
func (r *Recognizer) Attach(root *dom.Element) (detach func()) {
	handle := func(fn func(*dom.Element, dom.TouchEvent)) func(*dom.Event) {
		return func(ev *dom.Event) {
			tev, ok := ev.Detail.(dom.TouchEvent)
			if !ok || ev.Target == nil {
				return
			}
			fn(ev.Target, tev)
		}
	}
	removers := []func(){
		root.AddEventListener(dom.TypeTouchStart, handle(r.TouchStart)),
		root.AddEventListener(dom.TypeTouchMove, handle(r.TouchMove)),
		root.AddEventListener(dom.TypeTouchEnd, handle(r.TouchEnd)),
		root.AddEventListener(dom.TypeTouchCancel, func(*dom.Event) { r.TouchCancel() }),
	}
	return func() {
		for _, rm := range removers {
			rm()
		}
	}
}

// TouchStart begins tracking a touch on target, unless target carries
// data-swipe-ignore="true". Only the first touch point is considered.
func (r *Recognizer) TouchStart(target *dom.Element, ev dom.TouchEvent) {
	if ignored(target) || len(ev.Touches) == 0 {
		r.reset()
		return
	}
	r.session = session{
		origin:    target,
		start:     ev.Touches[0].Position,
		startTime: ev.Time,
	}
}

// TouchMove updates the displacement of the tracked touch. It does nothing
// if no touch is being tracked.
func (r *Recognizer) TouchMove(target *dom.Element, ev dom.TouchEvent) {
	if !r.Tracking() || len(ev.Touches) == 0 {
		return
	}
	r.session.delta = r.session.start.Sub(ev.Touches[0].Position)
}

// TouchEnd finishes the tracked touch. If it ended on a different element
// than it started on, it is dropped silently. Otherwise it is classified and,
// if it qualifies as a swipe, swiped and swiped-<direction> events are
// dispatched on the element the touch started on. Either way, r stops
// tracking before any listener runs.
func (r *Recognizer) TouchEnd(target *dom.Element, ev dom.TouchEvent) {
	s := r.session
	r.reset()
	if s.origin == nil || s.origin != target {
		return
	}

	cfg := ResolveConfig(s.origin)
	viewport := s.origin.Document().Viewport()
	dir, ok := Classify(s.delta, ev.Time-s.startTime, cfg.PixelThreshold(viewport), cfg.Timeout)
	if !ok {
		return
	}

	d := Detail{
		Direction:   dir,
		PointerKind: Direct,
		XStart:      int(s.start.X),
		XEnd:        -1,
		YStart:      int(s.start.Y),
		YEnd:        -1,
	}
	touches := ev.ChangedTouches
	if len(touches) == 0 {
		touches = ev.Touches
	}
	if len(touches) > 0 {
		d.PointerKind = pointerKind(touches[0].Type)
		d.XEnd = int(touches[0].Position.X)
		d.YEnd = int(touches[0].Position.Y)
	}

	s.origin.Dispatch(&dom.Event{Type: EventSwiped, Detail: d, Bubbles: true, Cancelable: true})
	s.origin.Dispatch(&dom.Event{Type: dir.EventType(), Detail: d, Bubbles: true, Cancelable: true})
}

// TouchCancel stops tracking without classifying.
func (r *Recognizer) TouchCancel() {
	r.reset()
}

func (r *Recognizer) reset() {
	r.session = session{}
}

// Classify decides whether a displacement of delta (start minus end) over
// elapsed is a swipe. The axis with the larger displacement wins; equal
// displacements count as vertical. A swipe has to exceed threshold pixels
// along that axis and take less than timeout.
func Classify(delta f32.Point, elapsed time.Duration, threshold int, timeout time.Duration) (Direction, bool) {
	dx, dy := abs(delta.X), abs(delta.Y)
	if elapsed >= timeout {
		return 0, false
	}
	if dx > dy {
		if dx <= float32(threshold) {
			return 0, false
		}
		if delta.X > 0 {
			return Left, true
		}
		return Right, true
	}
	if dy <= float32(threshold) {
		return 0, false
	}
	if delta.Y > 0 {
		return Up, true
	}
	return Down, true
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// Package gesture feeds Gio pointer events into a dom tree, playing the part
// of a browser: touches become touchstart, touchmove and touchend events,
// hovering becomes mouseover events and completed presses become clicks.
package gesture

import (
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"

	"honnef.co/go/swipepad/dom"
)

// Surface translates the pointer events in its clip area.
type Surface struct {
	// HitTest returns the element at a position, or nil if there is none.
	HitTest func(f32.Point) *dom.Element
	// Root receives events for positions that hit no element. It may be nil,
	// in which case such events are dropped.
	Root *dom.Element
	// EmulateTouch makes presses of the primary mouse button behave like
	// touches.
	EmulateTouch bool

	// pressed tracks whether a pointer is pressed.
	pressed bool
	// touch is set if the current press is reported as a touch.
	touch bool
	// pid is the pointer that pressed.
	pid pointer.ID
	// origin is the element the press started on.
	origin  *dom.Element
	hovered *dom.Element
}

// Add the handler to the operation list to receive pointer events.
func (s *Surface) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:   s,
		Kinds: pointer.Press | pointer.Release | pointer.Drag | pointer.Move | pointer.Enter | pointer.Leave | pointer.Cancel,
	}.Add(ops)
}

// Hovered returns the element under the pointer, if any.
func (s *Surface) Hovered() *dom.Element {
	return s.hovered
}

// Pressed reports whether a pointer is pressing.
func (s *Surface) Pressed() bool {
	return s.pressed
}

// Update processes queued pointer events and dispatches the resulting dom
// events.
func (s *Surface) Update(q event.Queue) {
	for _, evt := range q.Events(s) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		s.handle(e)
	}
}

func (s *Surface) handle(e pointer.Event) {
	switch e.Kind {
	case pointer.Press:
		if s.pressed {
			// Only the first pointer is tracked.
			return
		}
		touch := e.Source == pointer.Touch
		if e.Source == pointer.Mouse {
			if e.Buttons&pointer.ButtonPrimary == 0 {
				return
			}
			touch = s.EmulateTouch
		}
		s.pressed = true
		s.touch = touch
		s.pid = e.PointerID
		s.origin = s.target(e.Position)
		s.hover(e)
		if s.touch {
			t := []dom.Touch{{Position: e.Position}}
			dispatch(s.origin, dom.TypeTouchStart, dom.TouchEvent{Touches: t, ChangedTouches: t, Time: e.Time})
		}

	case pointer.Drag:
		s.hover(e)
		if !s.pressed || !s.touch || e.PointerID != s.pid {
			return
		}
		t := []dom.Touch{{Position: e.Position}}
		dispatch(s.origin, dom.TypeTouchMove, dom.TouchEvent{Touches: t, ChangedTouches: t, Time: e.Time})

	case pointer.Move, pointer.Enter:
		s.hover(e)

	case pointer.Release:
		if !s.pressed || e.PointerID != s.pid {
			return
		}
		// e.Buttons contains the buttons that are still held. Releasing
		// another mouse button doesn't end the press.
		if e.Source == pointer.Mouse && e.Buttons&pointer.ButtonPrimary != 0 {
			return
		}
		origin := s.origin
		s.pressed = false
		s.origin = nil
		target := s.target(e.Position)
		if s.touch {
			dispatch(target, dom.TypeTouchEnd, dom.TouchEvent{
				ChangedTouches: []dom.Touch{{Position: e.Position}},
				Time:           e.Time,
			})
		}
		if target == origin {
			dispatch(target, dom.TypeClick, dom.MouseEvent{Position: e.Position, Time: e.Time})
		}

	case pointer.Cancel:
		if s.pressed && s.touch {
			dispatch(s.origin, dom.TypeTouchCancel, dom.TouchEvent{Time: e.Time})
		}
		s.pressed = false
		s.origin = nil
		s.hovered = nil

	case pointer.Leave:
		if !s.pressed || e.PointerID == s.pid {
			s.hovered = nil
		}
	}
}

// hover dispatches mouseover when the pointer moves onto a different
// element.
func (s *Surface) hover(e pointer.Event) {
	if s.pressed && e.PointerID != s.pid {
		return
	}
	el := s.target(e.Position)
	if el == s.hovered {
		return
	}
	s.hovered = el
	dispatch(el, dom.TypeMouseOver, dom.MouseEvent{Position: e.Position, Time: e.Time})
}

func (s *Surface) target(pos f32.Point) *dom.Element {
	if s.HitTest != nil {
		if el := s.HitTest(pos); el != nil {
			return el
		}
	}
	return s.Root
}

func dispatch(el *dom.Element, typ string, detail any) {
	if el == nil {
		return
	}
	el.Dispatch(&dom.Event{
		Type:       typ,
		Detail:     detail,
		Bubbles:    true,
		Cancelable: typ != dom.TypeTouchCancel,
	})
}

package gesture

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"

	"honnef.co/go/swipepad/dom"
	"honnef.co/go/swipepad/swipe"
)

type queue []event.Event

func (q queue) Events(event.Tag) []event.Event { return q }

type fixture struct {
	doc    *dom.Document
	left   *dom.Element
	right  *dom.Element
	s      *Surface
	events []string
}

// newFixture lays out two 100x100 elements side by side.
func newFixture() *fixture {
	f := &fixture{doc: dom.NewDocument()}
	f.doc.SetViewport(image.Pt(200, 100))
	f.left = f.doc.CreateElement("div")
	f.left.SetID("left")
	f.right = f.doc.CreateElement("div")
	f.right.SetID("right")
	f.doc.Body().Append(f.left)
	f.doc.Body().Append(f.right)
	f.s = &Surface{
		Root: f.doc.Body(),
		HitTest: func(p f32.Point) *dom.Element {
			switch {
			case p.Y < 0 || p.Y >= 100:
				return nil
			case p.X >= 0 && p.X < 100:
				return f.left
			case p.X >= 100 && p.X < 200:
				return f.right
			default:
				return nil
			}
		},
	}
	for _, typ := range []string{dom.TypeTouchStart, dom.TypeTouchMove, dom.TypeTouchEnd, dom.TypeTouchCancel, dom.TypeMouseOver, dom.TypeClick, swipe.EventSwiped} {
		typ := typ
		f.doc.Root().AddEventListener(typ, func(ev *dom.Event) {
			f.events = append(f.events, typ+"@"+ev.Target.ID())
		})
	}
	return f
}

func (f *fixture) feed(evs ...pointer.Event) {
	q := make(queue, len(evs))
	for i, ev := range evs {
		q[i] = ev
	}
	f.s.Update(q)
}

func (f *fixture) want(t *testing.T, events ...string) {
	t.Helper()
	if len(f.events) != len(events) {
		t.Fatalf("got events %q, want %q", f.events, events)
	}
	for i := range events {
		if f.events[i] != events[i] {
			t.Fatalf("got events %q, want %q", f.events, events)
		}
	}
}

func touch(kind pointer.Kind, x, y float32, ms int) pointer.Event {
	return pointer.Event{
		Kind:     kind,
		Source:   pointer.Touch,
		Position: f32.Pt(x, y),
		Time:     time.Duration(ms) * time.Millisecond,
	}
}

func TestTouchSequence(t *testing.T) {
	f := newFixture()
	f.feed(
		touch(pointer.Press, 50, 50, 0),
		touch(pointer.Drag, 20, 50, 10),
		touch(pointer.Release, 20, 50, 20),
	)
	f.want(t,
		"mouseover@left",
		"touchstart@left",
		"touchmove@left",
		"touchend@left",
		"click@left",
	)
}

func TestTouchReleasedElsewhere(t *testing.T) {
	f := newFixture()
	f.feed(
		touch(pointer.Press, 50, 50, 0),
		touch(pointer.Drag, 150, 50, 10),
		touch(pointer.Release, 150, 50, 20),
	)
	// touchmove goes to the origin, touchend to the element under the
	// pointer, and there's no click.
	f.want(t,
		"mouseover@left",
		"touchstart@left",
		"mouseover@right",
		"touchmove@left",
		"touchend@right",
	)
}

func TestSecondPointerIgnored(t *testing.T) {
	f := newFixture()
	second := touch(pointer.Press, 150, 50, 5)
	second.PointerID = 1
	secondRelease := touch(pointer.Release, 150, 50, 6)
	secondRelease.PointerID = 1
	f.feed(
		touch(pointer.Press, 50, 50, 0),
		second,
		secondRelease,
		touch(pointer.Release, 50, 50, 20),
	)
	f.want(t,
		"mouseover@left",
		"touchstart@left",
		"touchend@left",
		"click@left",
	)
}

func TestCancel(t *testing.T) {
	f := newFixture()
	f.feed(
		touch(pointer.Press, 50, 50, 0),
		touch(pointer.Cancel, 0, 0, 10),
		touch(pointer.Release, 50, 50, 20),
	)
	f.want(t,
		"mouseover@left",
		"touchstart@left",
		"touchcancel@left",
	)
	if f.s.Pressed() || f.s.Hovered() != nil {
		t.Error("state not reset by cancel")
	}
}

func TestMouse(t *testing.T) {
	f := newFixture()
	mouse := func(kind pointer.Kind, x, y float32, buttons pointer.Buttons) pointer.Event {
		return pointer.Event{Kind: kind, Source: pointer.Mouse, Position: f32.Pt(x, y), Buttons: buttons}
	}
	f.feed(
		mouse(pointer.Move, 50, 50, 0),
		mouse(pointer.Move, 60, 50, 0),
		mouse(pointer.Move, 150, 50, 0),
		mouse(pointer.Press, 150, 50, pointer.ButtonSecondary),
		mouse(pointer.Press, 150, 50, pointer.ButtonPrimary),
		mouse(pointer.Release, 150, 50, 0),
	)
	f.want(t,
		"mouseover@left",
		"mouseover@right",
		"click@right",
	)

	f.events = nil
	f.s.EmulateTouch = true
	f.feed(
		mouse(pointer.Press, 150, 50, pointer.ButtonPrimary),
		mouse(pointer.Drag, 160, 50, pointer.ButtonPrimary),
		mouse(pointer.Release, 160, 50, 0),
	)
	f.want(t,
		"touchstart@right",
		"touchmove@right",
		"touchend@right",
		"click@right",
	)

	// Releasing the secondary button while the primary one is held keeps the
	// touch going.
	f.events = nil
	f.feed(
		mouse(pointer.Press, 150, 50, pointer.ButtonPrimary),
		mouse(pointer.Press, 150, 50, pointer.ButtonPrimary|pointer.ButtonSecondary),
		mouse(pointer.Release, 150, 50, pointer.ButtonPrimary),
	)
	if !f.s.Pressed() {
		t.Error("secondary release ended the press")
	}
	f.feed(
		mouse(pointer.Drag, 170, 50, pointer.ButtonPrimary),
		mouse(pointer.Release, 170, 50, 0),
	)
	f.want(t,
		"touchstart@right",
		"touchmove@right",
		"touchend@right",
		"click@right",
	)
}

func TestRoot(t *testing.T) {
	f := newFixture()
	f.feed(touch(pointer.Move, 50, 500, 0))
	f.want(t, "mouseover@")
	if f.s.Hovered() != f.doc.Body() {
		t.Error("expected body to be hovered")
	}
	f.feed(touch(pointer.Leave, 50, 500, 0))
	if f.s.Hovered() != nil {
		t.Error("still hovering after leave")
	}
}

func TestSwipeThroughSurface(t *testing.T) {
	f := newFixture()
	swipe.New().Attach(f.doc.Root())
	f.feed(
		touch(pointer.Press, 90, 50, 0),
		touch(pointer.Drag, 40, 50, 50),
		touch(pointer.Release, 40, 50, 100),
	)
	f.want(t,
		"mouseover@left",
		"touchstart@left",
		"touchmove@left",
		"touchend@left",
		"swiped@left",
		"click@left",
	)
}

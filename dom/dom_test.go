package dom

import (
	"strings"
	"testing"
)

func tree() (doc *Document, outer, inner *Element) {
	doc = NewDocument()
	outer = doc.CreateElement("div")
	inner = doc.CreateElement("span")
	doc.Body().Append(outer)
	outer.Append(inner)
	return doc, outer, inner
}

func TestNearestAttribute(t *testing.T) {
	doc, outer, inner := tree()

	if got := NearestAttribute(inner, "data-x", "def"); got != "def" {
		t.Errorf("got %q, want default", got)
	}

	outer.SetAttr("data-x", "outer")
	if got := NearestAttribute(inner, "data-x", "def"); got != "outer" {
		t.Errorf("got %q, want value of ancestor", got)
	}

	inner.SetAttr("data-x", "inner")
	if got := NearestAttribute(inner, "data-x", "def"); got != "inner" {
		t.Errorf("got %q, want own value", got)
	}

	// Empty values don't count.
	inner.SetAttr("data-x", "")
	if got := NearestAttribute(inner, "data-x", "def"); got != "outer" {
		t.Errorf("got %q, want empty value to be skipped", got)
	}

	// The document element is never consulted.
	doc.Root().SetAttr("data-y", "root")
	if got := NearestAttribute(inner, "data-y", "def"); got != "def" {
		t.Errorf("got %q, want root to be skipped", got)
	}

	if got := NearestAttribute(nil, "data-x", "def"); got != "def" {
		t.Errorf("got %q for nil element", got)
	}
}

func TestDispatchBubbles(t *testing.T) {
	doc, outer, inner := tree()

	var order []string
	record := func(name string) func(*Event) {
		return func(ev *Event) {
			if ev.Target != inner {
				t.Errorf("%s: target is %v, want %v", name, ev.Target, inner)
			}
			order = append(order, name)
		}
	}
	inner.AddEventListener("ping", record("inner"))
	outer.AddEventListener("ping", record("outer"))
	doc.Body().AddEventListener("ping", record("body"))
	doc.Root().AddEventListener("ping", record("root"))
	doc.Root().AddEventListener("pong", record("wrong type"))

	if !inner.Dispatch(&Event{Type: "ping", Bubbles: true}) {
		t.Error("Dispatch returned false for uncanceled event")
	}
	if got, want := strings.Join(order, ","), "inner,outer,body,root"; got != want {
		t.Errorf("got order %s, want %s", got, want)
	}

	order = nil
	inner.Dispatch(&Event{Type: "ping"})
	if got, want := strings.Join(order, ","), "inner"; got != want {
		t.Errorf("non-bubbling event: got order %s, want %s", got, want)
	}
}

func TestDispatchCancel(t *testing.T) {
	_, outer, inner := tree()
	outer.AddEventListener("ping", func(ev *Event) { ev.PreventDefault() })

	if inner.Dispatch(&Event{Type: "ping", Bubbles: true, Cancelable: true}) {
		t.Error("canceled event: Dispatch returned true")
	}
	if !inner.Dispatch(&Event{Type: "ping", Bubbles: true}) {
		t.Error("PreventDefault on non-cancelable event had an effect")
	}
}

func TestStopPropagation(t *testing.T) {
	doc, outer, inner := tree()
	var calls int
	outer.AddEventListener("ping", func(ev *Event) {
		calls++
		ev.StopPropagation()
	})
	outer.AddEventListener("ping", func(ev *Event) { calls++ })
	doc.Body().AddEventListener("ping", func(ev *Event) { t.Error("event propagated past StopPropagation") })

	inner.Dispatch(&Event{Type: "ping", Bubbles: true})
	if calls != 2 {
		t.Errorf("got %d calls on current element, want 2", calls)
	}
}

func TestRemoveListener(t *testing.T) {
	_, _, inner := tree()
	var a, b int
	var removeB func()
	inner.AddEventListener("ping", func(*Event) {
		a++
		// Removing a listener that hasn't run yet skips it.
		removeB()
	})
	removeB = inner.AddEventListener("ping", func(*Event) { b++ })

	inner.Dispatch(&Event{Type: "ping"})
	inner.Dispatch(&Event{Type: "ping"})
	if a != 2 || b != 0 {
		t.Errorf("got a=%d b=%d, want a=2 b=0", a, b)
	}
	// Removing twice is fine.
	removeB()
}

func TestTree(t *testing.T) {
	doc, outer, inner := tree()
	other := doc.CreateElement("div")
	other.Append(inner)
	if inner.Parent() != other || len(outer.Children()) != 0 {
		t.Error("Append didn't move the element")
	}

	inner.Remove()
	if inner.Parent() != nil || len(other.Children()) != 0 {
		t.Error("Remove didn't detach the element")
	}

	inner.SetData("color", "black")
	if v, ok := inner.Attr("data-color"); !ok || v != "black" {
		t.Errorf("SetData: got %q, %t", v, ok)
	}
	inner.DeleteData("color")
	if _, ok := inner.Data("color"); ok {
		t.Error("DeleteData didn't delete")
	}

	inner.AddClass("a")
	inner.AddClass("a")
	inner.AddClass("b")
	inner.RemoveClass("a")
	if inner.HasClass("a") || !inner.HasClass("b") {
		t.Error("class list is wrong")
	}
}

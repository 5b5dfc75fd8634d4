package main

import (
	"image"
	"math/rand"
	"testing"

	"gioui.org/f32"
)

func TestHitTest(t *testing.T) {
	ui := NewUI(rand.New(rand.NewSource(1)), true)
	ui.pad.SetBoxes(4)
	ui.grid = gridArea{r: image.Rect(100, 100, 140, 140), cell: 10, n: 4}
	sw := ui.pad.Swatches()[0]
	ui.hits = append(ui.hits, hit{image.Rect(0, 0, 50, 50), sw})

	if got := ui.hitTest(f32.Pt(10, 10)); got != sw {
		t.Errorf("got %v, want swatch", got)
	}
	cells := ui.pad.Cells()
	if got := ui.hitTest(f32.Pt(100, 100)); got != cells[0].Element() {
		t.Errorf("got %v, want first cell", got)
	}
	if got := ui.hitTest(f32.Pt(135, 125)); got != cells[2*4+3].Element() {
		t.Errorf("got %v, want cell at row 2, column 3", got)
	}
	if got := ui.hitTest(f32.Pt(300, 300)); got != nil {
		t.Errorf("got %v, want nothing", got)
	}
}

func TestAnimationCurves(t *testing.T) {
	if s := bounceScale(0); s != 1 {
		t.Errorf("bounce starts at scale %v", s)
	}
	if s := bounceScale(1); s != 1 {
		t.Errorf("bounce ends at scale %v", s)
	}
	if s := bounceScale(1.0 / 6); s <= 1 {
		t.Errorf("bounce doesn't grow: %v", s)
	}
	if !flashing(0) || flashing(0.3) || !flashing(0.6) {
		t.Error("unexpected flash phases")
	}
	if fade(0) != 0xFF || fade(1) != 0 {
		t.Errorf("fade goes from %d to %d", fade(0), fade(1))
	}
}

func TestSubmitSize(t *testing.T) {
	ui := NewUI(rand.New(rand.NewSource(1)), true)
	ui.sizeInput.SetText("12")
	ui.submitSize(ui.sizeInput.Text())
	if got := ui.pad.Boxes(); got != 12 {
		t.Errorf("got %d boxes, want 12", got)
	}
	if ui.sizeInput.Len() != 0 {
		t.Errorf("size input wasn't cleared: %q", ui.sizeInput.Text())
	}

	ui.submitSize("2.5")
	if got := ui.pad.Boxes(); got != 2 {
		t.Errorf("got %d boxes, want 2", got)
	}
}

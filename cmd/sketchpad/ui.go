package main

import (
	"context"
	"image"
	"image/color"
	"math/rand"
	rtrace "runtime/trace"
	"strconv"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	mycolor "honnef.co/go/swipepad/color"
	"honnef.co/go/swipepad/dom"
	"honnef.co/go/swipepad/gesture"
	"honnef.co/go/swipepad/sketch"
	"honnef.co/go/swipepad/swipe"
)

var (
	colorBackground = mycolor.MustParseHex("#f4f1e8")
	colorButton     = mycolor.MustParseHex("#d9d4c5")
	colorSelected   = mycolor.MustParseHex("#4b8fb8")
	colorFlash      = mycolor.MustParseHex("#ffe066")
	colorText       = mycolor.MustParseHex("#222")
	colorGridBorder = mycolor.MustParseHex("#888")
)

type hit struct {
	r  image.Rectangle
	el *dom.Element
}

// gridArea is where the cells were laid out in the last frame.
type gridArea struct {
	r    image.Rectangle
	cell int
	n    int
}

type UI struct {
	doc     *dom.Document
	pad     *sketch.Pad
	surface gesture.Surface
	shaper  *text.Shaper
	printer *message.Printer

	// sizeInput is the free-form cell count input.
	sizeInput widget.Editor

	hits []hit
	grid gridArea
}

func NewUI(rng *rand.Rand, emulateTouch bool) *UI {
	doc := dom.NewDocument()
	ui := &UI{
		doc:     doc,
		pad:     sketch.New(doc, rng),
		shaper:  text.NewShaper(text.WithCollection(gofont.Collection())),
		printer: message.NewPrinter(language.English),
		sizeInput: widget.Editor{
			SingleLine: true,
			Submit:     true,
			Filter:     "0123456789.eE+-",
		},
	}
	swipe.New().Attach(doc.Root())
	ui.surface = gesture.Surface{
		HitTest:      ui.hitTest,
		Root:         doc.Body(),
		EmulateTouch: emulateTouch,
	}
	return ui
}

func (ui *UI) hitTest(p f32.Point) *dom.Element {
	pt := p.Round()
	if g := ui.grid; pt.In(g.r) && g.cell > 0 {
		col := (pt.X - g.r.Min.X) / g.cell
		row := (pt.Y - g.r.Min.Y) / g.cell
		cells := ui.pad.Cells()
		if i := row*g.n + col; i < len(cells) {
			return cells[i].Element()
		}
	}
	for i := len(ui.hits) - 1; i >= 0; i-- {
		if pt.In(ui.hits[i].r) {
			return ui.hits[i].el
		}
	}
	return nil
}

func (ui *UI) Layout(gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "main.UI.Layout").End()

	ui.surface.Update(gtx.Queue)
	ui.doc.SetViewport(gtx.Constraints.Max)
	animating := ui.pad.Tick(gtx.Now)

	size := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, colorBackground, clip.Rect{Max: size}.Op())

	// The surface's area is the parent of all other input areas, so it sees
	// pointer events even where the size input handles them too.
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	ui.surface.Add(gtx.Ops)

	ui.hits = ui.hits[:0]
	gap := gtx.Dp(8)
	y := gap

	// Palette
	swatch := gtx.Dp(48)
	x := gap
	for i, el := range ui.pad.Swatches() {
		r := image.Rect(x, y, x+swatch, y+swatch)
		ui.layoutSwatch(gtx, r, sketch.Brushes[i], el)
		ui.hits = append(ui.hits, hit{r, el})
		x += swatch + gap
	}
	y += swatch + gap

	// Size presets, reset button and status
	btnH := gtx.Dp(32)
	btnW := gtx.Dp(48)
	x = gap
	for i, el := range ui.pad.Presets() {
		r := image.Rect(x, y, x+btnW, y+btnH)
		selected := ui.pad.Boxes() == sketch.Presets[i]
		ui.layoutButton(gtx, r, strconv.Itoa(sketch.Presets[i]), el, selected)
		x += btnW + gap
	}
	r := image.Rect(x, y, x+btnW*3/2, y+btnH)
	ui.layoutSizeInput(gtx, r)
	x += r.Dx() + gap
	r = image.Rect(x, y, x+btnW*3/2, y+btnH)
	ui.layoutButton(gtx, r, "Reset", ui.pad.ResetButton(), false)
	x += r.Dx() + gap
	n := ui.pad.Boxes()
	status := ui.printer.Sprintf("%d×%d, %d cells, %s", n, n, n*n, ui.pad.Brush)
	ui.label(gtx, image.Rect(x, y, size.X-gap, y+btnH), status, colorText, text.Start)
	y += btnH + gap

	ui.layoutGrid(gtx, image.Rect(gap, y, size.X-gap, size.Y-gap))

	if animating {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	return layout.Dimensions{Size: size}
}

func (ui *UI) layoutSwatch(gtx layout.Context, r image.Rectangle, b sketch.Brush, el *dom.Element) {
	defer rtrace.StartRegion(context.Background(), "main.UI.layoutSwatch").End()

	if _, progress, ok := ui.pad.Animation(el, gtx.Now); ok {
		// Grow around the center.
		s := bounceScale(progress)
		d := int(float32(r.Dx())*(s-1)) / 2
		r = r.Inset(-d)
	}
	if ui.pad.Brush == b {
		paint.FillShape(gtx.Ops, colorSelected, clip.Rect(r.Inset(-gtx.Dp(3))).Op())
	}

	switch b {
	case sketch.BrushRainbow:
		const bands = 6
		w := r.Dx()
		for i := 0; i < bands; i++ {
			band := r
			band.Min.X = r.Min.X + w*i/bands
			band.Max.X = r.Min.X + w*(i+1)/bands
			paint.FillShape(gtx.Ops, mycolor.HSL(float32(i*360/bands), 100, 50), clip.Rect(band).Op())
		}
	case sketch.BrushLighten, sketch.BrushDarken:
		f := float32(1.6)
		if b == sketch.BrushDarken {
			f = 0.4
		}
		base := mycolor.HSL(30, 40, 50)
		top, bottom := r, r
		top.Max.Y = r.Min.Y + r.Dy()/2
		bottom.Min.Y = top.Max.Y
		paint.FillShape(gtx.Ops, base, clip.Rect(top).Op())
		paint.FillShape(gtx.Ops, mycolor.Brightness(base, f), clip.Rect(bottom).Op())
	case sketch.BrushWhite:
		paint.FillShape(gtx.Ops, colorGridBorder, clip.Rect(r).Op())
		paint.FillShape(gtx.Ops, mycolor.White, clip.Rect(r.Inset(1)).Op())
	default:
		paint.FillShape(gtx.Ops, mycolor.Black, clip.Rect(r).Op())
	}
}

func (ui *UI) layoutButton(gtx layout.Context, r image.Rectangle, label string, el *dom.Element, selected bool) {
	defer rtrace.StartRegion(context.Background(), "main.UI.layoutButton").End()

	bg := colorButton
	if selected {
		bg = colorSelected
	}
	paint.FillShape(gtx.Ops, bg, clip.Rect(r).Op())
	if name, progress, ok := ui.pad.Animation(el, gtx.Now); ok && name == sketch.AnimationFlash && flashing(progress) {
		c := colorFlash
		c.A = fade(progress)
		paint.FillShape(gtx.Ops, c, clip.Rect(r).Op())
	}
	ui.label(gtx, r, label, colorText, text.Middle)
	ui.hits = append(ui.hits, hit{r, el})
}

func (ui *UI) layoutSizeInput(gtx layout.Context, r image.Rectangle) {
	defer rtrace.StartRegion(context.Background(), "main.UI.layoutSizeInput").End()

	for _, ev := range ui.sizeInput.Events() {
		if ev, ok := ev.(widget.SubmitEvent); ok {
			ui.submitSize(ev.Text)
		}
	}

	paint.FillShape(gtx.Ops, colorGridBorder, clip.Rect(r).Op())
	paint.FillShape(gtx.Ops, mycolor.White, clip.Rect(r.Inset(1)).Op())
	inner := r.Inset(gtx.Dp(4))
	if ui.sizeInput.Len() == 0 {
		ui.label(gtx, inner, "cells", colorGridBorder, text.Start)
	}
	ui.hits = append(ui.hits, hit{r, ui.pad.Form()})

	defer clip.Rect(r).Push(gtx.Ops).Pop()
	defer op.Offset(inner.Min).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(inner.Size())
	selection := colorSelected
	selection.A = 0x60
	ui.sizeInput.Layout(gtx, ui.shaper, font.Font{}, unit.Sp(14), textMaterial(gtx, colorText), textMaterial(gtx, selection))
}

// submitSize hands the size input's text to the sketch pad's form, the way
// submitting the form would.
func (ui *UI) submitSize(s string) {
	ui.pad.Form().Dispatch(&dom.Event{Type: dom.TypeSubmit, Detail: s, Bubbles: true, Cancelable: true})
	ui.sizeInput.SetText("")
}

func (ui *UI) layoutGrid(gtx layout.Context, avail image.Rectangle) {
	defer rtrace.StartRegion(context.Background(), "main.UI.layoutGrid").End()

	n := ui.pad.Boxes()
	side := min(avail.Dx(), avail.Dy())
	cell := max(side/n, 1)
	side = cell * n
	origin := image.Pt(avail.Min.X+(avail.Dx()-side)/2, avail.Min.Y)
	ui.grid = gridArea{
		r:    image.Rectangle{Min: origin, Max: origin.Add(image.Pt(side, side))},
		cell: cell,
		n:    n,
	}

	paint.FillShape(gtx.Ops, colorGridBorder, clip.Rect(ui.grid.r.Inset(-1)).Op())
	for i, c := range ui.pad.Cells() {
		row, col := i/n, i%n
		cr := image.Rect(0, 0, cell, cell).Add(origin).Add(image.Pt(col*cell, row*cell))
		paint.FillShape(gtx.Ops, c.Rendered(), clip.Rect(cr).Op())
	}
}

func (ui *UI) label(gtx layout.Context, r image.Rectangle, s string, c color.NRGBA, align text.Alignment) {
	defer op.Offset(r.Min).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Constraints{Min: image.Pt(r.Dx(), 0), Max: r.Size()}

	mat := textMaterial(gtx, c)
	m := op.Record(gtx.Ops)
	dims := widget.Label{MaxLines: 1, Alignment: align}.Layout(gtx, ui.shaper, font.Font{}, unit.Sp(14), s, mat)
	call := m.Stop()

	defer op.Offset(image.Pt(0, (r.Dy()-dims.Size.Y)/2)).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

func textMaterial(gtx layout.Context, c color.NRGBA) op.CallOp {
	m := op.Record(gtx.Ops)
	paint.ColorOp{Color: c}.Add(gtx.Ops)
	return m.Stop()
}

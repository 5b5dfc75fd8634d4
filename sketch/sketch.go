// Package sketch implements a pixel-art sketch pad: a square grid of cells
// that get painted as the pointer hovers over them, with a palette of brushes
// that can be picked by clicking or swiping.
package sketch

import (
	"errors"
	"image/color"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/constraints"

	mycolor "honnef.co/go/swipepad/color"
	"honnef.co/go/swipepad/dom"
	"honnef.co/go/swipepad/swipe"
)

const (
	DefaultBoxes = 8
	// MaxBoxes caps the number of cells per side.
	MaxBoxes = 128

	filterStep = 0.2
	maxFilter  = 2

	AnimationDuration = time.Second
)

// Animations applied to elements, as animate__<name> classes.
const (
	AnimationBounce = "bounce"
	AnimationFlash  = "flash"
)

// Presets are the grid sizes offered next to the free-form size input.
var Presets = []int{8, 16, 32, 64}

type Cell struct {
	Color color.NRGBA
	// Filter is the brightness multiplier, between 0 and 2.
	Filter  float32
	Checked bool

	el *dom.Element
}

func (c *Cell) Element() *dom.Element { return c.el }

// Rendered returns the cell's color with its brightness filter applied.
func (c *Cell) Rendered() color.NRGBA {
	return mycolor.Brightness(c.Color, c.Filter)
}

type animation struct {
	name  string
	start time.Time
}

type Pad struct {
	Brush Brush
	// Now returns the current time. It is used to time animations.
	Now func() time.Time

	doc      *dom.Document
	rng      *rand.Rand
	palette  *dom.Element
	swatches []*dom.Element
	defaults *dom.Element
	presets  []*dom.Element
	form     *dom.Element
	reset    *dom.Element
	grid     *dom.Element
	boxes    int
	cells    []Cell
	anims    map[*dom.Element]animation
}

// New builds the sketch pad's elements in doc's body. rng is used by the
// rainbow brush.
func New(doc *dom.Document, rng *rand.Rand) *Pad {
	p := &Pad{
		Brush: BrushBlack,
		Now:   time.Now,
		doc:   doc,
		rng:   rng,
		anims: map[*dom.Element]animation{},
	}

	p.palette = doc.CreateElement("div")
	p.palette.AddClass("palette")
	for _, b := range Brushes {
		sw := doc.CreateElement("div")
		sw.AddClass("color")
		sw.SetData("color", b.String())
		label := doc.CreateElement("span")
		label.SetData("inner", "true")
		sw.Append(label)
		sw.AddEventListener(dom.TypeClick, p.pickColor)
		sw.AddEventListener(swipe.EventSwiped, p.pickColor)
		p.palette.Append(sw)
		p.swatches = append(p.swatches, sw)
	}

	controls := doc.CreateElement("div")
	controls.AddClass("controls")
	p.defaults = doc.CreateElement("select")
	p.defaults.AddClass("defaults")
	for _, n := range Presets {
		opt := doc.CreateElement("option")
		opt.SetAttr("value", strconv.Itoa(n))
		p.defaults.Append(opt)
		p.presets = append(p.presets, opt)
	}
	// Clicking an option selects it, like a browser would.
	p.defaults.AddEventListener(dom.TypeClick, func(ev *dom.Event) {
		if v, ok := ev.Target.Attr("value"); ok && ev.Target != p.defaults {
			p.defaults.Dispatch(&dom.Event{Type: dom.TypeChange, Detail: v, Bubbles: true})
		}
	})
	p.defaults.AddEventListener(dom.TypeChange, p.onSizeInput)
	p.form = doc.CreateElement("form")
	p.form.AddEventListener(dom.TypeSubmit, func(ev *dom.Event) {
		ev.PreventDefault()
		p.onSizeInput(ev)
	})
	p.reset = doc.CreateElement("button")
	p.reset.AddClass("reset")
	p.reset.AddEventListener(dom.TypeClick, func(ev *dom.Event) {
		p.Reset()
	})
	controls.Append(p.defaults)
	controls.Append(p.form)
	controls.Append(p.reset)

	p.grid = doc.CreateElement("div")
	p.grid.SetID("sketch-box")

	doc.Body().Append(p.palette)
	doc.Body().Append(controls)
	doc.Body().Append(p.grid)

	p.SetBoxes(DefaultBoxes)
	return p
}

func (p *Pad) Swatches() []*dom.Element  { return p.swatches }
func (p *Pad) Presets() []*dom.Element   { return p.presets }
func (p *Pad) Form() *dom.Element        { return p.form }
func (p *Pad) ResetButton() *dom.Element { return p.reset }
func (p *Pad) Grid() *dom.Element        { return p.grid }

// Boxes returns the number of cells per side.
func (p *Pad) Boxes() int { return p.boxes }

// Cells returns the cells in row-major order.
func (p *Pad) Cells() []Cell { return p.cells }

func (p *Pad) pickColor(ev *dom.Event) {
	b, ok := ParseBrush(dom.NearestAttribute(ev.Target, "data-color", ""))
	if !ok {
		return
	}
	p.Brush = b
	p.animate(ev.Target, AnimationBounce)
}

func (p *Pad) onSizeInput(ev *dom.Event) {
	s, _ := ev.Detail.(string)
	p.SetMultiplier(s)
}

// SetMultiplier rebuilds the grid from user input. Decimal and exponent
// forms are accepted and truncated toward zero. Input that isn't a positive
// number results in a single cell.
func (p *Pad) SetMultiplier(s string) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if (err != nil && !errors.Is(err, strconv.ErrRange)) || math.IsNaN(f) {
		f = 1
	}
	// Clamp before converting; converting huge floats to int is undefined.
	f = clamp(f, 0, MaxBoxes)
	n := int(f)
	if n == 0 {
		n = 1
	}
	p.SetBoxes(n)
}

// SetBoxes replaces the grid with n×n white cells. n is clamped to
// [1, MaxBoxes].
func (p *Pad) SetBoxes(n int) {
	n = clamp(n, 1, MaxBoxes)
	p.grid.RemoveChildren()
	p.boxes = n
	p.cells = make([]Cell, n*n)
	for i := range p.cells {
		el := p.doc.CreateElement("div")
		el.AddClass("box")
		p.grid.Append(el)
		p.cells[i] = Cell{
			Color:  mycolor.White,
			Filter: 1,
			el:     el,
		}
		el.AddEventListener(dom.TypeMouseOver, func(*dom.Event) {
			p.Paint(i)
		})
	}
}

// Paint applies the current brush to the i'th cell.
func (p *Pad) Paint(i int) {
	if i < 0 || i >= len(p.cells) {
		return
	}
	c := &p.cells[i]
	switch p.Brush {
	case BrushBlack:
		c.Color = mycolor.Black
		c.Filter = 1
		c.Checked = false
	case BrushWhite:
		c.Color = mycolor.White
		c.Filter = 1
		c.Checked = false
	case BrushRainbow:
		h := p.rng.Intn(361)
		s := p.rng.Intn(101)
		l := p.rng.Intn(101)
		c.Color = mycolor.HSL(float32(h), float32(s), float32(l))
		c.Filter = 1
		c.Checked = true
	case BrushLighten:
		c.Filter = clamp(c.Filter+filterStep, 0, maxFilter)
	case BrushDarken:
		c.Filter = clamp(c.Filter-filterStep, 0, maxFilter)
	}
	if c.Checked {
		c.el.SetData("checked", "true")
	} else {
		c.el.DeleteData("checked")
	}
}

// Reset paints every cell white.
func (p *Pad) Reset() {
	for i := range p.cells {
		c := &p.cells[i]
		c.Color = mycolor.White
		c.Filter = 1
		c.Checked = false
		c.el.DeleteData("checked")
	}
	p.animate(p.reset, AnimationFlash)
}

// animate starts an animation on el, or on its parent if el is an inner
// label.
func (p *Pad) animate(el *dom.Element, name string) {
	if v, _ := el.Data("inner"); v == "true" && el.Parent() != nil {
		el = el.Parent()
	}
	if old, ok := p.anims[el]; ok {
		el.RemoveClass("animate__" + old.name)
	}
	el.AddClass("animate__" + name)
	p.anims[el] = animation{name: name, start: p.Now()}
}

// Tick ends animations that have run their course. It reports whether any
// animations are still running.
func (p *Pad) Tick(now time.Time) bool {
	for el, anim := range p.anims {
		if now.Sub(anim.start) >= AnimationDuration {
			el.RemoveClass("animate__" + anim.name)
			delete(p.anims, el)
		}
	}
	return len(p.anims) > 0
}

// Animation returns the animation running on el and its progress in [0, 1].
func (p *Pad) Animation(el *dom.Element, now time.Time) (name string, progress float64, ok bool) {
	anim, ok := p.anims[el]
	if !ok {
		return "", 0, false
	}
	progress = float64(now.Sub(anim.start)) / float64(AnimationDuration)
	return anim.name, clamp(progress, 0, 1), true
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

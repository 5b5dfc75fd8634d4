package swipe

import (
	"image"
	"math"
	"time"

	"honnef.co/go/swipepad/dom"
)

// Attributes consulted on the element a swipe started on and its ancestors.
const (
	AttrThreshold = "data-swipe-threshold"
	AttrUnit      = "data-swipe-unit"
	AttrTimeout   = "data-swipe-timeout"
	AttrIgnore    = "data-swipe-ignore"
)

type Unit uint8

const (
	// Px interprets the threshold in pixels.
	Px Unit = iota
	// Vh interprets the threshold as a percentage of the viewport's height.
	Vh
	// Vw interprets the threshold as a percentage of the viewport's width.
	Vw
)

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	case Vh:
		return "vh"
	case Vw:
		return "vw"
	default:
		return "Unit(?)"
	}
}

// ParseUnit parses px, vh and vw. Anything else is reported as px and false.
func ParseUnit(s string) (Unit, bool) {
	switch s {
	case "px":
		return Px, true
	case "vh":
		return Vh, true
	case "vw":
		return Vw, true
	default:
		return Px, false
	}
}

type Config struct {
	// Threshold is the distance a swipe has to cover along its dominant axis,
	// in units of Unit.
	Threshold int
	Unit      Unit
	// Timeout is the maximum duration of a swipe.
	Timeout time.Duration
}

var DefaultConfig = Config{
	Threshold: 20,
	Unit:      Px,
	Timeout:   500 * time.Millisecond,
}

// ResolveConfig reads the swipe configuration for el from its nearest
// ancestor carrying each attribute. Values that can't be parsed fall back to
// the defaults. Nothing is cached; every call walks the tree again.
func ResolveConfig(el *dom.Element) Config {
	cfg := DefaultConfig
	if n, ok := parseInt(dom.NearestAttribute(el, AttrThreshold, "")); ok && n >= 0 {
		cfg.Threshold = n
	}
	cfg.Unit, _ = ParseUnit(dom.NearestAttribute(el, AttrUnit, DefaultConfig.Unit.String()))
	if n, ok := parseInt(dom.NearestAttribute(el, AttrTimeout, "")); ok && n >= 0 {
		cfg.Timeout = time.Duration(n) * time.Millisecond
	}
	return cfg
}

// PixelThreshold returns the threshold in pixels, scaling viewport-relative
// units by viewport.
func (cfg Config) PixelThreshold(viewport image.Point) int {
	var base int
	switch cfg.Unit {
	case Vh:
		base = viewport.Y
	case Vw:
		base = viewport.X
	default:
		return cfg.Threshold
	}
	return int(math.Floor(float64(cfg.Threshold)/100*float64(base) + 0.5))
}

// ignored reports whether el opted out of swipe tracking. Unlike the other
// attributes, this one isn't inherited.
func ignored(el *dom.Element) bool {
	v, _ := el.Attr(AttrIgnore)
	return v == "true"
}

// parseInt parses the leading base-10 integer of s, skipping leading
// whitespace and ignoring trailing garbage, so that "30px" is 30.
func parseInt(s string) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	start := i
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n > (math.MaxInt32-9)/10 {
			// Saturate instead of overflowing.
			n = math.MaxInt32
			continue
		}
		n = n*10 + int(s[i]-'0')
	}
	if i == start {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

package sketch

type Brush uint8

const (
	BrushBlack Brush = iota
	BrushRainbow
	BrushWhite
	BrushLighten
	BrushDarken
	brushLast
)

var brushNames = [...]string{
	BrushBlack:   "black",
	BrushRainbow: "rainbow",
	BrushWhite:   "white",
	BrushLighten: "lighten",
	BrushDarken:  "darken",
}

// Brushes lists all brushes in palette order.
var Brushes = []Brush{BrushBlack, BrushRainbow, BrushWhite, BrushLighten, BrushDarken}

func (b Brush) String() string {
	if b >= brushLast {
		return "Brush(?)"
	}
	return brushNames[b]
}

func ParseBrush(s string) (Brush, bool) {
	for i, name := range brushNames {
		if name == s {
			return Brush(i), true
		}
	}
	return 0, false
}

package icon

import (
	"image/color"

	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any icon knowledge.
// In particular, the transformation matrix is already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`
	Line(b fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor sets the color for the current path
	SetColor(c color.Color)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

// Driver is implemented by the output backends (raster, pdf, svg).
type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every fill or stroke.
	// If the `willXXX` boolean is false, the returned drawer may be nil.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Miter JoinMode = iota
	Round
	Bevel
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "Round"
	case Bevel:
		return "Bevel"
	case Miter:
		return "Miter"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	NilCap CapMode = iota // default value
	ButtCap
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case NilCap:
		return "NilCap"
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "<unknown CapMode>"
	}
}

type JoinOptions struct {
	MiterLimit   fixed.Int26_6 // the miter cutoff value for the Miter join mode
	LineJoin     JoinMode
	TrailLineCap CapMode // capping functions for leading and trailing line ends. If one is nil, the other function is used at both ends.
	LeadLineCap  CapMode
}

type StrokeOptions struct {
	LineWidth fixed.Int26_6 // width of the line, in device space
	Join      JoinOptions
}

// Caps returns the lead and trail caps, resolving NilCap
// to the other one, and to ButtCap if both are nil.
func (o JoinOptions) Caps() (lead, trail CapMode) {
	lead, trail = o.LeadLineCap, o.TrailLineCap
	if trail == NilCap {
		trail = lead
	}
	if lead == NilCap {
		lead = trail
	}
	if lead == NilCap {
		lead, trail = ButtCap, ButtCap
	}
	return lead, trail
}

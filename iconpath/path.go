// Implements an abstract representation of
// icon outlines, which can then be replayed
// into painting drivers.
// Points are stored in device space, as 26.6 fixed point values.
package iconpath

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Adder is implemented by types that can accumulate path commands,
// such as the rasterx fillers and strokers or the pdf drivers.
type Adder interface {
	// Start starts a new curve at the given point.
	Start(a fixed.Point26_6)
	// Line adds a line segment to the path
	Line(b fixed.Point26_6)
	// Closes the path to the start point if closeLoop is true
	Stop(closeLoop bool)
}

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathClose
)

// Operation groups the different path commands
type Operation interface {
	command() pathCommand
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type Close struct{}

func (MoveTo) command() pathCommand { return pathMoveTo }
func (LineTo) command() pathCommand { return pathLineTo }
func (Close) command() pathCommand  { return pathClose }

// Path describes a sequence of basic operations.
// The zero value is an empty path, ready to use.
type Path []Operation

// ToSVGPath returns a string representation of the path,
// suitable for the `d` attribute of an SVG path element.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// HasCurrentPoint returns true if a sub-path has been started.
func (p Path) HasCurrentPoint() bool {
	return len(p) > 0
}

// AddTo replays the Path p into q.
func (p Path) AddTo(q Adder) {
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			q.Stop(false) // implicit close if currently in path.
			q.Start(fixed.Point26_6(op))
		case LineTo:
			q.Line(fixed.Point26_6(op))
		case Close:
			q.Stop(true)
		}
	}
	q.Stop(false)
}

// ToFixedP converts two floats to a fixed point.
func ToFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// FixedTof converts a fixed point to two floats.
func FixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

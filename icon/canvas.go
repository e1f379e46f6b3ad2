package icon

import (
	"image/color"
	"math"

	"github.com/sanaviron/iconhelper/iconpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Canvas is the 2D drawing surface icons are drawn on.
// Coordinates are in user space: they are transformed by the
// current matrix when added to the path, as in cairo.
type Canvas interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	// Stroke and Fill paint the current path, then clear it.
	Stroke()
	Fill()
	// FillPreserve fills the current path and keeps it.
	FillPreserve()

	SetLineWidth(width float64)
	SetLineCap(c CapMode)
	// SetSourceRGBA sets the paint color. Channels are in [0, 1].
	SetSourceRGBA(r, g, b, a float64)

	Translate(x, y float64)
	// Rotate rotates the user space by `angle` radians.
	Rotate(angle float64)
}

var _ Canvas = (*Context)(nil) // assert interface conformance

// Context implements Canvas by forwarding
// transformed paths to a Driver.
type Context struct {
	driver Driver

	matrix     rasterx.Matrix2D
	path       iconpath.Path // in device space
	color      color.NRGBA
	lineWidth  float64
	lineCap    CapMode
	lineJoin   JoinMode
	miterLimit float64
}

// NewContext returns a context drawing with `driver`,
// with an identity transform, an opaque black source,
// a line width of 2 and butt caps.
func NewContext(driver Driver) *Context {
	return &Context{
		driver:     driver,
		matrix:     rasterx.Identity,
		color:      color.NRGBA{A: 0xff},
		lineWidth:  2,
		lineCap:    ButtCap,
		lineJoin:   Miter,
		miterLimit: 10,
	}
}

// Matrix returns the current transformation matrix.
func (c *Context) Matrix() rasterx.Matrix2D { return c.matrix }

// Color returns the current source color.
func (c *Context) Color() color.NRGBA { return c.color }

func (c *Context) point(x, y float64) fixed.Point26_6 {
	return iconpath.ToFixedP(c.matrix.Transform(x, y))
}

func (c *Context) MoveTo(x, y float64) {
	c.path.Start(c.point(x, y))
}

// LineTo adds a segment to the current sub-path.
// Without current point, it behaves as MoveTo.
func (c *Context) LineTo(x, y float64) {
	if !c.path.HasCurrentPoint() {
		c.MoveTo(x, y)
		return
	}
	c.path.Line(c.point(x, y))
}

func (c *Context) ClosePath() {
	if c.path.HasCurrentPoint() {
		c.path.Stop(true)
	}
}

func (c *Context) SetLineWidth(width float64) { c.lineWidth = width }

func (c *Context) SetLineCap(cp CapMode) { c.lineCap = cp }

func (c *Context) SetSourceRGBA(r, g, b, a float64) {
	c.color = color.NRGBA{R: toByte(r), G: toByte(g), B: toByte(b), A: toByte(a)}
}

func toByte(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(v*255 + 0.5)
}

func (c *Context) Translate(x, y float64) {
	c.matrix = c.matrix.Translate(x, y)
}

func (c *Context) Rotate(angle float64) {
	c.matrix = c.matrix.Rotate(angle)
}

// scale returns the uniform scale factor of the current matrix,
// used to convert the line width to device space.
func (c *Context) scale() float64 {
	m := c.matrix
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

func (c *Context) Fill() {
	c.FillPreserve()
	c.path.Clear()
}

func (c *Context) FillPreserve() {
	if !c.path.HasCurrentPoint() {
		return
	}
	filler, _ := c.driver.SetupDrawers(true, false)
	if filler == nil {
		return
	}
	filler.Clear()
	filler.SetWinding(true)
	c.path.AddTo(filler)
	filler.SetColor(c.color)
	filler.Draw()
}

func (c *Context) Stroke() {
	defer c.path.Clear()
	if !c.path.HasCurrentPoint() {
		return
	}
	_, stroker := c.driver.SetupDrawers(false, true)
	if stroker == nil {
		return
	}
	stroker.Clear()
	stroker.SetStrokeOptions(StrokeOptions{
		LineWidth: fixed.Int26_6(c.lineWidth * c.scale() * 64),
		Join: JoinOptions{
			MiterLimit:   fixed.Int26_6(c.miterLimit * 64),
			LineJoin:     c.lineJoin,
			LeadLineCap:  c.lineCap,
			TrailLineCap: c.lineCap,
		},
	})
	c.path.AddTo(stroker)
	stroker.SetColor(c.color)
	stroker.Draw()
}

// Implements an SVG backend to export icons,
// by wrapping github.com/ajstarks/svgo.
// Every fill or stroke becomes one path element.
package iconsvg

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/sanaviron/iconhelper/icon"
	"github.com/sanaviron/iconhelper/iconpath"
)

var _ icon.Driver = Renderer{} // assert interface conformance

type Renderer struct {
	canvas *svg.SVG
}

// NewRenderer returns a renderer writing path elements to `canvas`,
// which must already be started.
func NewRenderer(canvas *svg.SVG) Renderer {
	return Renderer{canvas: canvas}
}

// Write renders the icon as a width x height SVG document.
func Write(w io.Writer, ic *icon.Icon, width, height, border int) error {
	if err := icon.CheckSize(width, height); err != nil {
		return err
	}
	var buf bytes.Buffer // so that nothing is written on error
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Title(ic.Name())
	if err := ic.Draw(icon.NewContext(NewRenderer(canvas)), width, height, border); err != nil {
		return err
	}
	canvas.End()
	icon.Logger().Debug("icon written as svg", "icon", ic.Name(), "width", width, "height", height)
	_, err := buf.WriteTo(w)
	return err
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (icon.Filler, icon.Stroker) {
	var (
		f icon.Filler
		s icon.Stroker
	)
	if willFill {
		f = &filler{pather: pather{canvas: r.canvas}, useNonZeroWinding: true}
	}
	if willStroke {
		s = &stroker{pather: pather{canvas: r.canvas}}
	}
	return f, s
}

// accumulates the path data, in device space
type pather struct {
	iconpath.Path
	canvas *svg.SVG
	color  color.NRGBA
}

type filler struct {
	pather
	useNonZeroWinding bool
}

type stroker struct {
	pather
	options icon.StrokeOptions
}

func (p *pather) SetColor(c color.Color) {
	p.color = color.NRGBAModel.Convert(c).(color.NRGBA)
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func opacity(c color.NRGBA) string {
	return fmt.Sprintf("%.3g", float64(c.A)/255)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (f *filler) Draw() {
	rule := "evenodd"
	if f.useNonZeroWinding {
		rule = "nonzero"
	}
	f.canvas.Path(f.ToSVGPath(), fmt.Sprintf("fill:%s;fill-opacity:%s;fill-rule:%s;stroke:none",
		rgb(f.color), opacity(f.color), rule))
}

func (s *stroker) SetStrokeOptions(options icon.StrokeOptions) {
	s.options = options
}

var (
	capToStyle = [...]string{
		icon.NilCap:    "butt",
		icon.ButtCap:   "butt",
		icon.SquareCap: "square",
		icon.RoundCap:  "round",
	}

	joinToStyle = [...]string{
		icon.Miter: "miter",
		icon.Round: "round",
		icon.Bevel: "bevel",
	}
)

func (s *stroker) Draw() {
	_, trail := s.options.Join.Caps()
	s.canvas.Path(s.ToSVGPath(), fmt.Sprintf(
		"fill:none;stroke:%s;stroke-opacity:%s;stroke-width:%g;stroke-linecap:%s;stroke-linejoin:%s;stroke-miterlimit:%g",
		rgb(s.color), opacity(s.color), float64(s.options.LineWidth)/64,
		capToStyle[trail], joinToStyle[s.options.Join.LineJoin], float64(s.options.Join.MiterLimit)/64))
}

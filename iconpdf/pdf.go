// Implements a PDF backend to render icons,
// by wrapping github.com/jung-kurt/gofpdf.
package iconpdf

import (
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/sanaviron/iconhelper/icon"
	"github.com/sanaviron/iconhelper/iconpath"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ icon.Driver  = Renderer{}
	_ icon.Filler  = (*filler)(nil)
	_ icon.Stroker = (*stroker)(nil)
)

type Renderer struct {
	pdf *gofpdf.Fpdf
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *gofpdf.Fpdf
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

// NewDocument returns a one page document, whose page
// measures width x height points, without margins.
func NewDocument(width, height int) (*gofpdf.Fpdf, error) {
	if err := icon.CheckSize(width, height); err != nil {
		return nil, err
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf, nil
}

// Render draws the icon on a new document.
func Render(ic *icon.Icon, width, height, border int) (*gofpdf.Fpdf, error) {
	pdf, err := NewDocument(width, height)
	if err != nil {
		return nil, err
	}
	if err = ic.Draw(icon.NewContext(NewRenderer(pdf)), width, height, border); err != nil {
		return nil, err
	}
	if err = pdf.Error(); err != nil {
		return nil, err
	}
	icon.Logger().Debug("icon written as pdf", "icon", ic.Name(), "width", width, "height", height)
	return pdf, nil
}

// Write renders the icon and writes the document to `w`.
func Write(w io.Writer, ic *icon.Icon, width, height, border int) error {
	pdf, err := Render(ic, width, height, border)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (icon.Filler, icon.Stroker) {
	var (
		f icon.Filler
		s icon.Stroker
	)
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}, useNonZeroWinding: true}
	}
	if willStroke {
		s = &stroker{pather: pather{pdf: r.pdf}}
	}
	return f, s
}

func (p *pather) Clear() {}

func (p *pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(iconpath.FixedTof(a))
}

func (p *pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(iconpath.FixedTof(b))
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (f *filler) SetColor(c color.Color) {
	nc := toNRGBA(c)
	f.pdf.SetFillColor(int(nc.R), int(nc.G), int(nc.B))
	f.pdf.SetAlpha(float64(nc.A)/255, "")
}

func (f *filler) Draw() {
	styleStr := "F*"
	if f.useNonZeroWinding {
		styleStr = "F"
	}
	f.pdf.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
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

// SetStrokeOptions ignores the lead cap: pdf uses one cap style for both ends.
func (s *stroker) SetStrokeOptions(options icon.StrokeOptions) {
	_, trail := options.Join.Caps()
	s.pdf.SetLineWidth(float64(options.LineWidth) / 64)
	s.pdf.SetLineCapStyle(capToStyle[trail])
	s.pdf.SetLineJoinStyle(joinToStyle[options.Join.LineJoin])
}

func (s *stroker) SetColor(c color.Color) {
	nc := toNRGBA(c)
	s.pdf.SetDrawColor(int(nc.R), int(nc.G), int(nc.B))
	s.pdf.SetAlpha(float64(nc.A)/255, "")
}

func (s *stroker) Draw() {
	s.pdf.DrawPath("D")
}

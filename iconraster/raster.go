// Implements a raster backend to render icons,
// by wrapping rasterx.
package iconraster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/sanaviron/iconhelper/icon"
	"github.com/srwiley/rasterx"
)

var _ icon.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer paints on an RGBA image.
type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer drawing on `img`.
// The filler and the dasher use their own rasterx.ScannerGV,
// both compositing onto `img`.
func NewRenderer(img *image.RGBA) *Renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	return &Renderer{
		dasher: rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, img, img.Bounds())),
		filler: rasterx.NewFiller(w, h, rasterx.NewScannerGV(w, h, img, img.Bounds())),
	}
}

// NewCanvas allocates a transparent image of the given size
// and returns a canvas drawing on it.
func NewCanvas(width, height int) (*icon.Context, *image.RGBA, error) {
	if err := icon.CheckSize(width, height); err != nil {
		return nil, nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return icon.NewContext(NewRenderer(img)), img, nil
}

// Render draws the icon on a new image and returns it.
func Render(ic *icon.Icon, width, height, border int) (*image.RGBA, error) {
	ctx, img, err := NewCanvas(width, height)
	if err != nil {
		return nil, err
	}
	if err = ic.Draw(ctx, width, height, border); err != nil {
		return nil, err
	}
	icon.Logger().Debug("icon rasterized", "icon", ic.Name(), "width", width, "height", height)
	return img, nil
}

// EncodePNG writes `img` to `w` in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (icon.Filler, icon.Stroker) {
	var (
		f icon.Filler
		s icon.Stroker
	)
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = dasher{rd.dasher}
	}
	return f, s
}

type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(c color.Color) {
	f.Filler.SetColor(c)
}

type dasher struct {
	*rasterx.Dasher
}

func (d dasher) SetColor(c color.Color) {
	d.Dasher.SetColor(c)
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		icon.Miter: rasterx.Miter,
		icon.Round: rasterx.Round,
		icon.Bevel: rasterx.Bevel,
	}

	capToFunc = [...]rasterx.CapFunc{
		icon.NilCap:    rasterx.ButtCap,
		icon.ButtCap:   rasterx.ButtCap,
		icon.SquareCap: rasterx.SquareCap,
		icon.RoundCap:  rasterx.RoundCap,
	}
)

func (d dasher) SetStrokeOptions(options icon.StrokeOptions) {
	lead, trail := options.Join.Caps()
	d.SetStroke(
		options.LineWidth, options.Join.MiterLimit, capToFunc[lead],
		capToFunc[trail], rasterx.FlatGap,
		joinToJoin[options.Join.LineJoin], nil, 0,
	)
}

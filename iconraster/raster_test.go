package iconraster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/sanaviron/iconhelper/icon"
)

const size, border = icon.DefaultWidth, icon.DefaultBorder

func render(t *testing.T, v icon.Variant) *image.RGBA {
	t.Helper()
	img, err := Render(v.Icon(), size, size, border)
	if err != nil {
		t.Fatalf("can't raster icon %s: %s", v, err)
	}
	return img
}

type colorClass uint8

const (
	transparent colorClass = iota
	blue
	black
	green
	red
	other
)

func (c colorClass) String() string {
	return [...]string{"transparent", "blue", "black", "green", "red", "other"}[c]
}

// classify returns the dominant color of an opaque enough pixel
func classify(c color.RGBA) colorClass {
	switch {
	case c.A < 0x40:
		return transparent
	case c.A < 0xc0:
		return other
	case c.B > 0xc0 && c.R < 0x40 && c.G < 0x40:
		return blue
	case c.R > 0xc0 && c.G < 0x40 && c.B < 0x40:
		return red
	case c.G > 0x80 && c.G > c.R+0x30 && c.G > c.B+0x30:
		return green
	case c.R < 0x40 && c.G < 0x40 && c.B < 0x40:
		return black
	default:
		return other
	}
}

func TestPixels(t *testing.T) {
	type probe struct {
		x, y int
		exp  colorClass
	}
	for _, test := range []struct {
		variant icon.Variant
		probes  []probe
	}{
		{icon.SplitHorizontal, []probe{
			{2, 31, blue}, {61, 32, blue}, {32, 27, black}, {32, 36, black}, {32, 2, transparent}, {32, 31, blue},
		}},
		{icon.AddSplitHorizontal, []probe{
			{2, 31, blue}, {32, 16, green}, {32, 48, green}, {32, 31, blue}, {2, 2, transparent},
		}},
		{icon.AddSplitVertical, []probe{
			{31, 2, blue}, {48, 31, green}, {16, 31, green}, {2, 31, transparent},
		}},
		{icon.RemoveSplitHorizontal, []probe{
			{2, 31, blue}, {32, 32, red}, {20, 20, red}, {44, 20, red}, {32, 2, transparent},
		}},
		{icon.RemoveSplitVertical, []probe{
			{31, 2, blue}, {32, 32, red}, {2, 31, transparent},
		}},
		{icon.RemoveSplitBoth, []probe{
			{2, 31, blue}, {31, 2, blue}, {32, 32, red}, {20, 20, red}, {2, 2, transparent},
		}},
	} {
		img := render(t, test.variant)
		for _, p := range test.probes {
			if got := classify(img.RGBAAt(p.x, p.y)); got != p.exp {
				t.Errorf("%s at (%d, %d): expected %s, got %s (%v)", test.variant, p.x, p.y, p.exp, got, img.RGBAAt(p.x, p.y))
			}
		}
	}
}

// the overlays are drawn on top of the split line
func TestLayering(t *testing.T) {
	base := render(t, icon.SplitHorizontal)
	for _, test := range []struct {
		variant icon.Variant
		overlay colorClass
	}{
		{icon.AddSplitHorizontal, green},
		{icon.RemoveSplitHorizontal, red},
	} {
		img := render(t, test.variant)
		covered, visible := 0, 0
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if classify(base.RGBAAt(x, y)) != blue {
					continue
				}
				switch classify(img.RGBAAt(x, y)) {
				case test.overlay:
					covered++
				case blue:
					visible++
				}
			}
		}
		if test.overlay == red && covered == 0 {
			t.Errorf("%s: the cross should cover the split line", test.variant)
		}
		if visible == 0 {
			t.Errorf("%s: the split line should remain visible", test.variant)
		}
	}
}

func TestIdempotence(t *testing.T) {
	for _, v := range icon.Variants() {
		a, b := render(t, v), render(t, v)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("%s: two renders differ", v)
		}
	}
}

// diffRatio returns the ratio of pixels with a channel differing by more than 0x30
func diffRatio(a, b *image.NRGBA) float64 {
	n := 0
	for i := 0; i < len(a.Pix); i += 4 {
		for c := 0; c < 4; c++ {
			d := int(a.Pix[i+c]) - int(b.Pix[i+c])
			if d > 0x30 || d < -0x30 {
				n++
				break
			}
		}
	}
	return float64(n) / float64(len(a.Pix)/4)
}

func TestRotation(t *testing.T) {
	for _, test := range [][2]icon.Variant{
		{icon.AddSplitHorizontal, icon.AddSplitVertical},
		{icon.RemoveSplitHorizontal, icon.RemoveSplitVertical},
	} {
		horizontal := imaging.Clone(render(t, test[0]))
		// the icon is drawn rotated clockwise: rotate it back
		vertical := imaging.Rotate90(render(t, test[1]))
		if vertical.Bounds() != horizontal.Bounds() {
			t.Fatalf("unexpected bounds %v", vertical.Bounds())
		}
		if r := diffRatio(horizontal, vertical); r > 0.01 {
			t.Errorf("%s: %.1f%% of pixels differ from %s", test[1], r*100, test[0])
		}
		if r := diffRatio(horizontal, imaging.Clone(render(t, test[1]))); r < 0.05 {
			t.Errorf("%s: should differ from %s before rotating back", test[1], test[0])
		}
	}
}

func TestInvalidSize(t *testing.T) {
	for _, s := range [][2]int{{0, 0}, {0, 64}, {64, -1}} {
		img, err := Render(icon.SplitHorizontal.Icon(), s[0], s[1], border)
		if !errors.Is(err, icon.ErrInvalidSize) {
			t.Errorf("%v: expected ErrInvalidSize, got %v", s, err)
		}
		if img != nil {
			t.Errorf("%v: no image expected", s)
		}
	}
}

func TestNoDraw(t *testing.T) {
	if _, err := Render(icon.Compose("Empty"), size, size, border); !errors.Is(err, icon.ErrNoDraw) {
		t.Errorf("expected ErrNoDraw, got %v", err)
	}
}

func TestEncodePNG(t *testing.T) {
	for _, v := range icon.Variants() {
		var buf bytes.Buffer
		if err := EncodePNG(&buf, render(t, v)); err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("%s: invalid png: %s", v, err)
		}
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("%s: unexpected bounds %v", v, b)
		}
	}
}

func TestOtherSizes(t *testing.T) {
	img, err := Render(icon.RemoveSplitBoth.Icon(), 128, 128, 8)
	if err != nil {
		t.Fatal(err)
	}
	if got := classify(img.RGBAAt(64, 64)); got != red {
		t.Errorf("expected a red center, got %s", got)
	}
	if got := classify(img.RGBAAt(2, 63)); got != blue {
		t.Errorf("expected a blue split line, got %s", got)
	}
}

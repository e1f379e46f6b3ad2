// Provides the procedural icons of the split editor:
// horizontal and vertical split lines with "add" arrows or "remove" crosses.
// Icons are ordered lists of layers drawn on a Canvas, which
// is then consumed by an output backend.
// See for example iconhelper/iconraster or iconhelper/iconpdf .
package icon

import (
	"errors"
	"fmt"
	"strings"
)

// Default icon dimensions, in pixels.
const (
	DefaultWidth  = 64
	DefaultHeight = 64
	DefaultBorder = 4
)

var (
	// ErrNoDraw is returned when drawing an icon without layers.
	ErrNoDraw = errors.New("icon: no draw layer")
	// ErrInvalidSize is returned for non-positive canvas dimensions.
	ErrInvalidSize = errors.New("icon: invalid canvas size")
)

// Layer draws one part of an icon. Layers of an icon share the canvas,
// so style and transform set by a layer remain for the following ones.
type Layer func(c Canvas, width, height, border int)

// Icon is a named, ordered list of layers.
// The first layer is drawn first, so later layers are never covered.
type Icon struct {
	name   string
	layers []Layer
}

// Compose returns an icon drawing `layers` in order.
// `name` is the icon display name, such as "AddSplitHorizontally".
func Compose(name string, layers ...Layer) *Icon {
	return &Icon{name: name, layers: append([]Layer(nil), layers...)}
}

// Name returns the display name of the icon.
func (ic *Icon) Name() string { return ic.name }

// Filename returns the default file name stem, derived from Name.
func (ic *Icon) Filename() string { return DeriveFilename(ic.name) }

// Len returns the number of layers.
func (ic *Icon) Len() int { return len(ic.layers) }

// Draw renders the layers on `c`.
func (ic *Icon) Draw(c Canvas, width, height, border int) error {
	if len(ic.layers) == 0 {
		return fmt.Errorf("%w: %q", ErrNoDraw, ic.name)
	}
	for _, layer := range ic.layers {
		layer(c, width, height, border)
	}
	return nil
}

// Layer returns a layer drawing the whole icon, so that
// compound icons can be composed from other icons.
func (ic *Icon) Layer() Layer {
	layers := ic.layers
	return func(c Canvas, width, height, border int) {
		for _, layer := range layers {
			layer(c, width, height, border)
		}
	}
}

// CheckSize returns ErrInvalidSize if a dimension is not positive.
func CheckSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}

// SetColor sets the source color of `c` from 8 bits channels.
// Each channel must be in [0, 255].
func SetColor(c Canvas, red, green, blue, alpha int) {
	c.SetSourceRGBA(float64(red)/255, float64(green)/255, float64(blue)/255, float64(alpha)/255)
}

// DeriveFilename turns a display name into a lowercase, hyphen-separated token:
// the first letter is lower-cased, and every following ASCII uppercase letter
// is replaced by a hyphen and its lowercase form.
// Other characters are kept unchanged.
func DeriveFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if 'A' <= ch && ch <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			ch += 'a' - 'A'
		}
		b.WriteByte(ch)
	}
	return b.String()
}

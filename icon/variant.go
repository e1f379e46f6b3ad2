package icon

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned by ParseVariant.
var ErrUnknownVariant = errors.New("icon: unknown variant")

// Variant identifies one of the predefined icons.
type Variant uint8

const (
	SplitHorizontal Variant = iota
	AddSplitHorizontal
	AddSplitVertical
	RemoveSplitHorizontal
	RemoveSplitVertical
	RemoveSplitBoth
)

var variantNames = [...]string{
	SplitHorizontal:       "SplitHorizontally",
	AddSplitHorizontal:    "AddSplitHorizontally",
	AddSplitVertical:      "AddSplitVertically",
	RemoveSplitHorizontal: "RemoveSplitHorizontally",
	RemoveSplitVertical:   "RemoveSplitVertically",
	RemoveSplitBoth:       "RemoveSplit",
}

// String returns the display name of the variant.
func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("<unknown Variant %d>", v)
}

// Filename returns the default file name stem of the variant.
func (v Variant) Filename() string { return DeriveFilename(v.String()) }

// Variants returns all the predefined variants.
func Variants() []Variant {
	out := make([]Variant, len(variantNames))
	for i := range out {
		out[i] = Variant(i)
	}
	return out
}

// ParseVariant accepts a display name ("AddSplitVertically")
// or a file name stem ("add-split-vertically").
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if s == name || s == DeriveFilename(name) {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Icon returns the icon drawn by the variant.
// Unknown variants return an icon without layers.
func (v Variant) Icon() *Icon {
	return Compose(v.String(), v.layers()...)
}

func (v Variant) layers() []Layer {
	switch v {
	case SplitHorizontal:
		return []Layer{SplitLines}
	case AddSplitHorizontal:
		return []Layer{SplitLines, AddArrows}
	case AddSplitVertical:
		return []Layer{Rotated(DefaultRotation, AddSplitHorizontal.layers()...)}
	case RemoveSplitHorizontal:
		return []Layer{SplitLines, RemoveCross}
	case RemoveSplitVertical:
		return []Layer{Rotated(DefaultRotation, RemoveSplitHorizontal.layers()...)}
	case RemoveSplitBoth:
		// both orientations are drawn in full, split lines included
		return []Layer{
			RemoveSplitHorizontal.Icon().Layer(),
			RemoveSplitVertical.Icon().Layer(),
		}
	default:
		return nil
	}
}

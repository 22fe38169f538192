// Package theme defines the color palettes used by the map and poster
// renderers.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/litescript/ls-starmap/internal/starmap"
)

// ErrUnknownPalette is returned by ByName for names with no preset.
var ErrUnknownPalette = errors.New("unknown palette")

// RGB is a color with components in [0,1].
type RGB struct {
	R, G, B float64
}

// Hex returns the color as #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	i := int(v*255 + 0.5)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return i
}

// StarColor is either an explicit color applied to every star or the
// per-class color. The zero value is Computed.
type StarColor struct {
	explicit bool
	color    RGB
}

// Explicit paints every star with c.
func Explicit(c RGB) StarColor {
	return StarColor{explicit: true, color: c}
}

// Computed paints each star with its spectral class color.
func Computed() StarColor {
	return StarColor{}
}

// IsExplicit reports whether a fixed color overrides the class color.
func (s StarColor) IsExplicit() bool {
	return s.explicit
}

// Resolve returns the color for a star of the given class.
func (s StarColor) Resolve(class starmap.Class) RGB {
	if s.explicit {
		return s.color
	}
	return ClassColor(class)
}

// Approximate blackbody tints, hottest to coolest.
var classColors = map[starmap.Class]RGB{
	starmap.ClassO: {0.61, 0.69, 1.00},
	starmap.ClassB: {0.67, 0.75, 1.00},
	starmap.ClassA: {0.79, 0.84, 1.00},
	starmap.ClassF: {0.97, 0.97, 1.00},
	starmap.ClassG: {1.00, 0.96, 0.92},
	starmap.ClassK: {1.00, 0.82, 0.63},
	starmap.ClassM: {1.00, 0.50, 0.50},
}

// ClassColor returns the tint for a spectral class. Unknown classes get
// the M tint.
func ClassColor(class starmap.Class) RGB {
	if c, ok := classColors[class]; ok {
		return c
	}
	return classColors[starmap.ClassM]
}

// Palette is a complete color scheme.
type Palette struct {
	Name       string
	Background RGB
	Names      RGB
	JumpLines  RGB
	Star       StarColor
}

// Presets.
var (
	Dark = Palette{
		Name:       "dark",
		Background: RGB{0, 0, 0},
		Names:      RGB{1, 1, 1},
		JumpLines:  RGB{0.5, 0.5, 0.5},
		Star:       Computed(),
	}

	Light = Palette{
		Name:       "light",
		Background: RGB{1, 1, 1},
		Names:      RGB{0, 0, 0},
		JumpLines:  RGB{0.7, 0.7, 0.7},
		Star:       Computed(),
	}
)

// Presets returns the palettes in cycling order.
func Presets() []Palette {
	return []Palette{Dark, Light}
}

// ByName looks up a preset, ignoring case.
func ByName(name string) (Palette, error) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Palette{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
}

// Next returns the preset after the named one, wrapping around.
func Next(name string) Palette {
	presets := Presets()
	for i, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return presets[(i+1)%len(presets)]
		}
	}
	return presets[0]
}

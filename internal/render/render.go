// Package render draws star populations onto a raster canvas and encodes
// them as PNG posters.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomonobold"

	"github.com/litescript/ls-starmap/internal/starmap"
	"github.com/litescript/ls-starmap/internal/theme"
)

// Options controls poster rendering.
type Options struct {
	Width        int
	Height       int
	Palette      theme.Palette
	StarCount    int // number of stars from the front of the population
	JumpLines    bool
	JumpDistance float64 // light years
	Scale        float64 // light years per normalized unit
	DisplayClass bool
	FontPath     string // empty = embedded Go Mono Bold
	FontSize     float64
	StarRadius   float64
	LineWidth    float64
}

// DefaultOptions returns a 1024x1024 dark poster of 32 stars.
func DefaultOptions() Options {
	return Options{
		Width:        1024,
		Height:       1024,
		Palette:      theme.Dark,
		StarCount:    32,
		JumpLines:    true,
		JumpDistance: starmap.DefaultJumpDistance,
		Scale:        starmap.DefaultScale,
		FontSize:     12,
		StarRadius:   4,
		LineWidth:    3,
	}
}

var (
	defaultFontOnce sync.Once
	defaultFont     *text.FontSource
	defaultFontErr  error
)

func loadDefaultFont() (*text.FontSource, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = text.NewFontSource(gomonobold.TTF)
	})
	return defaultFont, defaultFontErr
}

// fontFace returns the face for opts. The returned close func releases a
// font loaded from disk and is a no-op for the embedded font.
func fontFace(opts Options) (text.Face, func(), error) {
	size := opts.FontSize
	if size <= 0 {
		size = 12
	}

	if opts.FontPath == "" {
		src, err := loadDefaultFont()
		if err != nil {
			return nil, nil, fmt.Errorf("load embedded font: %w", err)
		}
		return src.Face(size), func() {}, nil
	}

	src, err := text.NewFontSourceFromFile(opts.FontPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load font %s: %w", opts.FontPath, err)
	}
	return src.Face(size), func() { _ = src.Close() }, nil
}

// Render draws the first opts.StarCount stars and returns the image.
func Render(stars []starmap.Star, opts Options) (image.Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}

	count := opts.StarCount
	if count < 0 || count > len(stars) {
		count = len(stars)
	}
	visible := stars[:count]

	face, closeFont, err := fontFace(opts)
	if err != nil {
		return nil, err
	}
	defer closeFont()

	dc := gg.NewContext(opts.Width, opts.Height)
	defer dc.Close()

	p := opts.Palette
	dc.ClearWithColor(gg.RGB(p.Background.R, p.Background.G, p.Background.B))

	w := float64(opts.Width)
	h := float64(opts.Height)

	if opts.JumpLines {
		dc.SetRGB(p.JumpLines.R, p.JumpLines.G, p.JumpLines.B)
		dc.SetLineWidth(opts.LineWidth)
		for _, l := range starmap.JumpLines(visible, opts.JumpDistance, opts.Scale) {
			a := visible[l.From].Pos
			b := visible[l.To].Pos
			dc.DrawLine(a.X*w, a.Y*h, b.X*w, b.Y*h)
			if err := dc.Stroke(); err != nil {
				return nil, fmt.Errorf("stroke jump line: %w", err)
			}
		}
	}

	for _, s := range visible {
		c := p.Star.Resolve(s.Class)
		dc.SetRGB(c.R, c.G, c.B)
		dc.DrawCircle(s.Pos.X*w, s.Pos.Y*h, opts.StarRadius)
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("fill star %s: %w", s.Name, err)
		}
	}

	// Labels last so lines and discs never cover them.
	dc.SetFont(face)
	descent := face.Metrics().Descent
	dc.SetRGB(p.Names.R, p.Names.G, p.Names.B)
	for _, s := range visible {
		dc.DrawString(Label(s, opts.DisplayClass), s.Pos.X*w+opts.StarRadius+2, s.Pos.Y*h-descent)
	}

	return dc.Image(), nil
}

// Label is the text drawn next to a star.
func Label(s starmap.Star, displayClass bool) string {
	if displayClass {
		return fmt.Sprintf("%s [%s]", s.Name, s.Class)
	}
	return s.Name
}

// WritePNG renders and PNG-encodes the poster to w.
func WritePNG(w io.Writer, stars []starmap.Star, opts Options) error {
	img, err := Render(stars, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG renders the poster into a file at path.
func SavePNG(path string, stars []starmap.Star, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create poster file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close poster file: %w", cerr)
		}
	}()
	return WritePNG(f, stars, opts)
}

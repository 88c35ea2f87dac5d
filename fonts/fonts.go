package fonts

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/math/fixed"
)

type FontName string

const (
	Digits FontName = "digits"
	Label  FontName = "label"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFont(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})
	return nil
}

// LoadDefaults loads the bundled Go Mono faces.
func LoadDefaults(digitSize float64) error {
	if err := LoadFont(Digits, gomonobold.TTF, digitSize); err != nil {
		return err
	}
	return LoadFont(Label, gomono.TTF, 10)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

// RenderStrip draws each glyph centred in its own square cell, left to right.
func RenderStrip(face font.Face, glyphs []string, cell int, fg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cell*len(glyphs), cell))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	m := face.Metrics()
	glyphH := (m.Ascent + m.Descent).Ceil()
	baseline := (cell-glyphH)/2 + m.Ascent.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
	}
	for i, g := range glyphs {
		w := d.MeasureString(g).Ceil()
		d.Dot = fixed.P(i*cell+(cell-w)/2, baseline)
		d.DrawString(g)
	}
	return img
}

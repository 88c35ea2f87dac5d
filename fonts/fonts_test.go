package fonts

import (
	"image"
	"image/color"
	"testing"
)

func TestRenderStripFillsEveryCell(t *testing.T) {
	if err := LoadDefaults(24); err != nil {
		t.Fatalf("LoadDefaults() error = %v", err)
	}

	glyphs := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	img := RenderStrip(Digits.Get(), glyphs, 32, color.White)

	if got := img.Bounds(); got != image.Rect(0, 0, 320, 32) {
		t.Fatalf("Expected 320x32 strip, got %v", got)
	}

	for cell := range glyphs {
		inked := false
		for y := 0; y < 32 && !inked; y++ {
			for x := cell * 32; x < (cell+1)*32; x++ {
				if img.RGBAAt(x, y).A > 0 {
					inked = true
					break
				}
			}
		}
		if !inked {
			t.Errorf("Expected glyph %q to draw pixels in cell %d", glyphs[cell], cell)
		}
	}
}

func TestGetUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic for an unloaded font")
		}
	}()
	FontName("missing").Get()
}

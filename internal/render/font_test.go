package render

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestFaceMeasurement(t *testing.T) {
	f := NewFace(basicfont.Face7x13, 13)
	if got := f.MeasureString("Hello"); got != 35 {
		t.Errorf("MeasureString = %d, want 35", got)
	}
	if got := f.MeasureString(""); got != 0 {
		t.Errorf("MeasureString(\"\") = %d, want 0", got)
	}
	if got := f.Ascent(); got != 11 {
		t.Errorf("Ascent = %d, want 11", got)
	}
	if got := f.Height(); got != 13 {
		t.Errorf("Height = %d, want 13", got)
	}
	if got := f.Size(); got != 13 {
		t.Errorf("Size = %v, want 13", got)
	}
}

func TestFaceDrawTopAnchored(t *testing.T) {
	f := NewFace(basicfont.Face7x13, 13)
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	white := color.NRGBA{255, 255, 255, 255}
	f.Draw(img, 5, 3, "X", white)

	var minY, maxY = 20, -1
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	if maxY < 0 {
		t.Fatal("Draw produced no ink")
	}
	// Ink stays within the requested top edge and the face height.
	if minY < 3 {
		t.Errorf("ink above the requested top: minY = %d", minY)
	}
	if maxY >= 3+f.Height() {
		t.Errorf("ink below the face height: maxY = %d", maxY)
	}
}

func TestResolveFaceFallsBackToEmbedded(t *testing.T) {
	// A font name that cannot exist still yields a usable face.
	f, err := ResolveFace("definitely-not-a-real-font-xyz", 20)
	if err != nil {
		t.Fatalf("ResolveFace: %v", err)
	}
	if f.Size() != 20 {
		t.Errorf("Size = %v, want 20", f.Size())
	}
	if f.MeasureString("test") <= 0 {
		t.Error("fallback face should measure text")
	}
}

func TestFitFontSize(t *testing.T) {
	size, err := FitFontSize("", "a very long line of subtitle text", 200, 48)
	if err != nil {
		t.Fatalf("FitFontSize: %v", err)
	}
	if size < 10 || size > 48 {
		t.Fatalf("size %d outside [10, 48]", size)
	}
	face, err := ResolveFace("", float64(size))
	if err != nil {
		t.Fatal(err)
	}
	if size > 10 && face.MeasureString("a very long line of subtitle text") > 200 {
		t.Errorf("size %d still overflows the width bound", size)
	}
}

func TestFindFontFileEmptyName(t *testing.T) {
	if _, err := findFontFile(""); err == nil {
		t.Fatal("empty font name should not resolve")
	}
}

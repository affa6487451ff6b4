package render

import (
	"image"
	"image/color"
	"image/draw"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrFontUnavailable means a requested font could not be located on the
// system. Callers recover by substituting the embedded default face.
var ErrFontUnavailable = errors.New("font unavailable")

// Face wraps a rasterizable font face with pixel-unit measurement and
// top-anchored drawing, which is what the layout and compositing code work in.
type Face struct {
	face font.Face
	size float64
}

// NewFace wraps an existing font.Face. size is the nominal pixel size used
// for line-height calculations.
func NewFace(f font.Face, size float64) *Face {
	return &Face{face: f, size: size}
}

// Size returns the nominal pixel size the face was created with.
func (f *Face) Size() float64 {
	return f.size
}

// MeasureString returns the advance width of s in whole pixels.
func (f *Face) MeasureString(s string) int {
	return font.MeasureString(f.face, s).Round()
}

// Ascent returns the face ascent in whole pixels.
func (f *Face) Ascent() int {
	return f.face.Metrics().Ascent.Ceil()
}

// Height returns ascent+descent in whole pixels.
func (f *Face) Height() int {
	m := f.face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// Draw renders s with its top-left corner at (x, y). The drawer's dot sits on
// the baseline, so the ascent is added here once instead of at every call
// site.
func (f *Face) Draw(dst draw.Image, x, y int, s string, col color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.face,
		Dot:  fixed.P(x, y+f.Ascent()),
	}
	d.DrawString(s)
}

// ResolveFace loads the named font at the given pixel size. A font that
// cannot be found degrades to the embedded Go Regular face rather than
// failing the render.
func ResolveFace(name string, size float64) (*Face, error) {
	data, err := readFontFile(name)
	if err != nil {
		logrus.Warnf("font %q not found, falling back to embedded default", name)
		data = goregular.TTF
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		// The located file is not a usable font; the embedded face always is.
		ft, err = opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse fallback font")
		}
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create font face")
	}
	return NewFace(face, size), nil
}

// FitFontSize shrinks maxSize until text measures within maxWidth under the
// named font. Used to suggest a size that keeps a line on screen.
func FitFontSize(name, text string, maxWidth, maxSize int) (int, error) {
	for size := maxSize; size > 10; size -= 2 {
		face, err := ResolveFace(name, float64(size))
		if err != nil {
			return 0, err
		}
		if face.MeasureString(text) <= maxWidth {
			return size, nil
		}
	}
	return 10, nil
}

// fallbackFonts are tried when the requested font is absent, before giving up
// and using the embedded face.
var fallbackFonts = []string{
	"DejaVuSans.ttf",
	"NotoSans-Regular.ttf",
	"LiberationSans-Regular.ttf",
	"Arial.ttf",
}

func readFontFile(name string) ([]byte, error) {
	path, err := findFontFile(name)
	if err != nil {
		for _, alt := range fallbackFonts {
			if path, err = findFontFile(alt); err == nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func findFontFile(name string) (string, error) {
	if name == "" {
		return "", errors.WithStack(ErrFontUnavailable)
	}
	file := name
	if !strings.HasSuffix(strings.ToLower(file), ".ttf") {
		file += ".ttf"
	}
	if _, err := os.Stat(file); err == nil {
		return file, nil
	}
	for _, dir := range fontDirs() {
		found := ""
		_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if !d.IsDir() && strings.EqualFold(d.Name(), file) {
				found = p
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			return found, nil
		}
	}
	return "", errors.Wrapf(ErrFontUnavailable, "%q", name)
}

func fontDirs() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{filepath.Join(os.Getenv("WINDIR"), "Fonts")}
	case "darwin":
		return []string{"/Library/Fonts", "/System/Library/Fonts"}
	default:
		home, _ := os.UserHomeDir()
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(home, ".fonts"),
		}
	}
}

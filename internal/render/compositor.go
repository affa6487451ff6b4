package render

import (
	"image"
	"math"

	"github.com/pkg/errors"

	"github.com/attiquers/videoSubtitleGenerator/internal/config"
	"github.com/attiquers/videoSubtitleGenerator/pkg/types"
)

// blockPadding is the pixel padding around the block background. The
// vertical split is asymmetric (half above, 1.5x below) for visual balance.
const blockPadding = 10

// Compositor renders subtitle overlays for one transcript at one frame size
// and composites them over raw rgb24 frames. All style decisions are resolved
// at construction time: fonts loaded (with fallback), colors parsed, one
// layout plan built per segment. After construction the compositor is
// read-only, so frames can be requested in any order.
type Compositor struct {
	style   config.Style
	palette config.Palette
	normal  *Face
	active  *Face
	width   int
	height  int

	transcript types.Transcript
	plans      []*Plan

	// refHeight is the active face's reference text height, fixing the
	// highlight box height independent of the word's own ink extents.
	refHeight int
}

// NewCompositor validates the style and precomputes everything the per-frame
// path needs. Color errors surface here; a missing font does not (the
// embedded default face substitutes).
func NewCompositor(tr types.Transcript, style config.Style, width, height int) (*Compositor, error) {
	palette, err := style.Validate()
	if err != nil {
		return nil, err
	}
	normal, err := ResolveFace(style.Font, float64(style.FontSize))
	if err != nil {
		return nil, err
	}
	active, err := ResolveFace(style.Font, float64(style.FontSize)*style.ActiveSizeScale)
	if err != nil {
		return nil, err
	}
	c := &Compositor{
		style:      style,
		palette:    palette,
		normal:     normal,
		active:     active,
		width:      width,
		height:     height,
		transcript: tr,
		refHeight:  active.Height(),
	}
	maxWidth := width * style.AreaWidthPercent / 100
	c.plans = BuildPlans(tr, maxWidth, normal, style.WordCase)
	return c, nil
}

// newCompositorWithFaces is the test seam: identical wiring, caller-supplied
// faces.
func newCompositorWithFaces(tr types.Transcript, style config.Style, width, height int, normal, active *Face) (*Compositor, error) {
	palette, err := style.Validate()
	if err != nil {
		return nil, err
	}
	c := &Compositor{
		style:      style,
		palette:    palette,
		normal:     normal,
		active:     active,
		width:      width,
		height:     height,
		transcript: tr,
		refHeight:  active.Height(),
	}
	maxWidth := width * style.AreaWidthPercent / 100
	c.plans = BuildPlans(tr, maxWidth, normal, style.WordCase)
	return c, nil
}

// Compose returns a new rgb24 frame: base with the subtitle overlay for time
// t alpha-blended on top. base is not mutated. When no segment is live at t
// the result is a plain copy of base.
func (c *Compositor) Compose(base []byte, t float64) ([]byte, error) {
	want := c.width * c.height * 3
	if len(base) != want {
		return nil, errors.Errorf("frame buffer is %d bytes, want %d (%dx%d rgb24)", len(base), want, c.width, c.height)
	}
	out := make([]byte, want)
	copy(out, base)

	segment, word := Resolve(c.transcript, t)
	if segment < 0 {
		return out, nil
	}
	overlay := c.RenderOverlay(c.plans[segment], word)
	compositeRGB(out, overlay, c.width, c.height)
	return out, nil
}

// RenderOverlay draws one segment's subtitle block onto a transparent
// frame-sized canvas. activeWord is the segment word index to highlight, or
// -1 for none.
func (c *Compositor) RenderOverlay(plan *Plan, activeWord int) *image.NRGBA {
	overlay := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	if len(plan.Lines) == 0 {
		return overlay
	}

	yPixel := c.height - int(math.Round(float64(c.height)*float64(c.style.YPositionPercent)/100))
	blockTop := yPixel - plan.BlockHeight/2
	centerX := c.width/2 + c.style.XOffset
	blockLeft := centerX - plan.BlockWidth/2

	if c.style.BgOpacity > 0 {
		left := blockLeft - blockPadding
		top := blockTop - blockPadding/2
		right := blockLeft + plan.BlockWidth + blockPadding
		bottom := blockTop + plan.BlockHeight + 3*blockPadding/2
		if left < 0 {
			left = 0
		}
		if top < 0 {
			top = 0
		}
		if right > c.width {
			right = c.width
		}
		if bottom > c.height {
			bottom = c.height
		}
		FillRoundedRect(overlay, image.Rect(left, top, right, bottom), c.style.BgCornerRadius, c.palette.BlockBg)
	}

	lineY := blockTop + blockPadding
	for _, ln := range plan.Lines {
		x := centerX - ln.Width/2
		for _, pw := range ln.Words {
			isActive := activeWord >= 0 && pw.Index == activeWord && !c.style.ActiveDisabled

			face := c.normal
			fill := c.palette.NormalFill
			outline := c.palette.NormalOutline
			thickness := c.style.NormalOutlineThickness
			if isActive {
				face = c.active
				fill = c.palette.ActiveFill
				outline = c.palette.ActiveOutline
				thickness = c.style.ActiveOutlineThickness
			}

			if isActive && c.style.ActiveBgOpacity > 0 {
				halfSpace := c.active.MeasureString(" ") / 2
				wordWidth := face.MeasureString(pw.Text)
				box := image.Rect(
					x-halfSpace,
					lineY,
					x+wordWidth+halfSpace,
					lineY+int(1.2*float64(c.refHeight)),
				)
				FillRoundedRect(overlay, box, c.style.ActiveBgCornerRadius, c.palette.ActiveBg)
			}

			if thickness > 0 && outline.A > 0 {
				for dy := -thickness; dy <= thickness; dy++ {
					for dx := -thickness; dx <= thickness; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						face.Draw(overlay, x+dx, lineY+dy, pw.Text, outline)
					}
				}
			}
			if fill.A > 0 {
				face.Draw(overlay, x, lineY, pw.Text, fill)
			}

			x += pw.Width + plan.SpaceWidth
		}
		lineY += plan.LineHeight
	}
	return overlay
}

// compositeRGB alpha-blends a straight-alpha overlay onto an rgb24 buffer in
// place: out = base*(1-a) + overlay*a, per channel.
func compositeRGB(dst []byte, overlay *image.NRGBA, width, height int) {
	for y := 0; y < height; y++ {
		row := overlay.Pix[y*overlay.Stride : y*overlay.Stride+width*4]
		for x := 0; x < width; x++ {
			a := uint32(row[x*4+3])
			if a == 0 {
				continue
			}
			di := (y*width + x) * 3
			for k := 0; k < 3; k++ {
				ov := uint32(row[x*4+k])
				b := uint32(dst[di+k])
				dst[di+k] = uint8((b*(255-a) + ov*a + 127) / 255)
			}
		}
	}
}

package render

import (
	"image"
	"image/color"
)

// FillRect fills r with col using set-pixel semantics, replacing whatever the
// overlay held there before.
func FillRect(dst *image.NRGBA, r image.Rectangle, col color.NRGBA) {
	r = r.Canon().Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Pix[i] = col.R
			dst.Pix[i+1] = col.G
			dst.Pix[i+2] = col.B
			dst.Pix[i+3] = col.A
			i += 4
		}
	}
}

// FillRoundedRect fills r with col, rounding the corners by radius. The
// radius is clamped to half the shorter side; radius <= 0 degrades to a plain
// rectangle. The fill is decomposed into three axis-aligned bands plus four
// quarter discs that tile exactly, with no gaps and no double-painted pixels.
func FillRoundedRect(dst *image.NRGBA, r image.Rectangle, radius int, col color.NRGBA) {
	r = r.Canon()
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	maxRadius := min(w, h) / 2
	if radius > maxRadius {
		radius = maxRadius
	}
	if radius <= 0 {
		FillRect(dst, r, col)
		return
	}

	// Middle band, full width.
	FillRect(dst, image.Rect(r.Min.X, r.Min.Y+radius, r.Max.X, r.Max.Y-radius), col)
	// Top and bottom bands between the corner squares.
	FillRect(dst, image.Rect(r.Min.X+radius, r.Min.Y, r.Max.X-radius, r.Min.Y+radius), col)
	FillRect(dst, image.Rect(r.Min.X+radius, r.Max.Y-radius, r.Max.X-radius, r.Max.Y), col)

	fillQuarterDisc(dst, r.Min.X+radius, r.Min.Y+radius, radius, -1, -1, col)
	fillQuarterDisc(dst, r.Max.X-radius, r.Min.Y+radius, radius, +1, -1, col)
	fillQuarterDisc(dst, r.Min.X+radius, r.Max.Y-radius, radius, -1, +1, col)
	fillQuarterDisc(dst, r.Max.X-radius, r.Max.Y-radius, radius, +1, +1, col)
}

// fillQuarterDisc fills the quarter of the disc centered at (cx,cy) that lies
// in the (sx,sy) quadrant, covering only the radius×radius corner square the
// band fills leave untouched.
func fillQuarterDisc(dst *image.NRGBA, cx, cy, radius, sx, sy int, col color.NRGBA) {
	bounds := dst.Bounds()
	rr := float64(radius) * float64(radius)
	for dy := 0; dy < radius; dy++ {
		for dx := 0; dx < radius; dx++ {
			// Distance taken at the pixel center.
			fx := float64(dx) + 0.5
			fy := float64(dy) + 0.5
			if fx*fx+fy*fy > rr {
				continue
			}
			x := cx + sx*dx
			y := cy + sy*dy
			if sx < 0 {
				x--
			}
			if sy < 0 {
				y--
			}
			if (image.Point{x, y}).In(bounds) {
				dst.SetNRGBA(x, y, col)
			}
		}
	}
}

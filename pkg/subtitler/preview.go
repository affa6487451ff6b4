package subtitler

import (
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/attiquers/videoSubtitleGenerator/internal/config"
	"github.com/attiquers/videoSubtitleGenerator/internal/ffmpeg"
	"github.com/attiquers/videoSubtitleGenerator/internal/render"
	"github.com/attiquers/videoSubtitleGenerator/internal/transcribe"
	"github.com/attiquers/videoSubtitleGenerator/pkg/types"
)

// Preview composites the subtitle overlay onto the single source frame at
// opts.Time and writes it as a PNG, for checking a style without a full
// render.
func Preview(opts *PreviewOptions) error {
	tr, err := transcribe.LoadTranscript(opts.TranscriptPath)
	if err != nil {
		return err
	}

	proc := ffmpeg.NewProcessor(opts.Verbose)
	meta, err := proc.GetVideoMetadata(opts.InputPath)
	if err != nil {
		return errors.Wrap(err, "failed to get video metadata")
	}

	comp, err := render.NewCompositor(tr, opts.Style, meta.Width, meta.Height)
	if err != nil {
		return err
	}

	if size, ok := fontSizeHint(tr, opts.Style, meta.Width); ok {
		logrus.Infof("font size %d overflows the subtitle area; the widest word fits at --font-size %d", opts.Style.FontSize, size)
	}

	base, err := proc.DecodeFrameAt(opts.InputPath, opts.Time, meta.Width, meta.Height)
	if err != nil {
		return err
	}
	frame, err := comp.Compose(base, opts.Time)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.OutputPath)
	if err != nil {
		return errors.Wrap(err, "failed to create preview file")
	}
	defer f.Close()
	if err := png.Encode(f, frameImage(frame, meta.Width, meta.Height)); err != nil {
		return errors.Wrap(err, "failed to encode preview PNG")
	}
	return nil
}

// fontSizeHint reports a smaller font size that would keep the transcript's
// widest word inside the subtitle area, when the configured size does not.
func fontSizeHint(tr types.Transcript, style config.Style, frameWidth int) (int, bool) {
	maxWidth := frameWidth * style.AreaWidthPercent / 100
	face, err := render.ResolveFace(style.Font, float64(style.FontSize))
	if err != nil {
		return 0, false
	}

	widest, width := "", 0
	for _, seg := range tr.Segments {
		for _, w := range seg.Words {
			text := render.ApplyCase(strings.TrimSpace(w.Text), style.WordCase)
			if text == "" {
				continue
			}
			if wd := face.MeasureString(text); wd > width {
				widest, width = text, wd
			}
		}
	}
	if widest == "" || width <= maxWidth {
		return 0, false
	}

	size, err := render.FitFontSize(style.Font, widest, maxWidth, style.FontSize)
	if err != nil {
		return 0, false
	}
	return size, true
}

// frameImage wraps an rgb24 buffer as an image for encoding.
func frameImage(frame []byte, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			si := (y*width + x) * 3
			di := y*img.Stride + x*4
			img.Pix[di] = frame[si]
			img.Pix[di+1] = frame[si+1]
			img.Pix[di+2] = frame[si+2]
			img.Pix[di+3] = 0xFF
		}
	}
	return img
}

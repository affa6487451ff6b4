package ffmpeg

import (
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// FrameFunc produces the rgb24 frame for sample time t. It must be free of
// side effects beyond progress reporting: the encoder owns the iteration
// order.
type FrameFunc func(t float64) ([]byte, error)

// ProgressFunc receives processed and total seconds.
type ProgressFunc func(done, total float64)

// EncodeOptions configures one encoding run.
type EncodeOptions struct {
	OutputPath string
	// AudioSource is the file whose audio track is muxed into the output
	// unchanged, normally the original input video.
	AudioSource string
	Width       int
	Height      int
	FrameRate   float64
	Duration    float64
	Frame       FrameFunc
	Progress    ProgressFunc
}

// EncodeVideo pulls frames one at a time from opts.Frame across the whole
// timeline and pipes them into an ffmpeg libx264/aac encode together with the
// source audio. Any frame error aborts the encode; partial output is not
// valid.
func (p *Processor) EncodeVideo(opts EncodeOptions) error {
	if opts.Frame == nil {
		return errors.New("encode: frame function is required")
	}
	if opts.FrameRate <= 0 || opts.Duration <= 0 {
		return errors.Errorf("encode: invalid timeline (rate=%v, duration=%v)", opts.FrameRate, opts.Duration)
	}

	totalFrames := int(math.Round(opts.Duration * opts.FrameRate))
	if totalFrames < 1 {
		totalFrames = 1
	}

	pr, pw := io.Pipe()
	frames := ffmpeg.Input("pipe:", ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgb24",
		"s":         fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"framerate": opts.FrameRate,
	})
	audio := ffmpeg.Input(opts.AudioSource)

	stream := ffmpeg.Output(
		[]*ffmpeg.Stream{frames, audio.Audio()},
		opts.OutputPath,
		ffmpeg.KwArgs{
			"c:v":      "libx264",
			"c:a":      "aac",
			"pix_fmt":  "yuv420p",
			"shortest": "",
			"movflags": "+faststart",
			"threads":  GetOptimalThreadCount(),
		},
	).OverWriteOutput().WithInput(pr)
	if p.verbose {
		stream = stream.ErrorToStdOut()
	}

	done := make(chan error, 1)
	go func() {
		done <- stream.Run()
	}()

	for i := 0; i < totalFrames; i++ {
		t := float64(i) / opts.FrameRate
		frame, err := opts.Frame(t)
		if err != nil {
			pw.CloseWithError(err)
			<-done
			return errors.Wrapf(err, "rendering failed at t=%.3fs", t)
		}
		if _, err := pw.Write(frame); err != nil {
			// The encoder side closed the pipe; its exit error is the cause.
			pw.Close()
			if encErr := <-done; encErr != nil {
				return errors.Wrap(encErr, "encoding failed")
			}
			return errors.Wrap(err, "encoding pipe closed")
		}
		if opts.Progress != nil {
			processed := math.Min(float64(i+1)/opts.FrameRate, opts.Duration)
			opts.Progress(processed, opts.Duration)
		}
	}

	pw.Close()
	if err := <-done; err != nil {
		return errors.Wrap(err, "encoding failed")
	}
	return nil
}

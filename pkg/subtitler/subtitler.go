// Package subtitler exposes the high-level operations behind the CLI:
// transcript generation, subtitle rendering, single-frame previews, and SRT
// round-trips.
package subtitler

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/attiquers/videoSubtitleGenerator/internal/config"
	"github.com/attiquers/videoSubtitleGenerator/internal/ffmpeg"
	"github.com/attiquers/videoSubtitleGenerator/internal/render"
	"github.com/attiquers/videoSubtitleGenerator/internal/srt"
	"github.com/attiquers/videoSubtitleGenerator/internal/transcribe"
	"github.com/attiquers/videoSubtitleGenerator/pkg/types"
)

// GenerateOptions drives the full pipeline: audio extraction, transcription,
// and rendering.
type GenerateOptions struct {
	InputPath  string
	OutputPath string

	// WhisperBin and ModelPath locate the whisper.cpp binary and model.
	WhisperBin string
	ModelPath  string

	// TranscriptOut, when set, saves the transcript JSON for later editing
	// and re-rendering. SRTOut does the same in captions format.
	TranscriptOut string
	SRTOut        string

	Style    config.Style
	Progress ffmpeg.ProgressFunc
	Verbose  bool
}

// RenderOptions renders subtitles from an existing transcript JSON file.
type RenderOptions struct {
	InputPath      string
	OutputPath     string
	TranscriptPath string
	Style          config.Style
	Progress       ffmpeg.ProgressFunc
	Verbose        bool
}

// PreviewOptions renders a single subtitled frame to a PNG file.
type PreviewOptions struct {
	InputPath      string
	OutputPath     string
	TranscriptPath string
	Time           float64
	Style          config.Style
	Verbose        bool
}

// Generate extracts audio, transcribes it, and renders the subtitled video.
func Generate(ctx context.Context, opts *GenerateOptions) error {
	proc := ffmpeg.NewProcessor(opts.Verbose)

	workDir, err := os.MkdirTemp("", "subtitle_render_")
	if err != nil {
		return errors.Wrap(err, "failed to create work directory")
	}
	defer os.RemoveAll(workDir)

	audioPath := filepath.Join(workDir, uuid.NewString()+".wav")
	logrus.Info("extracting audio")
	if err := proc.ExtractAudio(opts.InputPath, audioPath); err != nil {
		return err
	}

	logrus.Info("transcribing audio, this may take a while for longer videos")
	adapter := transcribe.New(opts.WhisperBin, opts.ModelPath)
	tr, err := adapter.Transcribe(ctx, audioPath, workDir)
	if err != nil {
		return err
	}
	logrus.Infof("transcription complete (%d segments)", len(tr.Segments))

	if opts.TranscriptOut != "" {
		if err := transcribe.SaveTranscript(opts.TranscriptOut, tr); err != nil {
			return err
		}
	}
	if opts.SRTOut != "" {
		if err := os.WriteFile(opts.SRTOut, []byte(srt.Format(tr)), 0o644); err != nil {
			return errors.Wrap(err, "failed to write SRT")
		}
	}

	return renderTranscript(opts.InputPath, opts.OutputPath, tr, opts.Style, opts.Progress, opts.Verbose)
}

// Render renders subtitles onto a video from a saved transcript.
func Render(opts *RenderOptions) error {
	tr, err := transcribe.LoadTranscript(opts.TranscriptPath)
	if err != nil {
		return err
	}
	return renderTranscript(opts.InputPath, opts.OutputPath, tr, opts.Style, opts.Progress, opts.Verbose)
}

func renderTranscript(inputPath, outputPath string, tr types.Transcript, style config.Style, progress ffmpeg.ProgressFunc, verbose bool) error {
	proc := ffmpeg.NewProcessor(verbose)
	meta, err := proc.GetVideoMetadata(inputPath)
	if err != nil {
		return errors.Wrap(err, "failed to get video metadata")
	}
	logrus.Debugf("video: %dx%d @ %.3g fps, %.2fs", meta.Width, meta.Height, meta.FrameRate, meta.Duration)

	comp, err := render.NewCompositor(tr, style, meta.Width, meta.Height)
	if err != nil {
		return err
	}

	dec := proc.NewFrameDecoder(inputPath, meta.Width, meta.Height)
	defer dec.Close()

	logrus.Info("rendering subtitles and embedding audio")
	return proc.EncodeVideo(ffmpeg.EncodeOptions{
		OutputPath:  outputPath,
		AudioSource: inputPath,
		Width:       meta.Width,
		Height:      meta.Height,
		FrameRate:   meta.FrameRate,
		Duration:    meta.Duration,
		Frame:       newFrameFunc(dec, comp),
		Progress:    progress,
	})
}

// frameReader is the slice of FrameDecoder the render loop needs.
type frameReader interface {
	Next() ([]byte, error)
}

// newFrameFunc adapts a sequential decoder into the encoder's pull model.
// Each decoded frame is copied because the decoder reuses its buffer. The
// probed duration can overstate the real frame count (container rounding,
// variable frame rate), so io.EOF after at least one frame holds the last
// frame on screen for the remaining tail samples instead of failing the
// render.
func newFrameFunc(dec frameReader, comp *render.Compositor) ffmpeg.FrameFunc {
	var last []byte
	return func(t float64) ([]byte, error) {
		base, err := dec.Next()
		switch {
		case err == nil:
			last = append(last[:0], base...)
		case err == io.EOF && last != nil:
			base = last
		default:
			return nil, errors.Wrapf(err, "failed to decode frame at t=%.3fs", t)
		}
		return comp.Compose(base, t)
	}
}

// ExportSRT converts a saved transcript into SRT captions text.
func ExportSRT(transcriptPath, srtPath string) error {
	tr, err := transcribe.LoadTranscript(transcriptPath)
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(srtPath, []byte(srt.Format(tr)), 0o644), "failed to write SRT")
}

// ImportSRT maps edited SRT text back onto the original transcript's word
// timings and saves the result as a new transcript.
func ImportSRT(srtPath, originalTranscriptPath, outTranscriptPath string) error {
	orig, err := transcribe.LoadTranscript(originalTranscriptPath)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(srtPath)
	if err != nil {
		return errors.Wrap(err, "failed to read SRT")
	}
	tr := srt.Parse(string(data), orig)
	return transcribe.SaveTranscript(outTranscriptPath, tr)
}

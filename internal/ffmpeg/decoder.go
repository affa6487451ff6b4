package ffmpeg

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// FrameDecoder streams raw rgb24 frames out of a video file, one frame per
// Next call, in presentation order.
type FrameDecoder struct {
	reader *io.PipeReader
	buf    []byte
	done   chan error
}

// NewFrameDecoder starts an ffmpeg process decoding inputPath to rgb24 on a
// pipe. width and height must match the probed stream dimensions.
func (p *Processor) NewFrameDecoder(inputPath string, width, height int) *FrameDecoder {
	pr, pw := io.Pipe()
	d := &FrameDecoder{
		reader: pr,
		buf:    make([]byte, width*height*3),
		done:   make(chan error, 1),
	}
	stream := ffmpeg.Input(inputPath).
		Output("pipe:", ffmpeg.KwArgs{
			"format":  "rawvideo",
			"pix_fmt": "rgb24",
		}).
		WithOutput(pw)
	if p.verbose {
		stream = stream.ErrorToStdOut()
	}
	go func() {
		err := stream.Run()
		pw.CloseWithError(err)
		d.done <- err
	}()
	return d
}

// Next returns the next decoded frame. The returned slice is reused between
// calls; callers that keep a frame must copy it. io.EOF signals the end of
// the stream.
func (d *FrameDecoder) Next() ([]byte, error) {
	if _, err := io.ReadFull(d.reader, d.buf); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "failed to read decoded frame")
	}
	return d.buf, nil
}

// Close tears the decode pipeline down and reports the ffmpeg exit status.
func (d *FrameDecoder) Close() error {
	d.reader.Close()
	return <-d.done
}

// DecodeFrameAt decodes the single frame nearest to time t as rgb24 bytes.
func (p *Processor) DecodeFrameAt(inputPath string, t float64, width, height int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	stream := ffmpeg.Input(inputPath, ffmpeg.KwArgs{"ss": t}).
		Output("pipe:", ffmpeg.KwArgs{
			"format":  "rawvideo",
			"pix_fmt": "rgb24",
			"vframes": 1,
		}).
		WithOutput(buf)
	if p.verbose {
		stream = stream.ErrorToStdOut()
	}
	if err := stream.Run(); err != nil {
		return nil, errors.Wrap(err, "failed to decode frame")
	}
	want := width * height * 3
	if buf.Len() < want {
		return nil, fmt.Errorf("decoded frame is %d bytes, want %d", buf.Len(), want)
	}
	return buf.Bytes()[:want], nil
}

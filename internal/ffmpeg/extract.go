package ffmpeg

import (
	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ExtractAudio writes the input's audio track as a mono 16kHz signed 16-bit
// PCM WAV file, the layout speech-to-text engines expect.
func (p *Processor) ExtractAudio(inputPath, outputPath string) error {
	stream := ffmpeg.Input(inputPath).Output(outputPath, ffmpeg.KwArgs{
		"vn":  "",
		"ac":  1,
		"ar":  16000,
		"c:a": "pcm_s16le",
	}).OverWriteOutput()

	if p.verbose {
		stream = stream.ErrorToStdOut()
	}
	if err := stream.Run(); err != nil {
		return errors.Wrap(err, "failed to extract audio")
	}
	return nil
}

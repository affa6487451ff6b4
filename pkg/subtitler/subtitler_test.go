package subtitler

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/attiquers/videoSubtitleGenerator/internal/config"
	"github.com/attiquers/videoSubtitleGenerator/internal/render"
	"github.com/attiquers/videoSubtitleGenerator/internal/transcribe"
	"github.com/attiquers/videoSubtitleGenerator/pkg/types"
)

type fakeDecoder struct {
	frames [][]byte
	i      int
}

func (d *fakeDecoder) Next() ([]byte, error) {
	if d.i >= len(d.frames) {
		return nil, io.EOF
	}
	f := d.frames[d.i]
	d.i++
	return f, nil
}

func passthroughCompositor(t *testing.T) *render.Compositor {
	t.Helper()
	// An empty transcript composes every frame as a plain copy.
	comp, err := render.NewCompositor(types.Transcript{}, config.DefaultStyle(), 2, 2)
	if err != nil {
		t.Fatalf("NewCompositor: %v", err)
	}
	return comp
}

func TestFrameFuncHoldsLastFrameAtEOF(t *testing.T) {
	comp := passthroughCompositor(t)
	f0 := bytes.Repeat([]byte{1}, 12)
	f1 := bytes.Repeat([]byte{2}, 12)
	frame := newFrameFunc(&fakeDecoder{frames: [][]byte{f0, f1}}, comp)

	out, err := frame(0)
	if err != nil || !bytes.Equal(out, f0) {
		t.Fatalf("frame 0 = %v, %v", out, err)
	}
	out, err = frame(1.0 / 30)
	if err != nil || !bytes.Equal(out, f1) {
		t.Fatalf("frame 1 = %v, %v", out, err)
	}
	// The probed duration can request more frames than the stream holds;
	// the decoder's EOF must hold the last frame, not abort the render.
	for i := 2; i < 4; i++ {
		out, err = frame(float64(i) / 30)
		if err != nil {
			t.Fatalf("frame %d after stream end: %v", i, err)
		}
		if !bytes.Equal(out, f1) {
			t.Fatalf("frame %d = %v, want held last frame", i, out)
		}
	}
}

func TestFrameFuncEOFBeforeFirstFrame(t *testing.T) {
	frame := newFrameFunc(&fakeDecoder{}, passthroughCompositor(t))
	if _, err := frame(0); err == nil {
		t.Fatal("a stream with no frames at all should fail")
	}
}

func TestFrameFuncCopiesDecoderBuffer(t *testing.T) {
	comp := passthroughCompositor(t)
	buf := bytes.Repeat([]byte{7}, 12)
	// The decoder hands out the same backing buffer twice, as the real one
	// does, then mutates it before EOF.
	frame := newFrameFunc(&fakeDecoder{frames: [][]byte{buf, buf}}, comp)

	if _, err := frame(0); err != nil {
		t.Fatal(err)
	}
	for i := range buf {
		buf[i] = 9
	}
	if _, err := frame(1.0 / 30); err != nil {
		t.Fatal(err)
	}
	out, err := frame(2.0 / 30)
	if err != nil {
		t.Fatal(err)
	}
	want := bytes.Repeat([]byte{9}, 12)
	if !bytes.Equal(out, want) {
		t.Fatalf("held frame = %v, want the last decoded contents %v", out, want)
	}
}

func TestExportImportSRTRoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := types.Transcript{Segments: []types.Segment{
		{Start: 0, End: 2, Words: []types.Word{
			{Text: "Hello", Start: 0, End: 1},
			{Text: "world", Start: 1, End: 2},
		}},
	}}

	transcriptPath := filepath.Join(dir, "words.json")
	srtPath := filepath.Join(dir, "captions.srt")
	outPath := filepath.Join(dir, "edited.json")

	if err := transcribe.SaveTranscript(transcriptPath, original); err != nil {
		t.Fatal(err)
	}
	if err := ExportSRT(transcriptPath, srtPath); err != nil {
		t.Fatalf("ExportSRT: %v", err)
	}

	data, err := os.ReadFile(srtPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "00:00:00,000 --> 00:00:02,000") {
		t.Fatalf("unexpected SRT contents:\n%s", data)
	}

	// Edit the caption text and import it back.
	edited := strings.Replace(string(data), "Hello world", "Goodbye earth", 1)
	if err := os.WriteFile(srtPath, []byte(edited), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ImportSRT(srtPath, transcriptPath, outPath); err != nil {
		t.Fatalf("ImportSRT: %v", err)
	}

	got, err := transcribe.LoadTranscript(outPath)
	if err != nil {
		t.Fatal(err)
	}
	want := original
	want.Segments[0].Words[0].Text = "Goodbye"
	want.Segments[0].Words[1].Text = "earth"
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("imported transcript:\n%+v\nwant:\n%+v", got, want)
	}
}

func TestExportSRTMissingTranscript(t *testing.T) {
	dir := t.TempDir()
	err := ExportSRT(filepath.Join(dir, "nope.json"), filepath.Join(dir, "out.srt"))
	if err == nil {
		t.Fatal("expected error for missing transcript")
	}
}

package transcribe

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/attiquers/videoSubtitleGenerator/pkg/types"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	tr := types.Transcript{Segments: []types.Segment{
		{Start: 0, End: 2.5, Words: []types.Word{
			{Text: "Hello", Start: 0, End: 1.2},
			{Text: "world", Start: 1.2, End: 2.5},
		}},
	}}

	path := filepath.Join(t.TempDir(), "words.json")
	if err := SaveTranscript(path, tr); err != nil {
		t.Fatalf("SaveTranscript: %v", err)
	}
	got, err := LoadTranscript(path)
	if err != nil {
		t.Fatalf("LoadTranscript: %v", err)
	}
	if !reflect.DeepEqual(got, tr) {
		t.Fatalf("round trip changed the transcript:\n%+v\nwant:\n%+v", got, tr)
	}
}

func TestLoadTranscriptMissingFile(t *testing.T) {
	if _, err := LoadTranscript(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNewDefaultsBinary(t *testing.T) {
	a := New("", "model.bin")
	if a.bin != "whisper-cli" {
		t.Errorf("default binary = %q, want whisper-cli", a.bin)
	}
	if a.model != "model.bin" {
		t.Errorf("model = %q", a.model)
	}
}

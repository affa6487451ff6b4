package types

import (
	"encoding/json"
	"testing"
)

func TestWordContains(t *testing.T) {
	w := Word{Text: "hi", Start: 1.0, End: 2.0}
	tests := []struct {
		t    float64
		want bool
	}{
		{0.5, false},
		{1.0, true},
		{1.5, true},
		{2.0, true},
		{2.1, false},
	}
	for _, tt := range tests {
		if got := w.Contains(tt.t); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestSegmentText(t *testing.T) {
	seg := Segment{Words: []Word{{Text: "Hello"}, {Text: "world"}}}
	if got := seg.Text(); got != "Hello world" {
		t.Errorf("Text() = %q, want %q", got, "Hello world")
	}
	if got := (Segment{}).Text(); got != "" {
		t.Errorf("empty segment Text() = %q, want empty", got)
	}
}

func TestWordJSONKey(t *testing.T) {
	// Word text marshals under the "word" key, matching whisper.cpp output.
	b, err := json.Marshal(Word{Text: "hi", Start: 0.5, End: 1})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m["word"] != "hi" {
		t.Fatalf("marshaled word = %v", m)
	}
}

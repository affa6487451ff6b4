package subtitler

import (
	"strings"
	"testing"

	"github.com/attiquers/videoSubtitleGenerator/internal/config"
	"github.com/attiquers/videoSubtitleGenerator/internal/render"
	"github.com/attiquers/videoSubtitleGenerator/pkg/types"
)

func hintTranscript(word string) types.Transcript {
	return types.Transcript{Segments: []types.Segment{
		{Start: 0, End: 1, Words: []types.Word{{Text: word, Start: 0, End: 1}}},
	}}
}

func TestFontSizeHintOverflowingWord(t *testing.T) {
	style := config.DefaultStyle()
	tr := hintTranscript(strings.Repeat("incomprehensibilities", 3))

	// A 200px frame leaves a 160px subtitle area, far too narrow for the
	// word at size 48.
	size, ok := fontSizeHint(tr, style, 200)
	if !ok {
		t.Fatal("expected a size hint for an overflowing word")
	}
	if size < 10 || size >= style.FontSize {
		t.Fatalf("suggested size %d outside [10, %d)", size, style.FontSize)
	}
	// The suggestion actually fits, unless it bottomed out at the floor.
	if size > 10 {
		face, err := render.ResolveFace(style.Font, float64(size))
		if err != nil {
			t.Fatal(err)
		}
		if face.MeasureString(tr.Segments[0].Words[0].Text) > 200*style.AreaWidthPercent/100 {
			t.Errorf("suggested size %d still overflows", size)
		}
	}
}

func TestFontSizeHintFittingText(t *testing.T) {
	style := config.DefaultStyle()
	if _, ok := fontSizeHint(hintTranscript("hi"), style, 1920); ok {
		t.Fatal("no hint expected when the text already fits")
	}
}

func TestFontSizeHintEmptyTranscript(t *testing.T) {
	style := config.DefaultStyle()
	if _, ok := fontSizeHint(types.Transcript{}, style, 1920); ok {
		t.Fatal("no hint expected for an empty transcript")
	}
}

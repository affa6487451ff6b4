// Package srt converts word-level transcripts to and from the editable SRT
// captions format. Import maps edited text back onto the original transcript
// positionally, so per-word timings always come from the original.
package srt

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/attiquers/videoSubtitleGenerator/pkg/types"
)

// ErrMalformedCaptions marks an SRT block that does not parse. Malformed
// blocks are skipped during import; they never fail the whole import.
var ErrMalformedCaptions = errors.New("malformed captions block")

var timingLine = regexp.MustCompile(`^\d{2}:\d{2}:\d{2},\d{3} --> \d{2}:\d{2}:\d{2},\d{3}$`)

// FormatTime converts seconds to the SRT timestamp format HH:MM:SS,mmm.
// Rounding happens at the millisecond so carries propagate through every
// field.
func FormatTime(seconds float64) string {
	ms := int(math.Round(math.Abs(seconds) * 1000))
	hours := ms / 3600000
	minutes := ms % 3600000 / 60000
	secs := ms % 60000 / 1000
	millis := ms % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// Format converts a transcript to SRT text, one numbered block per segment.
// Segments with no text are left out.
func Format(tr types.Transcript) string {
	var b strings.Builder
	for i, seg := range tr.Segments {
		text := strings.TrimSpace(seg.Text())
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", i+1, FormatTime(seg.Start), FormatTime(seg.End), text)
	}
	return b.String()
}

// Parse re-associates edited SRT text with the original transcript. Blocks
// pair with original segments by position; edited word j inherits the timing
// of original word j. Edited text with fewer words leaves the remaining
// original words untouched; extra edited words are dropped. Malformed blocks
// are skipped but still consume their segment slot, keeping later blocks
// aligned.
func Parse(srtText string, original types.Transcript) types.Transcript {
	normalized := strings.ReplaceAll(strings.TrimSpace(srtText), "\r\n", "\n")
	blocks := strings.Split(normalized, "\n\n")

	var out types.Transcript
	for i, block := range blocks {
		if i >= len(original.Segments) {
			break
		}
		text, err := parseBlock(block)
		if err != nil {
			continue
		}
		out.Segments = append(out.Segments, retime(original.Segments[i], text))
	}
	return out
}

// parseBlock extracts the caption text from one SRT block, validating its
// shape (index line, timing line, at least one text line).
func parseBlock(block string) (string, error) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) < 3 {
		return "", errors.Wrap(ErrMalformedCaptions, "fewer than 3 lines")
	}
	if !timingLine.MatchString(strings.TrimSpace(lines[1])) {
		return "", errors.Wrapf(ErrMalformedCaptions, "bad timing line %q", lines[1])
	}
	return strings.TrimSpace(strings.Join(lines[2:], " ")), nil
}

// retime maps edited text onto the original segment's word timings.
func retime(orig types.Segment, text string) types.Segment {
	edited := strings.Fields(text)
	seg := types.Segment{
		Start: orig.Start,
		End:   orig.End,
		Words: make([]types.Word, len(orig.Words)),
	}
	for j, ow := range orig.Words {
		w := ow
		if j < len(edited) {
			w.Text = edited[j]
		}
		seg.Words[j] = w
	}
	return seg
}

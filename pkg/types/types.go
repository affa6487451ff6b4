package types

import "strings"

// Word is a single transcribed word with its spoken time range in seconds.
type Word struct {
	Text  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Segment is a contiguous transcript unit. Its time range comes from the
// transcription source and is not re-derived from the words.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Words []Word  `json:"words"`
}

// Transcript is an ordered sequence of segments, ordered by start time.
// Segments may overlap; consumers pick the first match in document order.
type Transcript struct {
	Segments []Segment `json:"segments"`
}

// Contains reports whether t falls inside the word's spoken range.
func (w Word) Contains(t float64) bool {
	return w.Start <= t && t <= w.End
}

// Contains reports whether t falls inside the segment's time range.
func (s Segment) Contains(t float64) bool {
	return s.Start <= t && t <= s.End
}

// Text joins the segment's words with single spaces.
func (s Segment) Text() string {
	parts := make([]string, len(s.Words))
	for i, w := range s.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

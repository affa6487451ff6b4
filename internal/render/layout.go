package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/attiquers/videoSubtitleGenerator/internal/config"
	"github.com/attiquers/videoSubtitleGenerator/pkg/types"
)

// PlannedWord is one word of a segment after case transform and measurement.
// Index is the word's position in the source segment, which is what the
// active-word resolver reports.
type PlannedWord struct {
	Word  types.Word
	Index int
	Text  string
	Width int
}

// Line is one wrapped line with its total measured width (word widths plus
// inter-word spaces).
type Line struct {
	Words []PlannedWord
	Width int
}

// Plan is the precomputed layout of one segment under one style: wrapped
// lines, measured widths, block dimensions. A plan depends only on the
// segment's words and the style, never on the render time, so it is built
// once per segment and reused for every frame in the segment's span.
type Plan struct {
	Lines       []Line
	BlockWidth  int
	BlockHeight int
	LineHeight  int
	SpaceWidth  int
}

// WordCount returns the number of laid-out words across all lines.
func (p *Plan) WordCount() int {
	n := 0
	for _, ln := range p.Lines {
		n += len(ln.Words)
	}
	return n
}

// ApplyCase transforms text according to the configured word case. Casing is
// Unicode-aware.
func ApplyCase(text string, mode config.CaseMode) string {
	switch mode {
	case config.CaseUpper:
		return strings.ToUpper(text)
	case config.CaseLower:
		return strings.ToLower(text)
	case config.CaseTitle:
		return cases.Title(language.Und).String(text)
	default:
		return text
	}
}

// Wrap lays out words greedily into lines no wider than maxWidth pixels,
// measuring each word under face after applying the case transform. A single
// word wider than maxWidth is never split: it becomes its own line and may
// overflow. Wrap is a pure function of its inputs.
func Wrap(words []types.Word, maxWidth int, face *Face, mode config.CaseMode) *Plan {
	spaceWidth := face.MeasureString(" ")
	lineHeight := int(face.Size() * 1.2)
	if measured := face.Height() + 5; measured > lineHeight {
		lineHeight = measured
	}

	plan := &Plan{
		LineHeight: lineHeight,
		SpaceWidth: spaceWidth,
	}

	var cur Line
	for i, w := range words {
		text := ApplyCase(strings.TrimSpace(w.Text), mode)
		if text == "" {
			continue
		}
		width := face.MeasureString(text)
		pw := PlannedWord{Word: w, Index: i, Text: text, Width: width}

		if len(cur.Words) > 0 && cur.Width+spaceWidth+width > maxWidth {
			plan.Lines = append(plan.Lines, cur)
			cur = Line{Words: []PlannedWord{pw}, Width: width}
			continue
		}
		if len(cur.Words) > 0 {
			cur.Width += spaceWidth
		}
		cur.Words = append(cur.Words, pw)
		cur.Width += width
	}
	if len(cur.Words) > 0 {
		plan.Lines = append(plan.Lines, cur)
	}

	for _, ln := range plan.Lines {
		if ln.Width > plan.BlockWidth {
			plan.BlockWidth = ln.Width
		}
	}
	plan.BlockHeight = len(plan.Lines) * lineHeight
	return plan
}

// BuildPlans precomputes one layout plan per segment, indexed by segment
// position. The returned slice is written here once and treated as read-only
// by the frame loop.
func BuildPlans(tr types.Transcript, maxWidth int, face *Face, mode config.CaseMode) []*Plan {
	plans := make([]*Plan, len(tr.Segments))
	for i, seg := range tr.Segments {
		plans[i] = Wrap(seg.Words, maxWidth, face, mode)
	}
	return plans
}

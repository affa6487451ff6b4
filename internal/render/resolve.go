package render

import "github.com/attiquers/videoSubtitleGenerator/pkg/types"

// Resolve returns the index of the live segment at time t and the index of
// the active word within it. Segments are scanned in document order and the
// first one whose range contains t wins, so overlaps resolve to the earlier
// segment. The word index is -1 when t falls in a gap between words; the
// segment index is -1 when no segment is live, in which case nothing is
// rendered for the frame.
func Resolve(tr types.Transcript, t float64) (segment, word int) {
	for i, seg := range tr.Segments {
		if !seg.Contains(t) {
			continue
		}
		for j, w := range seg.Words {
			if w.Contains(t) {
				return i, j
			}
		}
		return i, -1
	}
	return -1, -1
}

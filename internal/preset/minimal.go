package preset

import "github.com/attiquers/videoSubtitleGenerator/internal/config"

// Minimal renders plain white text on a dimmed block, with the active word
// style disabled entirely.
type Minimal struct{}

func init() {
	Register(&Minimal{})
}

func (p *Minimal) GetName() string {
	return "minimal"
}

func (p *Minimal) GetStyle() config.Style {
	s := config.DefaultStyle()
	s.ActiveDisabled = true
	s.NormalOutlineThickness = 0
	s.BgOpacity = 70
	s.BgCornerRadius = 8
	return s
}

package preset

import "github.com/attiquers/videoSubtitleGenerator/internal/config"

// Karaoke highlights the spoken word with a boxed background and a slight
// size bump, the look common on short-form vertical video.
type Karaoke struct{}

func init() {
	Register(&Karaoke{})
}

func (p *Karaoke) GetName() string {
	return "karaoke"
}

func (p *Karaoke) GetStyle() config.Style {
	s := config.DefaultStyle()
	s.WordCase = config.CaseUpper
	s.ActiveColor = "#FFFFFF"
	s.ActiveSizeScale = 1.1
	s.ActiveBgColor = "#FF3366"
	s.ActiveBgOpacity = 100
	s.ActiveBgCornerRadius = 12
	return s
}

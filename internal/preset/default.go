package preset

import "github.com/attiquers/videoSubtitleGenerator/internal/config"

type Default struct{}

func init() {
	Register(&Default{})
}

func (p *Default) GetName() string {
	return "default"
}

func (p *Default) GetStyle() config.Style {
	return config.DefaultStyle()
}

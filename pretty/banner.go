package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is shown once at the top of a step sequence.
type Banner struct {
	Text    string `yaml:"text" toml:"text"`
	Caption string `yaml:"caption" toml:"caption"`
}

func (it *Banner) Empty() bool {
	return it == nil || len(strings.TrimSpace(it.Text)) == 0
}

// RenderContext tracks how many screen rows a session has painted from the
// top of a cleared screen. Only whole-screen bookkeeping uses it.
type RenderContext struct {
	Row int
}

func (it *RenderContext) Reset() {
	it.Row = 0
}

func (it *RenderContext) Advance(lines int) {
	it.Row += lines
}

// RenderBanner returns the painted banner body and its height in lines.
func RenderBanner(text string) (string, int) {
	body := bannerStyle.Render(text)
	return body, lipgloss.Height(body)
}

// ShowBanner clears the screen and paints the banner, then accounts for the
// lines it used.
func (it *RenderContext) ShowBanner(terminal Terminal, banner *Banner) {
	if banner.Empty() {
		return
	}
	terminal.ClearScreen()
	it.Reset()
	body, height := RenderBanner(banner.Text)
	terminal.Write(body + "\n")
	it.Advance(height)
	if len(banner.Caption) > 0 {
		terminal.Write(Caption(banner.Caption) + "\n")
		it.Advance(1)
	}
}

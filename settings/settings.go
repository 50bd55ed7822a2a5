package settings

import (
	"strings"

	"github.com/joshyorko/prompter/common"
	"github.com/joshyorko/prompter/pretty"
	"github.com/joshyorko/prompter/xviper"
)

const (
	envPrefix = `PROMPTER`

	MarkerKey  = `ui.marker`
	AccentKey  = `ui.accent`
	ColorsKey  = `ui.colors`
	BannerKey  = `banner.text`
	CaptionKey = `banner.caption`
	AliasesKey = `aliases`
	NumberKey  = `log.linenumbers`
	HideKey    = `log.hide`
)

// Settings is a snapshot of user configuration.
type Settings struct {
	Source  string
	Theme   pretty.Theme
	Colors  bool
	Banner  *pretty.Banner
	Aliases map[string]string
	Numbers bool
	Hides   []string
}

var Global = defaults()

func defaults() *Settings {
	return &Settings{
		Theme:   pretty.Theme{Marker: pretty.DefaultMarker, Accent: pretty.DefaultAccent},
		Colors:  true,
		Aliases: map[string]string{},
	}
}

// Summon loads configuration from configFile, or when it is empty from
// prompter.yaml in the working directory or the product home. Environment
// variables prefixed with PROMPTER_ override file values.
func Summon(configFile string) (*Settings, error) {
	mode := common.ProductMode()
	err := xviper.Load(configFile, mode.SettingsName(), envPrefix, mode.SettingsLocations(), map[string]interface{}{
		MarkerKey: pretty.DefaultMarker,
		AccentKey: pretty.DefaultAccent,
		ColorsKey: true,
	})
	if err != nil {
		return nil, err
	}
	result := &Settings{
		Source: xviper.ConfigFileUsed(),
		Theme: pretty.Theme{
			Marker: xviper.GetString(MarkerKey),
			Accent: xviper.GetString(AccentKey),
		},
		Colors:  xviper.GetBool(ColorsKey),
		Aliases: make(map[string]string),
		Numbers: xviper.GetBool(NumberKey),
		Hides:   xviper.GetStringSlice(HideKey),
	}
	if text := xviper.GetString(BannerKey); len(strings.TrimSpace(text)) > 0 {
		result.Banner = &pretty.Banner{Text: text, Caption: xviper.GetString(CaptionKey)}
	}
	for name, line := range xviper.GetStringMapString(AliasesKey) {
		result.Aliases[name] = line
	}
	Global = result
	common.Debug("Settings from %q: %d aliases.", result.Source, len(result.Aliases))
	return result, nil
}

// Apply pushes the settings into logging, terminal setup and styling.
func (it *Settings) Apply() {
	common.NumberLogs(it.Numbers)
	common.HideLogs(it.Hides...)
	if !it.Colors {
		pretty.Disabled = true
	}
	pretty.Setup()
	pretty.UseTheme(it.Theme)
}

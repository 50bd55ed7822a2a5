package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshyorko/prompter/common"
	"github.com/joshyorko/prompter/hamlet"
	"github.com/joshyorko/prompter/pretty"
	"github.com/joshyorko/prompter/settings"
)

func TestSummonWithoutFileGivesDefaults(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	t.Setenv("PROMPTER_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	sut, err := settings.Summon("")
	must_be.Nil(err)
	wont_be.Nil(sut)
	must_be.Equal("", sut.Source)
	must_be.Equal(pretty.DefaultMarker, sut.Theme.Marker)
	must_be.Equal(pretty.DefaultAccent, sut.Theme.Accent)
	must_be.True(sut.Colors)
	must_be.True(sut.Banner.Empty())
	must_be.Equal(0, len(sut.Aliases))
	must_be.Same(sut, settings.Global)
}

func TestSummonReadsConfigFileAndEnvironment(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	filename := filepath.Join(t.TempDir(), "prompter.yaml")
	content := `
ui:
  marker: "> "
  colors: false
banner:
  text: Welcome
  caption: to the setup
aliases:
  quick: new --yes
log:
  linenumbers: true
  hide:
    - secret
`
	must_be.Nil(os.WriteFile(filename, []byte(content), 0o600))
	t.Setenv("PROMPTER_UI_ACCENT", "5")

	sut, err := settings.Summon(filename)
	must_be.Nil(err)
	must_be.Equal(filename, sut.Source)
	must_be.Equal("> ", sut.Theme.Marker)
	must_be.Equal("5", sut.Theme.Accent)
	must_be.True(!sut.Colors)
	must_be.Equal("Welcome", sut.Banner.Text)
	must_be.Equal("to the setup", sut.Banner.Caption)
	must_be.Equal(map[string]string{"quick": "new --yes"}, sut.Aliases)
	must_be.True(sut.Numbers)
	must_be.Equal([]string{"secret"}, sut.Hides)
}

func TestApplyConfiguresLogging(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	defer common.HideLogs()
	defer common.NumberLogs(false)

	sut := &settings.Settings{Colors: true, Numbers: true, Hides: []string{"token="}}
	sut.Apply()
	must_be.True(common.LogLinenumbers())
	wont_be.True(common.AcceptableOutput("login token=abc"))
	must_be.True(common.AcceptableOutput("login ok"))
	must_be.Equal(pretty.DefaultMarker, pretty.ActiveTheme().Marker)
}

func TestSummonFailsOnMissingExplicitFile(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, err := settings.Summon(filepath.Join(t.TempDir(), "nope.yaml"))
	must_be.Nil(sut)
	wont_be.Nil(err)
}

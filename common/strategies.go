package common

import (
	"os"
	"path/filepath"
)

const (
	PROMPTER_HOME_VARIABLE = `PROMPTER_HOME`
	PROMPTER_PRODUCT_NAME  = `PROMPTER_PRODUCT_NAME`
	PROMPTER_NAME          = `prompter`
)

type (
	ProductStrategy interface {
		Name() string
		ForceHome(string)
		HomeVariable() string
		Home() string
		SettingsName() string
		SettingsLocations() []string
	}

	prompterStrategy struct {
		forcedHome string
	}
)

func ProductMode() ProductStrategy {
	return &prompterStrategy{}
}

func (it *prompterStrategy) Name() string {
	if value := os.Getenv(PROMPTER_PRODUCT_NAME); len(value) > 0 {
		return value
	}
	return PROMPTER_NAME
}

func (it *prompterStrategy) ForceHome(value string) {
	it.forcedHome = value
}

func (it *prompterStrategy) HomeVariable() string {
	return PROMPTER_HOME_VARIABLE
}

func (it *prompterStrategy) Home() string {
	if len(it.forcedHome) > 0 {
		return ExpandPath(it.forcedHome)
	}
	home := os.Getenv(PROMPTER_HOME_VARIABLE)
	if len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(defaultHomeLocation)
}

func (it *prompterStrategy) SettingsName() string {
	return PROMPTER_NAME
}

// SettingsLocations lists directories searched for the settings file, most
// specific first.
func (it *prompterStrategy) SettingsLocations() []string {
	return []string{".", it.Home()}
}

func ExpandPath(entry string) string {
	intermediate := os.ExpandEnv(entry)
	result, err := filepath.Abs(intermediate)
	if err != nil {
		return intermediate
	}
	return result
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joshyorko/prompter/pretty"
	"github.com/joshyorko/prompter/wizard"
	"gopkg.in/yaml.v2"
)

// Script is a declarative step sequence loaded from a file.
type Script struct {
	Banner *pretty.Banner
	Steps  []wizard.Step
}

type scriptDocument struct {
	Banner *pretty.Banner `yaml:"banner" toml:"banner"`
	Steps  []stepEntry    `yaml:"steps" toml:"steps"`
}

type choiceEntry struct {
	Title string      `yaml:"title" toml:"title"`
	Value interface{} `yaml:"value" toml:"value"`
}

type stepEntry struct {
	Type      string        `yaml:"type" toml:"type"`
	Name      string        `yaml:"name" toml:"name"`
	Message   string        `yaml:"message" toml:"message"`
	Initial   interface{}   `yaml:"initial" toml:"initial"`
	Choices   []choiceEntry `yaml:"choices" toml:"choices"`
	Required  string        `yaml:"required" toml:"required"`
	Pattern   string        `yaml:"pattern" toml:"pattern"`
	Error     string        `yaml:"error" toml:"error"`
	Transform string        `yaml:"transform" toml:"transform"`
}

var transforms = map[string]func(string) string{
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"trim":  strings.TrimSpace,
}

// LoadScript reads a step file. ".toml" files are TOML, everything else is
// YAML.
func LoadScript(filename string) (*Script, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var document scriptDocument
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		_, err = toml.Decode(string(content), &document)
	default:
		err = yaml.UnmarshalStrict(content, &document)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", wizard.ErrInvalidArgument, filename, err)
	}
	return document.script()
}

func (it scriptDocument) script() (*Script, error) {
	steps := make([]wizard.Step, 0, len(it.Steps))
	for at, entry := range it.Steps {
		step, err := entry.step()
		if err != nil {
			return nil, fmt.Errorf("step #%d: %w", at+1, err)
		}
		steps = append(steps, step)
	}
	return &Script{Banner: it.Banner, Steps: steps}, nil
}

func (it stepEntry) step() (wizard.Step, error) {
	switch strings.ToLower(it.Type) {
	case "text", "input", "":
		return it.text()
	case "select", "list":
		return it.selection()
	case "confirm":
		return it.confirm()
	}
	return nil, fmt.Errorf("%w: %q", wizard.ErrUnknownStep, it.Type)
}

func (it stepEntry) text() (wizard.Step, error) {
	step := wizard.TextStep{Name: it.Name, Message: it.Message}
	if it.Initial != nil {
		step.Initial = fmt.Sprint(it.Initial)
	}
	var validators []wizard.Validator
	if len(it.Required) > 0 {
		validators = append(validators, wizard.Required(it.Required))
	}
	if len(it.Pattern) > 0 {
		erratic := it.Error
		if len(erratic) == 0 {
			erratic = fmt.Sprintf("Answer must match %s.", it.Pattern)
		}
		matching, err := wizard.Matching(it.Pattern, erratic)
		if err != nil {
			return nil, err
		}
		validators = append(validators, matching)
	}
	if len(validators) > 0 {
		step.Validate = wizard.All(validators...)
	}
	if len(it.Transform) > 0 {
		transform, ok := transforms[strings.ToLower(it.Transform)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown transform %q", wizard.ErrInvalidArgument, it.Transform)
		}
		step.Transform = transform
	}
	return step, nil
}

func (it stepEntry) selection() (wizard.Step, error) {
	choices := make([]wizard.Choice[any], 0, len(it.Choices))
	for _, choice := range it.Choices {
		value := choice.Value
		if value == nil {
			value = choice.Title
		}
		choices = append(choices, wizard.Choice[any]{Title: choice.Title, Value: value})
	}
	var step wizard.Step = wizard.SelectStep{Name: it.Name, Message: it.Message, Choices: choices}
	switch initial := it.Initial.(type) {
	case nil:
	case int:
		step = wizard.SelectStep{Name: it.Name, Message: it.Message, Choices: choices, Initial: initial}
	case int64:
		step = wizard.SelectStep{Name: it.Name, Message: it.Message, Choices: choices, Initial: int(initial)}
	default:
		seeded, err := wizard.Seed([]wizard.Step{step}, fmt.Sprint(initial), nil)
		if err != nil {
			return nil, err
		}
		step = seeded[0]
	}
	return step, nil
}

func (it stepEntry) confirm() (wizard.Step, error) {
	step := wizard.ConfirmStep{Name: it.Name, Message: it.Message}
	switch initial := it.Initial.(type) {
	case nil:
	case bool:
		step.Initial = initial
	default:
		seeded, err := wizard.Seed([]wizard.Step{step}, fmt.Sprint(initial), nil)
		if err != nil {
			return nil, err
		}
		return seeded[0], nil
	}
	return step, nil
}

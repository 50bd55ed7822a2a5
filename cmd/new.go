package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joshyorko/prompter/cli"
	"github.com/joshyorko/prompter/common"
	"github.com/joshyorko/prompter/pretty"
	"github.com/joshyorko/prompter/wizard"
	"gopkg.in/yaml.v2"
)

const projectFile = `project.yaml`

var templates = []wizard.Choice[string]{
	{Title: "Go service", Value: "go-service"},
	{Title: "Go library", Value: "go-library"},
	{Title: "Command line tool", Value: "go-cli"},
}

var newCommand = cli.Command{
	Name:        "new",
	Description: "Create a new project description from a few questions.",
	Aliases:     []string{"create"},
	Argument:    &cli.Argument{Name: "directory", Description: "Where the project goes."},
	Options: []cli.Option{
		{Flags: "-t, --template <kind>", Description: "Project template to use."},
		{Flags: "-l, --license <name>", Description: "License of the project.", Default: "MIT"},
		{Flags: "--git", Description: "Initialize version control."},
		{Flags: "-d, --dryrun", Description: "Only show what would be written."},
	},
	Steps: []wizard.Step{
		wizard.TextStep{
			Name:     "project",
			Message:  "Project name",
			Initial:  "my-project",
			Validate: wizard.All(wizard.Required("Project name is required."), wizard.ValidateName()),
		},
		wizard.SelectStep{Name: "template", Message: "Template", Choices: wizard.Erase(templates)},
		wizard.SelectStep{Name: "license", Message: "License", Choices: wizard.Erase(wizard.Titled("MIT", "Apache-2.0", "BSD-3-Clause", "Unlicense"))},
		wizard.ConfirmStep{Name: "git", Message: "Initialize git?", Initial: true},
	},
}

func describeProject(values cli.Values) yaml.MapSlice {
	return yaml.MapSlice{
		{Key: "name", Value: values.String("project")},
		{Key: "template", Value: values.String("template")},
		{Key: "license", Value: values.String("license")},
		{Key: "git", Value: values.Bool("git")},
	}
}

func createProject(ctx context.Context, values cli.Values) error {
	directory := values.String("directory")
	if len(directory) == 0 {
		directory = values.String("project")
	}
	body, err := yaml.Marshal(describeProject(values))
	if err != nil {
		return err
	}
	target := filepath.Join(directory, projectFile)
	if values.Bool("dryrun") {
		pretty.Header("# " + target)
		common.Stdout("%s", body)
		return nil
	}
	if err := os.MkdirAll(directory, 0o750); err != nil {
		return err
	}
	if _, err := os.Stat(target); err == nil {
		pretty.WarnMessage(fmt.Sprintf("Leaving existing %s untouched.", target))
		return fmt.Errorf("%w: %s already exists", wizard.ErrInvalidArgument, target)
	}
	if err := os.WriteFile(target, body, 0o640); err != nil {
		return err
	}
	pretty.Success(fmt.Sprintf("Wrote %s.", target))
	return pretty.Ok()
}

func init() {
	registry.Register(newCommand.Name, createProject)
	if err := program.Command(newCommand); err != nil {
		panic(err)
	}
}

package cmd

import (
	"github.com/joshyorko/prompter/cli"
	"github.com/joshyorko/prompter/common"
	"github.com/joshyorko/prompter/pretty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <stepfile>",
		Short: "Ask the questions listed in a YAML or TOML step file.",
		Long: `Ask runs the steps of a step file in order and prints the answers as YAML.
Files ending in .toml are read as TOML, everything else as YAML.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := cli.LoadScript(args[0])
			if err != nil {
				return err
			}
			accept, _ := cmd.Flags().GetBool("yes")
			answers, err := program.Ask(cmd.Context(), script.Steps, script.Banner, accept)
			if err != nil {
				return err
			}
			body, err := yaml.Marshal(answers)
			if err != nil {
				return err
			}
			common.Stdout("%s", body)
			return pretty.Ok()
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version.",
		Run: func(cmd *cobra.Command, args []string) {
			common.Stdout("%s\n", common.Version)
		},
	}
}

func init() {
	program.Extend(askCmd)
	program.Extend(versionCmd)
}

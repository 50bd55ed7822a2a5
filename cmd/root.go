package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/joshyorko/prompter/cli"
	"github.com/joshyorko/prompter/common"
	"github.com/joshyorko/prompter/pretty"
	"github.com/joshyorko/prompter/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	debugFlag  bool
	traceFlag  bool
	silentFlag bool
	configFile string

	// Terminal overrides the console used by prompts.
	Terminal pretty.Terminal

	registry = cli.NewRegistry()
	program  = cli.NewProgram(common.Program, "Ask questions on the terminal, then act on the answers.", common.Version, registry)
)

func verbosityFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&debugFlag, "debug", false, "Turn on debugging output.")
	flags.BoolVar(&traceFlag, "trace", false, "Turn on tracing output.")
	flags.BoolVar(&silentFlag, "silent", false, "Be less verbose on output.")
	flags.StringVar(&configFile, "config", "", "Settings file to use (default is prompter.yaml in working directory or product home).")
}

// prescan picks out the global flags before aliases are expanded, since the
// alias table itself lives in settings.
func prescan(args []string) {
	flags := pflag.NewFlagSet("prescan", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.SetOutput(io.Discard)
	flags.BoolP("help", "h", false, "")
	verbosityFlags(flags)
	flags.Parse(args)
	common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
}

func init() {
	program.Configure(func(root *cobra.Command) {
		verbosityFlags(root.PersistentFlags())
		root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
			common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
			common.Debug("Handlers registered: %s.", strings.Join(registry.Names(), ", "))
		}
	})
}

// Execute loads settings, applies them and runs the command line in args.
func Execute(ctx context.Context, args []string) error {
	prescan(args)
	defer common.Stopwatch("Command lasted").Debug()

	config, err := settings.Summon(configFile)
	if err != nil {
		return err
	}
	config.Apply()
	if Terminal != nil {
		program.Terminal = Terminal
	}
	program.Aliases = config.Aliases
	program.Banner = config.Banner
	return program.Execute(ctx, args)
}

package cli

import (
	"context"
	"fmt"

	"github.com/joshyorko/prompter/common"
	"github.com/joshyorko/prompter/pretty"
	"github.com/joshyorko/prompter/wizard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Argument is the single positional argument of a command. Its value is
// stored under Name and seeds the first step.
type Argument struct {
	Name        string
	Description string
	Required    bool
}

// Option is one "--flag value" pair of a command.
type Option struct {
	Flags       string
	Description string
	Default     string
}

// Command declares a command: its inputs, the questions asked before the
// handler runs, and optionally a banner shown above them.
type Command struct {
	Name        string
	Description string
	Aliases     []string
	Argument    *Argument
	Options     []Option
	Steps       []wizard.Step
	Banner      *pretty.Banner
}

// bareOptional is what an optional-value option holds when it is given
// without a value. Handlers then see true instead of a string.
const bareOptional = "true"

type declared struct {
	command Command
	flags   []Flag
}

// Program collects command declarations and runs them through cobra.
type Program struct {
	Name        string
	Description string
	Version     string

	// Terminal used by prompts; nil means the process console.
	Terminal pretty.Terminal
	// Aliases expanded in front of argv before parsing.
	Aliases map[string]string
	// Banner shown for commands that declare none.
	Banner *pretty.Banner

	registry *Registry
	render   pretty.RenderContext
	commands []declared
	extras   []func() *cobra.Command
	setup    []func(*cobra.Command)
}

func NewProgram(name, description, version string, registry *Registry) *Program {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Program{
		Name:        name,
		Description: description,
		Version:     version,
		registry:    registry,
	}
}

func (it *Program) Registry() *Registry {
	return it.registry
}

// Rows reports the screen rows accounted for by banners so far.
func (it *Program) Rows() int {
	return it.render.Row
}

// Command declares a command. Malformed option flags are rejected here, at
// registration time.
func (it *Program) Command(command Command) error {
	if len(command.Name) == 0 {
		return fmt.Errorf("%w: command without a name", wizard.ErrInvalidArgument)
	}
	for _, known := range it.commands {
		if known.command.Name == command.Name {
			return fmt.Errorf("%w: command %q declared twice", wizard.ErrInvalidArgument, command.Name)
		}
	}
	flags := make([]Flag, 0, len(command.Options))
	seen := map[string]bool{"yes": true, "help": true, "version": true, "-y": true, "-h": true}
	for _, option := range command.Options {
		flag, err := ParseFlag(option.Flags)
		if err != nil {
			return fmt.Errorf("command %q: %w", command.Name, err)
		}
		if seen[flag.Long] || (len(flag.Short) > 0 && seen["-"+flag.Short]) {
			return fmt.Errorf("%w: command %q repeats option %q", wizard.ErrInvalidArgument, command.Name, option.Flags)
		}
		seen[flag.Long] = true
		if len(flag.Short) > 0 {
			seen["-"+flag.Short] = true
		}
		flags = append(flags, flag)
	}
	it.commands = append(it.commands, declared{command: command, flags: flags})
	return nil
}

// Extend attaches a plain cobra command next to the declared ones. The
// command is built anew for every root, so flag state never leaks between
// runs.
func (it *Program) Extend(build func() *cobra.Command) {
	it.extras = append(it.extras, build)
}

// Configure registers a hook applied to the root command once it is built,
// for persistent flags and pre-run logic.
func (it *Program) Configure(hook func(root *cobra.Command)) {
	it.setup = append(it.setup, hook)
}

func (it *Program) terminal() pretty.Terminal {
	if it.Terminal == nil {
		it.Terminal = pretty.NewConsole()
	}
	return it.Terminal
}

// Root builds the cobra command tree.
func (it *Program) Root() *cobra.Command {
	root := &cobra.Command{
		Use:           it.Name,
		Short:         it.Description,
		Version:       it.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("yes", "y", false, "Accept default answers without prompting.")
	for _, entry := range it.commands {
		root.AddCommand(it.cobraCommand(entry))
	}
	for _, build := range it.extras {
		root.AddCommand(build())
	}
	for _, hook := range it.setup {
		hook(root)
	}
	return root
}

func (it *Program) cobraCommand(entry declared) *cobra.Command {
	command := entry.command
	use := command.Name
	args := cobra.MaximumNArgs(0)
	if command.Argument != nil {
		if command.Argument.Required {
			use += fmt.Sprintf(" <%s>", command.Argument.Name)
			args = cobra.ExactArgs(1)
		} else {
			use += fmt.Sprintf(" [%s]", command.Argument.Name)
			args = cobra.MaximumNArgs(1)
		}
	}
	result := &cobra.Command{
		Use:     use,
		Aliases: command.Aliases,
		Short:   command.Description,
		Args:    args,
		RunE: func(cmd *cobra.Command, positional []string) error {
			return it.run(cmd.Context(), cmd.Flags(), entry, positional)
		},
	}
	for at, flag := range entry.flags {
		option := command.Options[at]
		if flag.Boolean() {
			result.Flags().BoolP(flag.Long, flag.Short, false, option.Description)
			continue
		}
		result.Flags().StringP(flag.Long, flag.Short, option.Default, option.Description)
		if flag.Optional() {
			result.Flags().Lookup(flag.Long).NoOptDefVal = bareOptional
		}
	}
	return result
}

// options collects values of flags the user set or that have defaults.
func options(flags *pflag.FlagSet, entry declared) (map[string]string, Values) {
	seeds := make(map[string]string)
	values := make(Values)
	for at, flag := range entry.flags {
		found := flags.Lookup(flag.Long)
		if found == nil {
			continue
		}
		if flag.Boolean() {
			set, _ := flags.GetBool(flag.Long)
			values[flag.Long] = set
			if found.Changed {
				seeds[flag.Long] = found.Value.String()
			}
			continue
		}
		value := found.Value.String()
		if flag.Optional() && found.Changed && value == bareOptional {
			values[flag.Long] = true
			continue
		}
		if found.Changed || len(entry.command.Options[at].Default) > 0 {
			seeds[flag.Long] = value
			values[flag.Long] = value
		}
	}
	return seeds, values
}

func (it *Program) run(ctx context.Context, flags *pflag.FlagSet, entry declared, positional []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	command := entry.command
	handler, err := it.registry.Resolve(command.Name)
	if err != nil {
		return err
	}
	seeds, values := options(flags, entry)
	argument := ""
	if len(positional) > 0 {
		argument = positional[0]
		values[command.Argument.Name] = argument
	}
	steps, err := wizard.Seed(command.Steps, argument, seeds)
	if err != nil {
		return err
	}
	accept, _ := flags.GetBool("yes")

	common.Debug("Running command %q with %d steps.", command.Name, len(steps))
	answers, err := it.Ask(ctx, steps, command.Banner, accept)
	if err != nil {
		return err
	}
	common.Trace("Command %q answered, %d banner rows painted.", command.Name, it.Rows())
	for _, name := range answers.Names() {
		value, _ := answers.Get(name)
		values[name] = value
	}
	return handler(ctx, values)
}

// Ask runs steps on the program terminal, sharing its banner bookkeeping
// across commands. An empty banner falls back to the program banner.
func (it *Program) Ask(ctx context.Context, steps []wizard.Step, banner *pretty.Banner, acceptDefaults bool) (*wizard.Answers, error) {
	if banner.Empty() {
		banner = it.Banner
	}
	prompter := wizard.New(it.terminal())
	prompter.AcceptDefaults = acceptDefaults
	return prompter.Run(ctx, &it.render, steps, banner)
}

// Execute expands aliases in args and runs the matching command.
func (it *Program) Execute(ctx context.Context, args []string) error {
	expanded, err := ExpandAlias(args, it.Aliases)
	if err != nil {
		return err
	}
	root := it.Root()
	root.SetArgs(expanded)
	return root.ExecuteContext(ctx)
}

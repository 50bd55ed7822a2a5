package cli

import (
	"fmt"

	"github.com/google/shlex"
	"github.com/joshyorko/prompter/common"
	"github.com/joshyorko/prompter/wizard"
)

// ExpandAlias replaces a leading alias in args with its configured command
// line, split with shell quoting rules. Expansion happens once; an alias
// pointing at another alias is not followed.
func ExpandAlias(args []string, aliases map[string]string) ([]string, error) {
	if len(args) == 0 || len(aliases) == 0 {
		return args, nil
	}
	line, ok := aliases[args[0]]
	if !ok {
		return args, nil
	}
	words, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("%w: alias %q: %v", wizard.ErrInvalidArgument, args[0], err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: alias %q is empty", wizard.ErrInvalidArgument, args[0])
	}
	common.Debug("Alias %q expands to %q.", args[0], words)
	result := make([]string, 0, len(words)+len(args)-1)
	result = append(result, words...)
	return append(result, args[1:]...), nil
}

package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/joshyorko/prompter/wizard"
)

var (
	shortPattern       = regexp.MustCompile(`^-([A-Za-z0-9])$`)
	longPattern        = regexp.MustCompile(`^--([A-Za-z0-9][A-Za-z0-9-]*)$`)
	placeholderPattern = regexp.MustCompile(`^(<[^<>\s]+>|\[[^\[\]\s]+\])$`)
)

// Flag is a parsed option flag description such as "-n, --name <value>".
type Flag struct {
	Short       string
	Long        string
	Placeholder string
}

// Boolean flags take no value.
func (it Flag) Boolean() bool {
	return len(it.Placeholder) == 0
}

// Optional placeholders are written in square brackets.
func (it Flag) Optional() bool {
	return strings.HasPrefix(it.Placeholder, "[")
}

// ParseFlag understands "--long", "-s, --long", "--long <value>" and
// "-s, --long [value]". Every option needs a long name, which is also the
// key its value is stored under.
func ParseFlag(form string) (Flag, error) {
	fail := func(reason string) (Flag, error) {
		return Flag{}, fmt.Errorf("%w: option flags %q: %s", wizard.ErrInvalidArgument, form, reason)
	}
	var result Flag
	fields := strings.Fields(strings.ReplaceAll(form, ",", " , "))
	if len(fields) == 0 {
		return fail("empty")
	}
	expectName := true
	for _, field := range fields {
		switch {
		case field == ",":
			if expectName {
				return fail("misplaced comma")
			}
			expectName = true
		case placeholderPattern.MatchString(field):
			if len(result.Placeholder) > 0 || len(result.Long) == 0 {
				return fail("value placeholder must follow the long name")
			}
			result.Placeholder = field
			expectName = false
		case shortPattern.MatchString(field):
			if !expectName || len(result.Short) > 0 || len(result.Long) > 0 {
				return fail("short name must come first")
			}
			result.Short = field[1:]
			expectName = false
		case longPattern.MatchString(field):
			if len(result.Long) > 0 {
				return fail("more than one long name")
			}
			result.Long = field[2:]
			expectName = false
		default:
			return fail(fmt.Sprintf("unexpected %q", field))
		}
	}
	if expectName {
		return fail("dangling comma")
	}
	if len(result.Long) == 0 {
		return fail("long name is required")
	}
	return result, nil
}

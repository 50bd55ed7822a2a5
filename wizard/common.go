package wizard

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	namePattern = regexp.MustCompile("^[\\w-]*$")
)

// Validator inspects an answer and returns an empty string when it is
// acceptable, or the message to show when it is not.
type Validator func(string) string

func memberValidation(members []string, erratic string) Validator {
	return func(input string) string {
		for _, member := range members {
			if input == member {
				return ""
			}
		}
		return erratic
	}
}

func regexpValidation(validator *regexp.Regexp, erratic string) Validator {
	return func(input string) string {
		if !validator.MatchString(input) {
			return erratic
		}
		return ""
	}
}

// OneOf accepts only the listed answers.
func OneOf(members ...string) Validator {
	return memberValidation(members, fmt.Sprintf("Answer must be one of: %s.", strings.Join(members, ", ")))
}

// Matching accepts answers matching pattern, failing with erratic otherwise.
func Matching(pattern string, erratic string) (Validator, error) {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrInvalidArgument, pattern, err)
	}
	return regexpValidation(compiled, erratic), nil
}

// Required rejects blank answers.
func Required(erratic string) Validator {
	return func(input string) string {
		if len(strings.TrimSpace(input)) == 0 {
			return erratic
		}
		return ""
	}
}

// ValidateName accepts names made of word characters and hyphens only.
func ValidateName() Validator {
	return regexpValidation(
		namePattern,
		"Invalid name. Only alphanumeric characters, underscores, and hyphens are allowed.",
	)
}

// All chains validators; the first failure wins.
func All(validators ...Validator) Validator {
	return func(input string) string {
		for _, validator := range validators {
			if validator == nil {
				continue
			}
			if message := validator(input); len(message) > 0 {
				return message
			}
		}
		return ""
	}
}

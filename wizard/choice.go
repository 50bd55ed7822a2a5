package wizard

import (
	"fmt"
	"strings"
)

// Choice is one entry of a select menu. Order of a choice slice is the
// display and navigation order.
type Choice[T any] struct {
	Title string
	Value T
}

// Titled builds choices whose value is their own title.
func Titled(titles ...string) []Choice[string] {
	result := make([]Choice[string], 0, len(titles))
	for _, title := range titles {
		result = append(result, Choice[string]{Title: title, Value: title})
	}
	return result
}

// Erase drops the static value type so typed choices fit a SelectStep.
func Erase[T any](choices []Choice[T]) []Choice[any] {
	result := make([]Choice[any], 0, len(choices))
	for _, choice := range choices {
		result = append(result, Choice[any]{Title: choice.Title, Value: choice.Value})
	}
	return result
}

func checkChoices(message string, count int, initial int) error {
	if count == 0 {
		return fmt.Errorf("%w: select %q has no choices", ErrInvalidArgument, message)
	}
	if initial < 0 || initial >= count {
		return fmt.Errorf("%w: select %q initial index %d outside [0, %d]", ErrInvalidArgument, message, initial, count-1)
	}
	return nil
}

// indexOf finds a choice by title (case-insensitive) or by the printed form
// of its value.
func indexOf[T any](choices []Choice[T], wanted string) (int, bool) {
	for at, choice := range choices {
		if strings.EqualFold(choice.Title, wanted) || fmt.Sprint(choice.Value) == wanted {
			return at, true
		}
	}
	return -1, false
}

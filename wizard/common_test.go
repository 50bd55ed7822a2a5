package wizard

import (
	"errors"
	"testing"

	"github.com/joshyorko/prompter/hamlet"
)

func TestValidators(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	must_be.Equal("", ValidateName()("my-project_1"))
	wont_be.Equal("", ValidateName()("my project"))

	must_be.Equal("", OneOf("a", "b")("b"))
	must_be.Equal("Answer must be one of: a, b.", OneOf("a", "b")("c"))

	must_be.Equal("", Required("missing")("x"))
	must_be.Equal("missing", Required("missing")("   "))

	digits, err := Matching(`^\d+$`, "digits only")
	must_be.Nil(err)
	must_be.Equal("", digits("123"))
	must_be.Equal("digits only", digits("12a"))

	_, err = Matching(`(`, "broken")
	must_be.True(errors.Is(err, ErrInvalidArgument))

	chained := All(Required("required"), nil, digits)
	must_be.Equal("required", chained(""))
	must_be.Equal("digits only", chained("abc"))
	must_be.Equal("", chained("42"))
}

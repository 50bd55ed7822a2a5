// Package hamlet offers "to be or not to be" expectations for tests:
//
//	must_be, wont_be := hamlet.Specifications(t)
//	must_be.Equal(2, len(items))
//	wont_be.Nil(err)
package hamlet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type Hamlet struct {
	t      testing.TB
	expect bool
}

func Specifications(t testing.TB) (*Hamlet, *Hamlet) {
	t.Helper()
	return &Hamlet{t: t, expect: true}, &Hamlet{t: t, expect: false}
}

func (it *Hamlet) fail(message string, details ...interface{}) {
	it.t.Helper()
	it.t.Fatalf(message, details...)
}

func (it *Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	if assert.ObjectsAreEqual(expected, actual) != it.expect {
		it.fail("expected equality to be %v between %#v and %#v", it.expect, expected, actual)
	}
}

func (it *Hamlet) Nil(actual interface{}) {
	it.t.Helper()
	if isNil(actual) != it.expect {
		it.fail("expected nil to be %v for %#v", it.expect, actual)
	}
}

func (it *Hamlet) True(actual bool) {
	it.t.Helper()
	if actual != it.expect {
		it.fail("expected %v, got %v", it.expect, actual)
	}
}

func (it *Hamlet) Same(expected, actual interface{}) {
	it.t.Helper()
	ok := assert.Same(silent{}, expected, actual)
	if ok != it.expect {
		it.fail("expected sameness to be %v between %p and %p", it.expect, expected, actual)
	}
}

func (it *Hamlet) Contains(container, element interface{}) {
	it.t.Helper()
	ok := assert.Contains(silent{}, container, element)
	if ok != it.expect {
		it.fail("expected %#v containing %#v to be %v", container, element, it.expect)
	}
}

func (it *Hamlet) ErrorIs(err, target error) {
	it.t.Helper()
	ok := assert.ErrorIs(silent{}, err, target)
	if ok != it.expect {
		it.fail("expected error %v matching %v to be %v", err, target, it.expect)
	}
}

func (it *Hamlet) Panic(todo func()) {
	it.t.Helper()
	ok := !assert.NotPanics(silent{}, todo)
	if ok != it.expect {
		it.fail("expected panic to be %v", it.expect)
	}
}

func isNil(actual interface{}) bool {
	return assert.Nil(silent{}, actual)
}

// silent lets assert functions be used as predicates without reporting.
type silent struct{}

func (silent) Errorf(string, ...interface{}) {}

package hamlet

import (
	"fmt"
	"reflect"
	"regexp"
	"testing"
)

// Hamlet is a minimal assertion helper. Specifications returns a pair of
// them: the first asserts that things are so, the second that they are not.
type Hamlet struct {
	t        *testing.T
	expected bool
}

func Specifications(t *testing.T) (*Hamlet, *Hamlet) {
	t.Helper()
	return &Hamlet{t, true}, &Hamlet{t, false}
}

func (it *Hamlet) fail(form string, details ...interface{}) {
	it.t.Helper()
	it.t.Errorf(form, details...)
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	deeper := reflect.ValueOf(value)
	switch deeper.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr, reflect.Slice, reflect.Interface:
		return deeper.IsNil()
	}
	return false
}

func (it *Hamlet) True(value bool) {
	it.t.Helper()
	if value != it.expected {
		it.fail("Expected %v to be %v!", value, it.expected)
	}
}

func (it *Hamlet) Nil(value interface{}) {
	it.t.Helper()
	if isNil(value) != it.expected {
		it.fail("Expected nilness of %#v to be %v!", value, it.expected)
	}
}

func (it *Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	if reflect.DeepEqual(expected, actual) != it.expected {
		it.fail("Expected %#v vs. %#v equality to be %v!", expected, actual, it.expected)
	}
}

func (it *Hamlet) Text(expected string, actual interface{}) {
	it.t.Helper()
	it.Equal(expected, fmt.Sprintf("%v", actual))
}

func (it *Hamlet) Match(pattern string, actual interface{}) {
	it.t.Helper()
	matcher, err := regexp.Compile(pattern)
	if err != nil {
		it.t.Fatalf("Invalid pattern %q: %v", pattern, err)
	}
	if matcher.MatchString(fmt.Sprintf("%v", actual)) != it.expected {
		it.fail("Expected %q matching %v to be %v!", pattern, actual, it.expected)
	}
}

func (it *Hamlet) Panic(task func()) {
	it.t.Helper()
	defer func() {
		it.t.Helper()
		caught := recover()
		if (caught != nil) != it.expected {
			it.fail("Expected panic state %v, but got %v!", it.expected, caught)
		}
	}()
	task()
}

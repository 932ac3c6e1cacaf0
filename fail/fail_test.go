package fail_test

import (
	"errors"
	"testing"

	"github.com/appdraft/appdraft/fail"
	"github.com/appdraft/appdraft/hamlet"
)

func flatten(work func()) (err error) {
	defer fail.Around(&err)
	work()
	return nil
}

func TestOnConvertsConditionIntoError(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	err := flatten(func() { fail.On(true, "count was %d", 42) })
	must.Equal("count was 42", err.Error())
}

func TestOnStaysQuietWhenConditionHolds(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Nil(flatten(func() { fail.On(false, "never") }))
}

func TestFastPropagatesExistingErrors(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	trouble := errors.New("broken pipe")
	err := flatten(func() { fail.Fast(trouble) })
	must.Equal("broken pipe", err.Error())

	must.Nil(flatten(func() { fail.Fast(nil) }))
}

func TestForeignPanicsPassThrough(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Panic(func() {
		_ = flatten(func() { panic("unrelated") })
	})
}

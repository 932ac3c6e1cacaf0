// Package fail converts deep call chains into flat error returns. A function
// declares `defer fail.Around(&err)` and then uses On/Fast to bail out; the
// panic is caught at the boundary and turned back into a normal error value.
package fail

import "fmt"

type failure struct {
	message string
}

func (it failure) Error() string {
	return it.message
}

func Around(err *error) {
	caught := recover()
	if caught == nil {
		return
	}
	wrapped, ok := caught.(failure)
	if !ok {
		panic(caught)
	}
	*err = wrapped
}

func On(condition bool, form string, details ...interface{}) {
	if condition {
		panic(failure{fmt.Sprintf(form, details...)})
	}
}

func Fast(err error) {
	if err != nil {
		panic(failure{err.Error()})
	}
}

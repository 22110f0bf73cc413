// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// package must turns errors into panics for command line code.
//
// The degrees command recovers these panics in main(), prints the error and exits.
package must

import "fmt"

// Must panics with err if it is not nil.
// If a format and arguments follow, the panic value is fmt.Errorf(format, args...) instead.
func Must(err error, format ...any) {
	if err == nil {
		return
	}
	if len(format) > 0 {
		if f, ok := format[0].(string); ok {
			err = fmt.Errorf(f, format[1:]...)
		}
	}
	panic(err)
}

// Must1 calls Must(err), then returns v.
func Must1[T any](v T, err error) T { Must(err); return v }

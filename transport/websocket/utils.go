package websocket

import "errors"

// reason strips the internal wrapping layers so the client sees the root
// cause ("it's not your turn"), not the call stack.
func reason(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}

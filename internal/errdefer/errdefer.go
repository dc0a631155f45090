// Package errdefer runs deferred cleanup operations
// whose errors must not be lost.
package errdefer

import (
	"errors"
	"io"

	"braces.dev/errtrace"
)

// Close closes closer and joins its error, if any, into *err.
//
// Use it in a defer statement with a named error return:
//
//	func write(name string) (err error) {
//		f, err := os.Create(name)
//		...
//		defer errdefer.Close(&err, f)
//		...
//	}
func Close(err *error, closer io.Closer) {
	*err = errors.Join(*err, errtrace.Wrap(closer.Close()))
}

package flagvalue

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// List is a flag.Getter that accepts the same flag
// zero or more times and collects every value in order.
//
// T is the element type, and PT must be a pointer to T
// that implements flag.Getter.
type List[T any, PT Getter[T]] []T

// ListOf adapts a slice of values that implement flag.Getter
// into a flag that may be repeated.
//
//	flag.Var(flagvalue.ListOf(&names), "name", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the values recorded so far
// as a slice of the element type.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String returns the values in this list separated by commas.
// This is the same form accepted from environment variables.
func (lv *List[T, PT]) String() string {
	items := make([]string, len(*lv))
	for i, v := range *lv {
		items[i] = fmt.Sprint(v)
	}
	return strings.Join(items, ",")
}

// Set parses a single value and appends it to the list.
// The list is unchanged if the value is invalid.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*lv = append(*lv, v)
	return nil
}

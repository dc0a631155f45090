// Package sliceutil holds helpers for slices
// not covered by the standard library.
package sliceutil

// Convert builds a slice by converting every element of from
// between two string types.
// It returns nil if from is empty.
func Convert[To, From ~string](from []From) []To {
	if len(from) == 0 {
		return nil
	}
	to := make([]To, len(from))
	for i, v := range from {
		to[i] = To(v)
	}
	return to
}

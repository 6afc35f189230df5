package utils

// Unpack2 splits a slice into its first two elements, leaving the missing
// ones at their zero values. Used for rules that take a pair of arguments,
// like clamp: [lo, hi].
func Unpack2[Slice ~[]T, T any](s Slice) (first T, second T) {
	switch len(s) {
	default:
		return s[0], s[1]
	case 0:
		return
	case 1:
		first = s[0]
		return
	}
}

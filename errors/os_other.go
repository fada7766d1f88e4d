//go:build !linux && !darwin

package errors

// decodeErrorKind reports KindUncategorized: OS codes are only decoded on
// Linux and Darwin.
func decodeErrorKind(int32) Kind {
	return KindUncategorized
}

func errnoName(int32) string {
	return ""
}

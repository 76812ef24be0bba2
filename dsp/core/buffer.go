package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen[T any](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// Reverse writes src into dst in reverse order, growing dst as needed via
// EnsureLen. dst must not alias src.
func Reverse[T any](dst, src []T) []T {
	n := len(src)
	dst = EnsureLen(dst, n)
	for i, v := range src {
		dst[n-1-i] = v
	}
	return dst
}

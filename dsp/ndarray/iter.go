package ndarray

// Next advances idx to the next multi-index of shape in row-major order.
// The last axis moves fastest and overflow carries toward axis 0. Next
// returns false, leaving idx all zeros, once the leading axis overflows.
func Next(idx, shape []int) bool {
	for d := len(shape) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < shape[d] {
			return true
		}
		idx[d] = 0
	}
	return false
}

package parsefp

import "slices"

// Sort64 sorts s in ascending [Cmp64] order. Cmp64 gives NaN no
// antisymmetric position, so keys should be NaN-free when a
// reproducible order matters.
func Sort64(s []float64) {
	slices.SortFunc(s, Cmp64)
}

// Sort32 sorts s in ascending [Cmp32] order. See [Cmp32] for how
// negative values are ordered.
func Sort32(s []float32) {
	slices.SortFunc(s, Cmp32)
}

// Search64 locates x in a [Sort64]-ordered slice. It returns the
// position where x was found, or where it would appear, and whether
// it is present.
func Search64(s []float64, x float64) (int, bool) {
	return slices.BinarySearchFunc(s, x, Cmp64)
}

// Search32 locates x in a [Sort32]-ordered slice.
func Search32(s []float32, x float32) (int, bool) {
	return slices.BinarySearchFunc(s, x, Cmp32)
}

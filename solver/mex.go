package solver

import "sort"

// Mex returns the minimum excluded value of the given non-negative
// integers: the smallest non-negative integer absent from the collection.
// Duplicates are tolerated and Mex(nil) is 0.
func Mex(values []int) int {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)

	mex := 0
	for _, v := range sorted {
		if v == mex {
			mex++
		} else if v > mex {
			// v skipped past mex, so mex is missing from the collection.
			return mex
		}
	}
	return mex
}

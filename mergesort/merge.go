package main

import "github.com/exascience/pargo/parallel"

// mergeSequential merges the sorted sub-ranges arr[left..mid] and
// arr[mid+1..right] into sorted order in place. Both sub-ranges must already
// be sorted; this is the driver's responsibility and is not re-checked.
func mergeSequential(arr []int32, left, mid, right int) {
	n1 := mid - left + 1
	n2 := right - mid

	L := make([]int32, n1)
	R := make([]int32, n2)
	copy(L, arr[left:mid+1])
	copy(R, arr[mid+1:right+1])

	mergeBack(arr, L, R, left)
}

// mergeParallel is mergeSequential with the two copy-out phases running
// concurrently. The copies are independent of each other, so the only
// synchronization they need is the barrier before merging back. The
// merge-back stays sequential either way: each output element depends on
// the previous comparison.
func mergeParallel(arr []int32, left, mid, right int) {
	n1 := mid - left + 1
	n2 := right - mid

	L := make([]int32, n1)
	R := make([]int32, n2)
	parallel.Do(
		func() { copy(L, arr[left:mid+1]) },
		func() { copy(R, arr[mid+1:right+1]) },
	)

	mergeBack(arr, L, R, left)
}

// mergeBack interleaves the two sorted temporaries into arr starting at
// left. Ties take the left element, which keeps the merge stable.
func mergeBack(arr, L, R []int32, left int) {
	i, j, k := 0, 0, left
	for i < len(L) && j < len(R) {
		if L[i] <= R[j] {
			arr[k] = L[i]
			i++
		} else {
			arr[k] = R[j]
			j++
		}
		k++
	}
	for i < len(L) {
		arr[k] = L[i]
		i++
		k++
	}
	for j < len(R) {
		arr[k] = R[j]
		j++
		k++
	}
}

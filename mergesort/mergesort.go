package main

import (
	"runtime"
	"sync"
)

// Threshold is the sub-range size below which splitting and merging stay
// sequential. Task scheduling overhead dominates the actual work under
// roughly 2000 elements (measured), and the crossover shifts with hardware
// and element width, so it is a tunable var rather than a derived constant.
var Threshold = 2000

// MaxWorkers caps how many sort tasks may run concurrently. Read once when
// the first sort starts.
var MaxWorkers = runtime.NumCPU()

// MergeSort sorts the whole slice in place.
func MergeSort(src []int32) {
	Sort(src, 0, len(src)-1)
}

// Sort sorts arr[left..right] (inclusive) in place. A range of zero or one
// element is already sorted.
//
// The range is halved at mid (biased low on odd sizes) and the two halves
// are sorted independently: below Threshold by plain recursion on the
// calling goroutine, above it as two concurrent tasks joined before the
// merge. The join is the only blocking point; no merge ever starts before
// both halves have fully returned.
func Sort(arr []int32, left, right int) {
	if left >= right {
		return
	}
	initWorkers()

	size := right - left
	mid := left + size/2

	if size < Threshold {
		Sort(arr, left, mid)
		Sort(arr, mid+1, right)
		mergeSequential(arr, left, mid, right)
		return
	}

	var wg sync.WaitGroup
	spawn(&wg, func() { Sort(arr, left, mid) })
	spawn(&wg, func() { Sort(arr, mid+1, right) })
	wg.Wait()

	mergeParallel(arr, left, mid, right)
}

// IsSorted reports whether arr[:n] is non-decreasing. Vacuously true for
// n <= 1.
func IsSorted(arr []int32, n int) bool {
	for i := 1; i < n; i++ {
		if arr[i] < arr[i-1] {
			return false
		}
	}
	return true
}

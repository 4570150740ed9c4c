package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <n>\n", os.Args[0])
		os.Exit(1)
	}
	n, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid element count:", err)
		os.Exit(1)
	}
	if n < 0 {
		fmt.Fprintln(os.Stderr, "element count must not be negative")
		os.Exit(1)
	}

	arr := make([]int32, n)
	fillRandom(arr)

	fmt.Println("Before:")
	printArr(arr)

	start := time.Now()
	MergeSort(arr)
	elapsed := time.Since(start)

	fmt.Println("After:")
	printArr(arr)

	if !IsSorted(arr, n) {
		fmt.Fprintln(os.Stderr, "result is not sorted")
		os.Exit(1)
	}
	fmt.Printf("time: %.2f seconds\n", elapsed.Seconds())
}

// fillRandom fills disjoint chunks of arr concurrently. Each worker draws
// from its own seeded source; the shared global source would serialize the
// workers on its internal lock.
func fillRandom(arr []int32) {
	nw := runtime.NumCPU()
	chunk := (len(arr) + nw - 1) / nw

	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		lo := w * chunk
		if lo >= len(arr) {
			break
		}
		hi := lo + chunk
		if hi > len(arr) {
			hi = len(arr)
		}
		wg.Add(1)
		go func(seed int64, part []int32) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := range part {
				part[i] = rng.Int31n(1000000)
			}
		}(int64(w), arr[lo:hi])
	}
	wg.Wait()
}

func printArr(arr []int32) {
	for _, v := range arr {
		fmt.Printf("%d ", v)
	}
	fmt.Println()
}

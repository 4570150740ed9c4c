package main

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/pingcap/check"
)

var _ = check.Suite(&sortTestSuite{})

func TestT(t *testing.T) {
	check.TestingT(t)
}

func prepare(src []int32) {
	rng := rand.New(rand.NewSource(42))
	for i := range src {
		src[i] = rng.Int31n(1000000)
	}
}

func sorted(src []int32) []int32 {
	expect := make([]int32, len(src))
	copy(expect, src)
	sort.Slice(expect, func(i, j int) bool { return expect[i] < expect[j] })
	return expect
}

type sortTestSuite struct{}

func (s *sortTestSuite) TestMergeSort(c *check.C) {
	lens := []int{0, 1, 2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 1024,
		Threshold - 1, Threshold, Threshold + 1, 1 << 13, 1 << 17}

	for i := range lens {
		src := make([]int32, lens[i])
		prepare(src)
		expect := sorted(src)
		MergeSort(src)
		for i := 0; i < len(src); i++ {
			c.Assert(src[i], check.Equals, expect[i])
		}
		c.Assert(IsSorted(src, len(src)), check.Equals, true)
	}
}

func (s *sortTestSuite) TestSortScenarios(c *check.C) {
	arr := []int32{5, 3, 4, 1, 2}
	Sort(arr, 0, 4)
	c.Assert(arr, check.DeepEquals, []int32{1, 2, 3, 4, 5})

	empty := []int32{}
	MergeSort(empty)
	c.Assert(len(empty), check.Equals, 0)

	dup := []int32{2, 2, 1, 1}
	MergeSort(dup)
	c.Assert(dup, check.DeepEquals, []int32{1, 1, 2, 2})
}

// Lowering Threshold drives small inputs through task submission, the join
// barrier and the parallel merge.
func (s *sortTestSuite) TestLowThreshold(c *check.C) {
	old := Threshold
	Threshold = 4
	defer func() { Threshold = old }()

	src := make([]int32, 10000)
	prepare(src)
	expect := sorted(src)
	MergeSort(src)
	c.Assert(src, check.DeepEquals, expect)
}

func (s *sortTestSuite) TestPermutation(c *check.C) {
	src := make([]int32, 4096)
	prepare(src)
	before := make(map[int32]int)
	for _, v := range src {
		before[v]++
	}

	MergeSort(src)

	after := make(map[int32]int)
	for _, v := range src {
		after[v]++
	}
	c.Assert(after, check.DeepEquals, before)
}

// Parallelizing the copy-out phases must not change the result: both merges
// produce identical output for identical pre-sorted halves.
func (s *sortTestSuite) TestMergeParallelMatchesSequential(c *check.C) {
	for _, size := range []int{2, 3, 17, 128, 4097} {
		src := make([]int32, size)
		prepare(src)
		mid := (size - 1) / 2
		lo, hi := src[:mid+1], src[mid+1:]
		sort.Slice(lo, func(i, j int) bool { return lo[i] < lo[j] })
		sort.Slice(hi, func(i, j int) bool { return hi[i] < hi[j] })
		expect := sorted(src)

		seq := make([]int32, size)
		par := make([]int32, size)
		copy(seq, src)
		copy(par, src)
		mergeSequential(seq, 0, mid, size-1)
		mergeParallel(par, 0, mid, size-1)

		c.Assert(seq, check.DeepEquals, expect)
		c.Assert(par, check.DeepEquals, seq)
	}
}

func (s *sortTestSuite) TestIsSorted(c *check.C) {
	c.Assert(IsSorted(nil, 0), check.Equals, true)
	c.Assert(IsSorted([]int32{7}, 1), check.Equals, true)
	c.Assert(IsSorted([]int32{1, 1, 2}, 3), check.Equals, true)
	c.Assert(IsSorted([]int32{2, 1}, 2), check.Equals, false)
	c.Assert(IsSorted([]int32{1, 3, 2, 4}, 4), check.Equals, false)
}

package ranges_test

import (
	"fmt"

	"github.com/katalvlaran/katas/ranges"
)

func ExampleExtract() {
	fmt.Println(ranges.Extract([]int{0, 1, 2, 5, 7, 8, 9}))
	fmt.Println(ranges.Extract([]int{1, 4, 5}))

	// Output:
	// 0-2,5,7-9
	// 1,4,5
}

func ExampleParse() {
	nums, err := ranges.Parse("-3--1,4,10-12")
	fmt.Println(nums, err)

	// Output:
	// [-3 -2 -1 4 10 11 12] <nil>
}

package zigzag_test

import (
	"fmt"

	"github.com/katalvlaran/katas/zigzag"
)

func ExampleMatrix() {
	m, err := zigzag.Matrix(3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range m {
		fmt.Println(row)
	}

	// Output:
	// [0 1 5]
	// [2 4 6]
	// [3 7 8]
}

func ExampleMatrix_invalid() {
	_, err := zigzag.Matrix(0)
	fmt.Println(err)

	// Output:
	// zigzag: dimension must be > 0: n=0
}

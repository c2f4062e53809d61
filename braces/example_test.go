package braces_test

import (
	"fmt"

	"github.com/katalvlaran/katas/braces"
)

// ExampleExpand lists the thumbnail variants of an image name.
func ExampleExpand() {
	seq, err := braces.Expand("thumbnail.{png,jp{e,}g}")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for s := range seq {
		fmt.Println(s)
	}

	// Output:
	// thumbnail.png
	// thumbnail.jpeg
	// thumbnail.jpg
}

// ExampleExpr_Count sizes an expansion before running it.
func ExampleExpr_Count() {
	e, _ := braces.Parse("~/{Downloads,Pictures}/*.{jpg,gif,png}")
	fmt.Println(e.Count())

	// Output:
	// 6
}

package compass_test

import (
	"fmt"

	"github.com/katalvlaran/katas/compass"
)

func ExamplePoints() {
	for _, p := range compass.Points()[:4] {
		fmt.Println(p)
	}

	// Output:
	// N 0.00
	// NbE 11.25
	// NNE 22.50
	// NEbN 33.75
}

func ExampleNearest() {
	p, _ := compass.Nearest(200)
	fmt.Println(p.Abbreviation)

	// Output:
	// SSW
}

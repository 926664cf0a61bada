package homomorphism_test

import (
	"fmt"

	"github.com/katalvlaran/lvhom/builder"
	"github.com/katalvlaran/lvhom/homomorphism"
)

// ExampleExtend two-colors an even cycle.
func ExampleExtend() {
	c6 := builder.Must(nil, nil, builder.Cycle(6))
	k2 := builder.Must(nil, nil, builder.Complete(2))

	maps, _ := homomorphism.Extend(c6, k2, homomorphism.Map{"0": "1"})
	for _, m := range maps {
		fmt.Println(m)
	}

	// Output:
	// {0:1 1:0 2:1 3:0 4:1 5:0}
}

// ExampleCount counts the automorphisms of K4.
func ExampleCount() {
	k4 := builder.Must(nil, nil, builder.Complete(4))
	n, _ := homomorphism.Count(k4, k4, nil)
	fmt.Println(n)

	// Output:
	// 24
}

package rootfinders_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/rootfinders"
)

func ExampleBisection() {
	opts := rootfinders.DefaultBisectionOptions()
	opts.UpperBound = 2
	opts.Logger = quiet()

	res, err := rootfinders.Bisection(func(x float64) float64 { return x*x - 2 }, &opts)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.8f %v\n", res.Root, res.Converged)
	// Output:
	// 1.41421356 true
}

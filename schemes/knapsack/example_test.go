package knapsack_test

import (
	"fmt"

	"github.com/katalvlaran/localsearch/ils"
	"github.com/katalvlaran/localsearch/schemes/knapsack"
	"github.com/katalvlaran/localsearch/search"
)

// ExampleScheme solves a three-item instance with Iterated Local Search.
// Every descent of this instance ends at {0, 1}.
func ExampleScheme() {
	in := &knapsack.Instance{Capacity: 7}
	in.AddItem(4, 10)
	in.AddItem(3, 7)
	in.AddItem(9, 8)

	k, err := knapsack.New(in, 1)
	if err != nil {
		fmt.Println(err)
		return
	}

	opts := search.DefaultOptions[*knapsack.Solution]()
	opts.MaximumNumberOfRestarts = 2
	out, err := ils.Run(k, opts)
	if err != nil {
		fmt.Println(err)
		return
	}

	best, _ := out.Pool.Best()
	fmt.Println("items", best.Selected(), "weight", best.Weight, "profit", best.Profit)
	fmt.Println("cost", k.GlobalCost(best))
	// Output:
	// items [0 1] weight 7 profit 17
	// cost (0, -17)
}

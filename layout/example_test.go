package layout_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/layout"
)

// ExampleScale maps a unit-circle layout onto the default canvas and then
// resolves a click back to a vertex.
func ExampleScale() {
	order := []string{"A", "B", "C", "D"}
	screen, err := layout.Scale(layout.Circular(order), layout.DefaultCanvas())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("A at", screen["A"])
	fmt.Println("C at", screen["C"])

	v, ok := layout.NodeAt(order, screen, 740, 310, layout.DefaultHitRadius)
	fmt.Println("click hits", v, ok)
	// Output:
	// A at 750.00,300.00
	// C at 50.00,300.00
	// click hits A true
}

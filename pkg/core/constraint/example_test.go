package constraint_test

import (
	"fmt"

	"github.com/matzehuels/floorplan/pkg/core/constraint"
)

func ExampleParse() {
	for _, c := range constraint.Parse("Put the kitchen next to the dining room and the master bedroom on the left") {
		if c.Position != "" {
			fmt.Printf("%s -> %s\n", c.RoomID, c.Position)
			continue
		}
		fmt.Printf("%s ~ %v\n", c.RoomID, c.AdjacentTo)
	}
	// Output:
	// kitchen ~ [dining room]
	// bedroom -> left
}

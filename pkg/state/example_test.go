package state_test

import (
	"fmt"

	"github.com/go-drift/kit/pkg/state"
)

// This example shows a slider keeping its position across frames.
func ExampleRegistry_GetOrCreate() {
	var slots [16]state.Record
	reg := state.NewRegistry(slots[:])

	const sliderID = 0xBEEF
	for frame := 0; frame < 3; frame++ {
		rec := reg.GetOrCreate(sliderID)
		if rec == nil {
			continue // registry full: render with defaults
		}
		rec.Value += 0.25
	}

	fmt.Println(reg.Get(sliderID).Value, reg.Count())
	// Output: 0.75 1
}

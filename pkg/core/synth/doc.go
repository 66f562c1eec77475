// Package synth assembles complete floor layouts from a room program.
//
// [Generate] is the engine's entry point. It validates the plan, resolves the
// plot envelope, parses the prompt once, and then runs every floor through
// placement, overlap repair, openings, walls, and circulation:
//
//	result, err := synth.Generate(p, "kitchen near dining, bedroom on the left", synth.DefaultOptions())
//	if err != nil {
//	    // INVALID_INPUT: nothing was placed
//	}
//	for _, w := range result.Warnings {
//	    fmt.Println(w)
//	}
//
// Generate is pure: it performs no I/O, keeps no state between calls, and
// produces byte-identical output for identical input. Recoverable problems
// (capacity overflow, overlaps, unknown room types) are returned as warnings
// on a successful result.
package synth

package placement

import (
	"github.com/matzehuels/floorplan/pkg/core/constraint"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// Pair is an adjacency request between two constraint ids.
type Pair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// AdjacencyReport is the outcome of scoring adjacency requests.
type AdjacencyReport struct {
	Satisfied   []Pair `json:"satisfied"`
	Unsatisfied []Pair `json:"unsatisfied"`
}

// Score returns the satisfied share of evaluated pairs, or 1 when nothing
// was evaluated.
func (r AdjacencyReport) Score() float64 {
	total := len(r.Satisfied) + len(r.Unsatisfied)
	if total == 0 {
		return 1
	}
	return float64(len(r.Satisfied)) / float64(total)
}

// Warn records an ADJACENCY_UNSATISFIED warning per unsatisfied pair.
func (r AdjacencyReport) Warn(diags *errors.Diagnostics) {
	for _, p := range r.Unsatisfied {
		diags.Warn(errors.ErrCodeAdjacencyUnsatisfied, []string{p.From, p.To},
			"%q is not adjacent to %q", p.From, p.To)
	}
}

// ScoreAdjacency checks every adjacency request whose two ids both resolve to
// rooms in rooms. A request is satisfied when some pair of matching rooms
// touch or are separated by at most one interior wall.
func ScoreAdjacency(rooms []Room, constraints []plan.LayoutConstraint) AdjacencyReport {
	var rep AdjacencyReport
	for _, pr := range constraint.AdjacencyPairs(constraints) {
		from, to := matching(rooms, pr[0]), matching(rooms, pr[1])
		if len(from) == 0 || len(to) == 0 {
			continue
		}
		p := Pair{From: pr[0], To: pr[1]}
		if anyAdjacent(rooms, from, to) {
			rep.Satisfied = append(rep.Satisfied, p)
		} else {
			rep.Unsatisfied = append(rep.Unsatisfied, p)
		}
	}
	return rep
}

// UnknownIDs returns the constraint ids that match none of rooms, in
// first-seen order.
func UnknownIDs(rooms []plan.RoomSpec, constraints []plan.LayoutConstraint) []string {
	var out []string
	for _, id := range constraint.Referenced(constraints) {
		found := false
		for _, r := range rooms {
			if constraint.MatchesRoom(id, r.Name, r.Type) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, id)
		}
	}
	return out
}

func matching(rooms []Room, id string) []int {
	var out []int
	for i, r := range rooms {
		if constraint.MatchesRoom(id, r.Spec.Name, r.Spec.Type) {
			out = append(out, i)
		}
	}
	return out
}

func anyAdjacent(rooms []Room, from, to []int) bool {
	for _, i := range from {
		for _, j := range to {
			if i != j && rooms[i].Rect.SharesBoundary(rooms[j].Rect, plan.InteriorWallThickness) {
				return true
			}
		}
	}
	return false
}

// adjacencyOrder rewrites a placement order so that each room is directly
// followed by the not-yet-ordered rooms it should be adjacent to.
func adjacencyOrder(order []int, rooms []Room, constraints []plan.LayoutConstraint) []int {
	pairs := constraint.AdjacencyPairs(constraints)
	if len(pairs) == 0 {
		return order
	}
	related := func(a, b Room) bool {
		for _, p := range pairs {
			if matches(p[0], a) && matches(p[1], b) || matches(p[0], b) && matches(p[1], a) {
				return true
			}
		}
		return false
	}

	out := make([]int, 0, len(order))
	used := make(map[int]bool, len(order))
	var visit func(i int)
	visit = func(i int) {
		used[i] = true
		out = append(out, i)
		for _, j := range order {
			if !used[j] && related(rooms[i], rooms[j]) {
				visit(j)
			}
		}
	}
	for _, i := range order {
		if !used[i] {
			visit(i)
		}
	}
	return out
}

func matches(id string, r Room) bool {
	return constraint.MatchesRoom(id, r.Spec.Name, r.Spec.Type)
}

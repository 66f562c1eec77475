package constraint

import (
	"regexp"
	"strings"

	"github.com/matzehuels/floorplan/pkg/plan"
)

// roomWord matches a one-word room id, optionally followed by "room" or
// "area" so that "living room" stays one id.
const roomWord = `(\w+(?:\s+(?:room|area))?)`

var (
	adjacencyPattern = regexp.MustCompile(`(?i)\b` + roomWord + `\s+(?:is\s+)?(?:near|beside|next\s+to|adjacent\s+to)\s+(?:the\s+)?` + roomWord)
	positionPattern  = regexp.MustCompile(`(?i)\b` + roomWord + `\s+(?:is\s+)?(?:on|at|in)\s+(?:the\s+)?(left|right|front|back|center|centre)\b`)
)

// Parse extracts layout constraints from prompt. It never returns nil.
func Parse(prompt string) []plan.LayoutConstraint {
	out := []plan.LayoutConstraint{}
	if strings.TrimSpace(prompt) == "" {
		return out
	}
	for _, m := range adjacencyPattern.FindAllStringSubmatch(prompt, -1) {
		out = append(out, plan.LayoutConstraint{
			RoomID:     roomID(m[1]),
			AdjacentTo: []string{roomID(m[2])},
		})
	}
	for _, m := range positionPattern.FindAllStringSubmatch(prompt, -1) {
		out = append(out, plan.LayoutConstraint{
			RoomID:   roomID(m[1]),
			Position: toPosition(m[2]),
		})
	}
	return out
}

func roomID(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func toPosition(s string) plan.Position {
	s = strings.ToLower(s)
	if s == "centre" {
		return plan.PositionCenter
	}
	return plan.Position(s)
}

// PositionFor returns the first position constraint for roomID.
func PositionFor(constraints []plan.LayoutConstraint, roomID string) (plan.Position, bool) {
	for _, c := range constraints {
		if c.RoomID == roomID && c.Position != "" {
			return c.Position, true
		}
	}
	return "", false
}

// Referenced returns every room id named by any constraint, as subject or
// adjacency target, in first-seen order.
func Referenced(constraints []plan.LayoutConstraint) []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, c := range constraints {
		add(c.RoomID)
		for _, a := range c.AdjacentTo {
			add(a)
		}
	}
	return ids
}

// AdjacencyPairs returns every (room, target) pair in constraint order.
func AdjacencyPairs(constraints []plan.LayoutConstraint) [][2]string {
	var pairs [][2]string
	for _, c := range constraints {
		for _, a := range c.AdjacentTo {
			pairs = append(pairs, [2]string{c.RoomID, a})
		}
	}
	return pairs
}

// MatchesRoom reports whether a constraint id refers to a room. An id matches
// the lowercased room name exactly, the room type, or any word of the name.
func MatchesRoom(id, name, roomType string) bool {
	if id == "" {
		return false
	}
	lname := roomID(name)
	if lname == id || strings.EqualFold(roomType, id) {
		return true
	}
	for _, w := range strings.FieldsFunc(lname, isSeparator) {
		if w == id {
			return true
		}
	}
	return false
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '-' || r == '_' || r == '/'
}

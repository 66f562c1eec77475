package placement

import (
	"strconv"
	"strings"
	"unicode"
)

// RoomIDs derives a stable slug id for every name, in order. Repeated slugs
// get a numeric suffix starting at 2.
func RoomIDs(names []string) []string {
	ids := make([]string, len(names))
	used := make(map[string]bool, len(names))
	for i, name := range names {
		base := slug(name)
		id := base
		for n := 2; used[id]; n++ {
			id = base + "-" + strconv.Itoa(n)
		}
		used[id] = true
		ids[i] = id
	}
	return ids
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "room"
	}
	return s
}

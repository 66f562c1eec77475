// Package standards holds the static table of room-type sizing standards.
//
// Each [Standard] gives a minimum and ideal floor area and an acceptable
// width:height aspect-ratio range. The layout engine only consumes the aspect
// range; the areas are informational and surface in CLI tables.
package standards

import (
	"strings"
)

// Standard describes sizing guidance for one room category.
type Standard struct {
	Type      string   `json:"type"`
	MinArea   float64  `json:"minArea"`
	IdealArea float64  `json:"idealArea"`
	AspectMin float64  `json:"aspectMin"`
	AspectMax float64  `json:"aspectMax"`
	Aliases   []string `json:"aliases,omitempty"`
}

// Aspect returns the midpoint of the acceptable aspect-ratio range.
func (s Standard) Aspect() float64 {
	return (s.AspectMin + s.AspectMax) / 2
}

// Category names.
const (
	Bedroom  = "bedroom"
	Bathroom = "bathroom"
	Kitchen  = "kitchen"
	Living   = "living"
	Dining   = "dining"
	Office   = "office"
	Garage   = "garage"
	Laundry  = "laundry"
	Closet   = "closet"
	Hallway  = "hallway"
)

var table = []Standard{
	{Type: Bedroom, MinArea: 100, IdealArea: 150, AspectMin: 1.0, AspectMax: 1.5, Aliases: []string{"bed", "nursery", "guest room"}},
	{Type: Bathroom, MinArea: 35, IdealArea: 50, AspectMin: 1.0, AspectMax: 2.0, Aliases: []string{"bath", "toilet", "washroom", "restroom", "powder", "wc"}},
	{Type: Kitchen, MinArea: 70, IdealArea: 120, AspectMin: 1.0, AspectMax: 1.8, Aliases: []string{"kitchenette", "pantry"}},
	{Type: Living, MinArea: 150, IdealArea: 250, AspectMin: 1.2, AspectMax: 1.8, Aliases: []string{"living room", "lounge", "family", "great room", "sitting"}},
	{Type: Dining, MinArea: 100, IdealArea: 150, AspectMin: 1.0, AspectMax: 1.5, Aliases: []string{"dining room", "dinette"}},
	{Type: Office, MinArea: 80, IdealArea: 120, AspectMin: 1.0, AspectMax: 1.5, Aliases: []string{"study", "den", "library", "workroom"}},
	{Type: Garage, MinArea: 200, IdealArea: 400, AspectMin: 1.0, AspectMax: 1.5, Aliases: []string{"carport"}},
	{Type: Laundry, MinArea: 35, IdealArea: 50, AspectMin: 1.0, AspectMax: 2.0, Aliases: []string{"utility", "mudroom"}},
	{Type: Closet, MinArea: 15, IdealArea: 30, AspectMin: 1.0, AspectMax: 2.0, Aliases: []string{"storage", "wardrobe", "walk-in"}},
	{Type: Hallway, MinArea: 30, IdealArea: 60, AspectMin: 2.0, AspectMax: 4.0, Aliases: []string{"hall", "foyer", "entry", "vestibule"}},
}

// Default is the profile used when neither the type nor the name matches.
func Default() Standard {
	s, _ := byKey(Bedroom)
	return s
}

// All returns a copy of the table in declaration order.
func All() []Standard {
	out := make([]Standard, len(table))
	copy(out, table)
	return out
}

// Lookup resolves the standard for a room, trying the declared type first and
// the room name second. Each candidate is matched exactly against categories
// and aliases, then by the longest category or alias contained in it.
// It reports false when nothing matched; callers fall back to [Default].
func Lookup(roomType, name string) (Standard, bool) {
	for _, key := range []string{roomType, name} {
		key = normalize(key)
		if key == "" {
			continue
		}
		if s, ok := byKey(key); ok {
			return s, true
		}
		if s, ok := bySubstring(key); ok {
			return s, true
		}
	}
	return Standard{}, false
}

// Category returns the resolved category of a room, or "" if unknown.
func Category(roomType, name string) string {
	if s, ok := Lookup(roomType, name); ok {
		return s.Type
	}
	return ""
}

func byKey(key string) (Standard, bool) {
	for _, s := range table {
		if s.Type == key {
			return s, true
		}
		for _, a := range s.Aliases {
			if a == key {
				return s, true
			}
		}
	}
	return Standard{}, false
}

func bySubstring(key string) (Standard, bool) {
	best, bestLen := -1, 0
	for i, s := range table {
		for _, cand := range append([]string{s.Type}, s.Aliases...) {
			if len(cand) > bestLen && containsWord(key, cand) {
				best, bestLen = i, len(cand)
			}
		}
	}
	if best < 0 {
		return Standard{}, false
	}
	return table[best], true
}

// containsWord reports whether needle occurs in s starting at a word boundary,
// so "bath" matches "master bathroom" but "den" does not match "garden".
func containsWord(s, needle string) bool {
	for i := 0; ; {
		j := strings.Index(s[i:], needle)
		if j < 0 {
			return false
		}
		at := i + j
		if at == 0 || !isLetter(s[at-1]) {
			return true
		}
		i = at + 1
	}
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

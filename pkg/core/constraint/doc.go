// Package constraint extracts placement directives from free-text prompts.
//
// Two phrase shapes are recognized, case-insensitively:
//
//	<room> near|beside|next to|adjacent to [the] <room>   adjacency
//	<room> on|at|in [the] left|right|front|back|center    position
//
// Room identifiers are single words, lowercased. Matches of one shape never
// overlap and are reported left to right; all adjacency constraints come
// before all position constraints. The same room may appear in both.
//
// [Parse] is pure and safe for concurrent use. [BuildGraph] turns the parsed
// constraints into a deterministic node/edge view for rendering.
package constraint

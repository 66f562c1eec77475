// Package plan provides the data model and serialization for floor plans.
//
// This package defines the canonical wire format shared by the layout engine,
// the CLI, the HTTP API, and the cache:
//
//   - [PlanData], [FloorSpec], [RoomSpec]: the abstract room program (input)
//   - [LayoutConstraint]: placement directives parsed from a free-text prompt
//   - [LayoutResult], [FloorLayout], [RoomLayout], [WallLayout]: the synthesized
//     geometry (output)
//
// # Coordinates
//
// All measurements are in feet. The origin is the top-left corner of the plot,
// x grows to the right and y grows downward, matching SVG. The "front" of a
// plot is its y-minimum side and the "back" is its y-maximum side.
//
// # Serialization
//
// Plans are read from JSON or TOML; both use the same field names:
//
//	{
//	  "plotDimensions": {"width": 40, "height": 60},
//	  "floors": [
//	    {"level": "Ground", "rooms": [{"name": "Kitchen", "areaSqft": 120}]}
//	  ]
//	}
//
// Results are always written as indented JSON so that identical inputs produce
// byte-identical files.
package plan

// Package pkg provides the libraries behind the floorplan layout synthesizer.
//
// # Overview
//
// Floorplan turns a room program (floors, rooms, requested areas) and an
// optional free-text prompt into a concrete layout: room rectangles, doors,
// windows, walls and circulation per floor. The pkg directory is organized as:
//
//  1. [plan] - input and output types plus JSON/TOML serialization
//  2. [errors] - coded errors and the diagnostics accumulator
//  3. [core] - the layout engine (geometry, standards, constraint parsing,
//     placement, walls, openings, circulation, synthesis)
//  4. [render] - SVG/JSON drawing and PNG/PDF conversion
//  5. [cache] - file, Redis and no-op caches with content-addressed keys
//  6. [pipeline] - orchestration (plan → layout → render) with caching
//  7. [config] - TOML config file and environment settings
//
// # Architecture
//
//	PlanData + prompt
//	       ↓
//	[core/constraint] parse prompt into constraints
//	       ↓
//	[core/placement] shelf packing, constraint moves, repair
//	       ↓
//	[core/walls], [core/openings], [core/circulation]
//	       ↓
//	LayoutResult → [render/floor] SVG/PNG/PDF/JSON
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/floorplan/pkg/core/synth"
//	    "github.com/matzehuels/floorplan/pkg/plan"
//	    "github.com/matzehuels/floorplan/pkg/render/floor"
//	)
//
//	p, _ := plan.ReadPlanFile("house.toml")
//	res, err := synth.Generate(p, "kitchen near dining room", synth.DefaultOptions())
//	if err != nil {
//	    // *errors.Error with code INVALID_INPUT
//	}
//	svg, _ := floor.RenderSVG(res)
//
// The [pipeline] package wraps the same steps with caching and is what the
// CLI and the HTTP API use.
package pkg

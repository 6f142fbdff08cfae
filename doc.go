// Package waveroute is a delay-matched waveguide routing engine for
// photonic chip layouts: connect component ports with geometrically
// valid paths that avoid placed structures, respect a minimum bend
// radius, and hit a target optical length exactly.
//
// 🚀 What is waveroute?
//
//	A pure, stateless, in-memory routing core that brings together:
//		• Geometry primitives: poses, straights, arcs, exact path length
//		• Obstacle clearance: inflated-polyline vs. polygon testing
//		• Direct connection: S-bends, single turns, U-turn maneuvers
//		• Obstacle avoidance: bounded deterministic detour search
//		• Delay matching: serpentine excursions that pad a path to a
//		  target length with full return-leg accounting
//		• Calibration duplication: bit-for-bit congruent translated copies
//
// ✨ Why choose waveroute?
//
//   - Explicit failures – every geometric impossibility is a distinct
//     sentinel error, never a silently approximated path
//   - Deterministic – identical inputs always produce identical paths,
//     with documented tie-breaking rules
//   - Pure Go – no cgo, no solver bindings, no file I/O in the core
//   - Concurrency-friendly – calls share nothing but read-only inputs
//
// Everything is organized under five subpackages plus a CLI driver:
//
//	geom/     — Point, Pose, Segment, Path; transform composition
//	obstacle/ — placed-structure regions and the clearance predicate
//	route/    — direct path building and obstacle-avoiding routing
//	delay/    — length matching by compensating excursion insertion
//	calib/    — congruent duplication for calibration structures
//	cmd/waveroute — YAML-driven command-line harness
//
// Quick ASCII example:
//
//	 start ═╗   ┌obstacle┐   ╔═ end
//	        ╚═══╪════════╪═══╝        direct: blocked
//	        ╔═══╧════════╧═══╗
//	 start ═╝                ╚═ end   detour: clears, minimal added length
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/photonforge/waveroute
package waveroute

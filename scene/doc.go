// Package scene describes a coaster layout: the grid pieces, projection
// and canvas settings a demo or viewer needs to draw a ride.
//
// Layouts are either built in code with Builder, which walks the grid the
// way a train would, or read from a YAML, JSON or TOML file with Load:
//
//	tileWidth: 64
//	strutStyle: wood
//	pieces:
//	  - {col: 0, row: 3, shape: straight, entry: north, exit: south}
//	  - {col: 1, row: 3, shape: lift-hill, entry: north, exit: south, endHeight: 3}
//
// Scene.Draw renders the pieces back to front so nearer track overlaps
// farther track.
package scene

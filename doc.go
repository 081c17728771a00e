// Package reindeer finds the cheapest routes through a tile maze where the
// mover pays for distance and, far more, for turning.
//
// 🦌 What is reindeer?
//
//	A small, zero-surprise library for orientation-aware maze routing:
//		• gridgraph: tile grids, coordinates, maze parsing and rendering
//		• core:      an index-based graph arena with typed node and edge payloads
//		• dijkstra:  shortest paths that keep every equally cheap arrival (tie sets)
//		• maze:      maze → decision-point graph compilation, search and
//		             reconstruction of every cell on some optimal route
//
// Under the hood:
//
//	gridgraph/ — Grid, Tile, Coordinates, ParseMaze, Render, open regions
//	core/      — Graph[N, E], NodeID, EdgeID, IndexError
//	dijkstra/  — Search, ResultSet, WalkTies, OnAccept/OnTie/OnDiscard hooks
//	maze/      — Build, Map.Search, CheapestTerminal, ReconstructCells, Solve, WriteDOT
//
// Quick ASCII example:
//
//	#######
//	#.....#      two mirror-image routes, each with three turns,
//	#S###E#      both cost 3006: all twelve open cells lie on
//	#.....#      an optimal route.
//	#######
//
// See examples/ for a runnable program.
//
//	go get github.com/katalvlaran/reindeer
package reindeer

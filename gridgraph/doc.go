// Package gridgraph models a rectangular maze as an immutable raster of tiles.
//
// What:
//
//   - Grid wraps a Width×Height raster of Tile values (Wall or Empty), stored row-major.
//   - Coordinates, Direction and Orientation describe positions and straight-line movement.
//   - OpenRegions finds 4-connected regions of Empty tiles.
//   - ParseMaze reads the textual maze format ('#' wall, '.' open, 'S' start, 'E' end).
//   - Render draws a grid back to text, optionally marking a set of cells with 'O'.
//
// Why:
//
//   - The maze package compiles a Grid into an orientation-aware graph; it needs
//     cheap neighbour probes and bounds checks, nothing more.
//   - Keeping the text codec here lets the graph compiler stay free of I/O.
//
// Complexity:
//
//   - NewGrid, ParseMaze, Render: O(W×H) time and memory.
//   - At, IsOpen, OpenNeighbors:  O(1).
//   - OpenRegions:                O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidTile: a maze character outside "#.SE".
//   - ErrMissingStart / ErrMissingEnd: the maze text has no 'S' / 'E'.
//   - ErrDuplicateMarker: more than one 'S' or 'E'.
package gridgraph

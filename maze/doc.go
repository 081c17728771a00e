// Package maze compiles a tile maze into an orientation-aware graph and
// answers two questions about it: what is the cheapest way from start to end,
// and which cells lie on at least one cheapest route.
//
// What:
//
//   - Build turns a gridgraph.Grid into a Map. Only decision points become
//     nodes: junctions (open both horizontally and vertically) and dead ends
//     (exactly one open neighbour). The start and end cells are always
//     decision points. Each decision point contributes a Horizontal and a
//     Vertical node joined by a Turn edge; consecutive decision points along
//     a wall-free row (column) are joined by a Move edge between their
//     Horizontal (Vertical) nodes.
//   - Map.Search runs the tie-tracking dijkstra.Search from the start's
//     Horizontal node (the mover initially faces along the x axis).
//   - Map.CheapestTerminal picks the cheaper of the end's two nodes.
//   - Map.ReconstructCells walks the tie sets backward from a terminal and
//     rasterises every Move edge it meets.
//   - Solve chains all of the above.
//
// Costs:
//
//   - Move edge: its length in cells (Manhattan distance between endpoints).
//   - Turn edge: 1000 by default, see WithTurnCost.
//
// Terminal ties:
//
// When both end orientations cost exactly the same, CheapestTerminal returns
// the Vertical node and reconstruction follows that node only. Cells that lie
// solely on optimal routes arriving horizontally are then not reported.
//
// Errors:
//
//   - ErrNilGrid, ErrOutOfBounds, ErrStartBlocked, ErrEndBlocked: Build preconditions.
//   - ErrBadTurnCost: WithTurnCost received a non-positive cost.
//   - ErrUnreachable: Solve found no route from start to end.
//
// Indexing a Map's graph with a foreign node or edge ID panics (core.IndexError).
package maze

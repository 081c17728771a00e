package gridgraph

// OpenRegions finds all 4-connected regions of Empty tiles.
// Returns a slice of regions; each region is a slice of cell-indices
// (row-major) in BFS discovery order. Regions are ordered by the row-major
// index of their first cell.
//
// To convert an index back to Coordinates, use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) OpenRegions() [][]int {
	seen := make([]bool, len(g.tiles))
	var regions [][]int

	for i0, t := range g.tiles {
		if t == Wall || seen[i0] {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range Directions {
				v := d.Step(u, 1)
				if !g.IsOpen(v) {
					continue
				}
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// Connected reports whether a and b are open cells in the same region.
// Complexity: O(W·H) worst case (single flood fill from a).
func (g *Grid) Connected(a, b Coordinates) bool {
	if !g.IsOpen(a) || !g.IsOpen(b) {
		return false
	}
	seen := make([]bool, len(g.tiles))
	target := g.Index(b)
	queue := []int{g.Index(a)}
	seen[queue[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		if queue[qi] == target {
			return true
		}
		u := g.Coordinate(queue[qi])
		for _, d := range Directions {
			v := d.Step(u, 1)
			if !g.IsOpen(v) {
				continue
			}
			if vi := g.Index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return false
}

package grid

// Regions partitions the grid into connected regions: two adjacent cells
// (per conn) share a region when same(a, b) reports true.
//
// Regions are returned in row-major order of their first cell; within a
// region, points appear in breadth-first order from that cell. same should
// be symmetric; the usual choice is plain equality.
//
// Time:   O(W·H·d), d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) Regions(same func(a, b T) bool, conn Connectivity) [][]Index {
	seen := make([]bool, len(g.data))
	var regions [][]Index

	for i0 := range g.data {
		if seen[i0] {
			continue
		}
		// BFS to collect the region
		seen[i0] = true
		queue := []Index{g.pointAt(uint(i0))}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			cu := g.data[g.offset(u)]
			for v := range g.Neighbors(u, conn) {
				vi := g.offset(v)
				if seen[vi] || !same(cu, g.data[vi]) {
					continue
				}
				seen[vi] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

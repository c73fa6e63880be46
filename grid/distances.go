package grid

// Unreachable marks cells that Distances could not reach.
const Unreachable = -1

// Distances runs a breadth-first search from start and returns a grid of
// step counts, with Unreachable for cells never visited.
//
// step(from, to) decides whether a move between two adjacent cells is
// allowed; nil allows every move. Returns ErrOutOfBounds if start lies
// outside the grid.
//
// Time:   O(W·H·d), d = 4 or 8.
// Memory: O(W·H).
func (g *Grid[T]) Distances(start Index, conn Connectivity, step func(from, to T) bool) (*Grid[int], error) {
	if !g.Contains(start) {
		return nil, boundsErrorf("Distances", start, g.width, g.height)
	}
	dist := Filled(g.width, g.height, Unreachable)
	dist.Set(start, 0)

	queue := []Index{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		du := dist.At(u)
		cu := g.At(u)
		for v := range g.Neighbors(u, conn) {
			if dist.At(v) != Unreachable {
				continue
			}
			if step != nil && !step(cu, g.At(v)) {
				continue
			}
			dist.Set(v, du+1)
			queue = append(queue, v)
		}
	}

	return dist, nil
}

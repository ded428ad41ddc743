package core

// Propagate applies one flood pass with the given target color.
//
// Every cell flooded before the pass is recolored to target, and each of its
// neighbors already holding target becomes flooded. Cells flooded during the
// pass are not expanded from until the next pass, so one call grows the region
// by at most one layer of neighbors. Returns the number of newly flooded cells.
func Propagate(b *Board, target Color) int {
	frontier := make([]int, 0, b.FloodedCount())
	for i, cell := range b.cells {
		if cell.Flooded {
			frontier = append(frontier, i)
		}
	}

	added := 0
	for _, i := range frontier {
		b.cells[i].Color = target
		row, col := i/b.size, i%b.size
		for _, n := range b.Neighbors(row, col) {
			if b.sameColor(n, target) && b.flood(n) {
				added++
			}
		}
	}
	return added
}

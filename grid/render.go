package grid

import "strings"

// Render draws the grid as ASCII art. Cells on path are marked '*', the start
// 'S' and the finish 'F' (when set). Render only reads wall state.
func (g *Grid) Render(path []Point) string {
	marks := make(map[Point]byte, len(path)+2)
	for _, p := range path {
		marks[p] = '*'
	}
	if g.hasStart {
		marks[g.start] = 'S'
	}
	if g.hasFinish {
		marks[g.finish] = 'F'
	}

	var sb strings.Builder
	// North boundary of row 0, then one cell line and one south line per row.
	sb.WriteByte('+')
	for _, r := range g.rooms[0] {
		if r.HasWall(North) {
			sb.WriteString("---+")
		} else {
			sb.WriteString("   +")
		}
	}
	sb.WriteByte('\n')

	for _, line := range g.rooms {
		if line[0].HasWall(West) {
			sb.WriteByte('|')
		} else {
			sb.WriteByte(' ')
		}
		for _, r := range line {
			mark, ok := marks[r.Location()]
			if !ok {
				mark = ' '
			}
			sb.WriteByte(' ')
			sb.WriteByte(mark)
			sb.WriteByte(' ')
			if r.HasWall(East) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')

		sb.WriteByte('+')
		for _, r := range line {
			if r.HasWall(South) {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the grid without a path overlay.
func (g *Grid) String() string {
	return g.Render(nil)
}

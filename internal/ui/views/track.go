package views

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Placement is a rendered panel at a cell position along the paging axis
type Placement struct {
	Lines []string
	Pos   int
}

// ComposeTrack cuts the visible width x height window out of the track.
// Horizontally each placement spans pageSize columns; vertically it spans
// its line count. Where placements overlap the earlier position wins.
func ComposeTrack(placements []Placement, pageSize, width, height int, vertical bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	sorted := make([]Placement, len(placements))
	copy(sorted, placements)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Pos < sorted[j].Pos })

	if vertical {
		return composeVertical(sorted, width, height)
	}
	return composeHorizontal(sorted, pageSize, width, height)
}

func composeHorizontal(placements []Placement, pageSize, width, height int) string {
	rows := make([]string, height)
	for r := 0; r < height; r++ {
		var b strings.Builder
		cursor := 0
		for _, p := range placements {
			start := max(p.Pos, cursor)
			end := min(p.Pos+pageSize, width)
			if end <= start {
				continue
			}
			b.WriteString(strings.Repeat(" ", start-cursor))

			line := ""
			if r < len(p.Lines) {
				line = p.Lines[r]
			}
			piece := ansi.Cut(line, start-p.Pos, end-p.Pos)
			b.WriteString(piece)
			if gap := (end - start) - ansi.StringWidth(piece); gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			cursor = end
		}
		if cursor < width {
			b.WriteString(strings.Repeat(" ", width-cursor))
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n")
}

func composeVertical(placements []Placement, width, height int) string {
	rows := make([]string, height)
	filled := make([]bool, height)
	for _, p := range placements {
		for i, line := range p.Lines {
			y := p.Pos + i
			if y < 0 || y >= height || filled[y] {
				continue
			}
			rows[y] = fitLine(line, width)
			filled[y] = true
		}
	}
	for y := range rows {
		if !filled[y] {
			rows[y] = strings.Repeat(" ", width)
		}
	}
	return strings.Join(rows, "\n")
}

package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := len(rows[0])
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			width := runewidth.StringWidth(cell)
			if width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			b.WriteString(pad(cell, widths[c], alignmentAt(alignments, c)))
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// Box-drawing runes used by Grid.
const (
	horizontal  = "─"
	vertical    = "│"
	topLeft     = "┌"
	topRight    = "┐"
	topTee      = "┬"
	bottomLeft  = "└"
	bottomRight = "┘"
	bottomTee   = "┴"
	leftTee     = "├"
	rightTee    = "┤"
	cross       = "┼"

	minCellWidth = 4
)

// Grid lays out headers and rows as a bordered table where every column is
// cellWidth cells wide including its left border. Each row, header included,
// is separated from the next by a horizontal rule. Cell text wider than the
// column is truncated with an ellipsis.
func Grid(headers []string, rows [][]string, cellWidth int, alignments []Alignment) []string {
	widths := make([]int, len(headers))
	for i := range widths {
		widths[i] = cellWidth
	}
	return GridWidths(headers, rows, widths, alignments)
}

// GridWidths is Grid with a separate width per column. Missing or too small
// widths fall back to the narrowest usable column.
func GridWidths(headers []string, rows [][]string, widths []int, alignments []Alignment) []string {
	cols := len(headers)
	if cols == 0 {
		return nil
	}
	inner := make([]int, cols)
	for c := range inner {
		w := minCellWidth
		if c < len(widths) && widths[c] > w {
			w = widths[c]
		}
		inner[c] = w - 1
	}
	rule := func(left, mid, right string) string {
		parts := make([]string, cols)
		for c := range parts {
			parts[c] = strings.Repeat(horizontal, inner[c])
		}
		return left + strings.Join(parts, mid) + right
	}
	line := func(cells []string) string {
		var b strings.Builder
		b.WriteString(vertical)
		for c := 0; c < cols; c++ {
			cell := ""
			if c < len(cells) {
				cell = cells[c]
			}
			b.WriteByte(' ')
			b.WriteString(pad(fit(cell, inner[c]-2), inner[c]-2, alignmentAt(alignments, c)))
			b.WriteByte(' ')
			b.WriteString(vertical)
		}
		return b.String()
	}

	out := make([]string, 0, 2*len(rows)+3)
	out = append(out, rule(topLeft, topTee, topRight))
	out = append(out, line(headers))
	for _, row := range rows {
		out = append(out, rule(leftTee, cross, rightTee))
		out = append(out, line(row))
	}
	out = append(out, rule(bottomLeft, bottomTee, bottomRight))
	return out
}

// ColumnWidth returns the cell width, border included, that shows the widest
// of texts without truncation, and never less than min.
func ColumnWidth(min int, texts ...string) int {
	width := min
	for _, text := range texts {
		if w := runewidth.StringWidth(text) + 3; w > width {
			width = w
		}
	}
	return width
}

func alignmentAt(alignments []Alignment, c int) Alignment {
	if c < len(alignments) {
		return alignments[c]
	}
	return AlignLeft
}

func fit(text string, width int) string {
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}

func pad(text string, width int, align Alignment) string {
	if align == AlignRight {
		return runewidth.FillLeft(text, width)
	}
	return runewidth.FillRight(text, width)
}

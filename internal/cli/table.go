package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiEscape matches SGR escape sequences such as colour swatches.
var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Table formats rows into aligned columns. Column widths are measured in
// visible characters, so cells may carry ANSI colour sequences.
type Table struct {
	headers   []string
	rows      [][]string
	padding   int
	maxWidths map[int]int // Maximum width per column index (0 = no limit)
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers:   headers,
		rows:      make([][]string, 0),
		padding:   2,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth sets a maximum width for a column. Longer text is
// wrapped at word boundaries.
func (t *Table) SetColumnMaxWidth(colIndex int, maxWidth int) {
	t.maxWidths[colIndex] = maxWidth
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row ...string) {
	normalised := make([]string, len(t.headers))
	copy(normalised, row)
	t.rows = append(t.rows, normalised)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	wrappedRows := make([][][]string, len(t.rows))
	for rowIdx, row := range t.rows {
		wrappedRows[rowIdx] = make([][]string, len(row))
		for colIdx, cell := range row {
			if maxWidth := t.maxWidths[colIdx]; maxWidth > 0 {
				wrappedRows[rowIdx][colIdx] = wrapText(cell, maxWidth)
			} else {
				wrappedRows[rowIdx][colIdx] = []string{cell}
			}
		}
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = displayWidth(h)
	}
	for _, wrappedRow := range wrappedRows {
		for i, wrappedCell := range wrappedRow {
			for _, line := range wrappedCell {
				colWidths[i] = max(colWidths[i], displayWidth(line))
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var result strings.Builder

	writeLine := func(parts []string) {
		result.WriteString(strings.Join(parts, gap))
		result.WriteString("\n")
	}

	headerParts := make([]string, len(t.headers))
	sepParts := make([]string, len(t.headers))
	for i, h := range t.headers {
		headerParts[i] = padRight(h, colWidths[i])
		sepParts[i] = strings.Repeat("-", colWidths[i])
	}
	writeLine(headerParts)
	writeLine(sepParts)

	for _, wrappedRow := range wrappedRows {
		maxLines := 1
		for _, wrappedCell := range wrappedRow {
			maxLines = max(maxLines, len(wrappedCell))
		}

		for lineIdx := range maxLines {
			rowParts := make([]string, len(t.headers))
			for colIdx := range t.headers {
				cell := ""
				if lineIdx < len(wrappedRow[colIdx]) {
					cell = wrappedRow[colIdx][lineIdx]
				}
				rowParts[colIdx] = padRight(cell, colWidths[colIdx])
			}
			writeLine(rowParts)
		}
	}

	return result.String()
}

// WriteTo renders the table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprint(w, t.Render())
	return int64(n), err
}

// displayWidth returns the number of visible characters in s.
func displayWidth(s string) int {
	return utf8.RuneCountInString(ansiEscape.ReplaceAllString(s, ""))
}

// padRight pads s with spaces to the given visible width. Longer strings are
// returned unchanged.
func padRight(s string, width int) string {
	w := displayWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// wrapText wraps text to fit within width, breaking at word boundaries.
func wrapText(text string, width int) []string {
	if width <= 0 || displayWidth(text) <= width {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	currentLine := ""
	for _, word := range words {
		if utf8.RuneCountInString(word) > width {
			if currentLine != "" {
				lines = append(lines, currentLine)
				currentLine = ""
			}
			runes := []rune(word)
			for len(runes) > width {
				lines = append(lines, string(runes[:width]))
				runes = runes[width:]
			}
			currentLine = string(runes)
			continue
		}

		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}

		if utf8.RuneCountInString(testLine) <= width {
			currentLine = testLine
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/pennyledger/penny/output"
)

// table renders rows as aligned columns. Column widths follow the
// widest cell, measured in display cells so wide runes line up.
type table struct {
	header []string
	rows   [][]string
	// rightAlign marks columns rendered flush right, used for amounts.
	rightAlign map[int]bool
}

func newTable(header ...string) *table {
	return &table{header: header, rightAlign: map[int]bool{}}
}

func (t *table) alignRight(cols ...int) *table {
	for _, c := range cols {
		t.rightAlign[c] = true
	}
	return t
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer, styles *output.Styles) {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range t.header {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(pad(h, widths[i], t.rightAlign[i]))
	}
	_, _ = fmt.Fprintln(w, styles.Dim(strings.TrimRight(b.String(), " ")))

	for _, row := range t.rows {
		b.Reset()
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(pad(cell, widths[i], t.rightAlign[i]))
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

func pad(s string, width int, right bool) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// bar renders a proportional bar of the given percentage, sized to the
// terminal width with room for the surrounding labels.
func bar(percentage int64, label string) string {
	width := terminalWidth() - runewidth.StringWidth(label) - 10
	if width < 10 {
		width = 10
	}
	filled := int(percentage) * width / 100
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

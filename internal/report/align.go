package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlignedPrint writes rows so that the ith cell of every row starts at the
// same offset. Each cell is preceded by indent tabs, padded on the right to
// its column's widest cell and followed by a tab:
//
//	SUPER FRESH     1.49    Groceries       Wed Oct 27 2021
//	DUNKIN #339369 Q35      1.73    Restaurant      Fri Nov 05 2021
//
// becomes
//
//	SUPER FRESH             1.49    Groceries       Wed Oct 27 2021
//	DUNKIN #339369 Q35      1.73    Restaurant      Fri Nov 05 2021
//
// Rows are expected to have the same number of cells.
func AlignedPrint(w io.Writer, rows [][]string, indent int) error {
	if len(rows) == 0 {
		return nil
	}

	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	prefix := strings.Repeat("\t", indent)
	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(prefix)
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
			b.WriteByte('\t')
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

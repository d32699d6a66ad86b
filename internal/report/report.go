// Package report renders transaction statistics as sectioned, column-aligned
// plain text: one section for all transactions, then one per category. Each
// section opens with a labelled "=" divider, lists the totals and the largest
// transaction, and ends with every transaction, largest first.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jask/txnreport/internal/ledger"
)

// AllTransactionsHeader labels the first section.
const AllTransactionsHeader = "All Transactions"

const (
	topLevelSeparatorWidth    = 80
	bottomLevelSeparatorWidth = 5
)

// ErrHeaderTooWide is returned when a section header does not fit in the
// top-level separator.
var ErrHeaderTooWide = errors.New("header with padding cannot be longer than the separator width")

// Printer writes reports to an output stream.
type Printer struct {
	out    io.Writer
	color  bool
	styles styles
}

// NewPrinter returns a Printer for out. With ColorAuto, headers are coloured
// only when out is a colour terminal.
func NewPrinter(out io.Writer, mode ColorMode) *Printer {
	r := lipgloss.NewRenderer(out)
	if mode == ColorAlways {
		r.SetColorProfile(termenv.TrueColor)
	}
	return &Printer{
		out:    out,
		color:  mode != ColorNever && r.ColorProfile() != termenv.Ascii,
		styles: newStyles(r),
	}
}

// Print renders the overall section and then every category in order. The
// report is built in memory and written only if every section renders, so an
// error never leaves a partial report behind.
func (p *Printer) Print(overall ledger.TransactionSetStats, categories *ledger.CategoryStats) error {
	var buf bytes.Buffer
	if err := p.printStats(&buf, AllTransactionsHeader, overall); err != nil {
		return err
	}
	for name, stats := range categories.All() {
		if err := p.printStats(&buf, name, stats); err != nil {
			return err
		}
	}
	_, err := p.out.Write(buf.Bytes())
	return err
}

func (p *Printer) printStats(w *bytes.Buffer, header string, stats ledger.TransactionSetStats) error {
	if err := p.printTopLevelSeparator(w, header); err != nil {
		return err
	}

	if err := AlignedPrint(w, [][]string{
		{"Total Amount:", FormatAmount(stats.TotalAmount)},
		{"Number of transactions:", strconv.Itoa(stats.Count())},
		{"Average Amount:", FormatAmount(stats.AverageAmount)},
		{"", ""},
		{"Largest transaction:", ""},
		{"Description:", stats.MaxTxn.Description},
		{"Amount:", FormatAmount(stats.MaxTxn.Amount)},
		{"Category:", stats.MaxTxn.Category},
		{"Date:", FormatDate(stats.MaxTxn.Date)},
	}, 1); err != nil {
		return err
	}

	if err := printBottomLevelSeparator(w); err != nil {
		return err
	}

	rows := make([][]string, 0, len(stats.Transactions))
	for _, tx := range stats.Transactions {
		rows = append(rows, []string{
			tx.Description,
			FormatAmount(tx.Amount),
			tx.Category,
			FormatDate(tx.Date),
		})
	}
	return AlignedPrint(w, rows, 1)
}

// printTopLevelSeparator writes a labelled divider between sections, e.g.
// "Bills =====...". Dividers are never indented.
func (p *Printer) printTopLevelSeparator(w io.Writer, header string) error {
	padded := header + " "
	width := lipgloss.Width(padded)
	if width >= topLevelSeparatorWidth {
		return fmt.Errorf("%w (%d): %q", ErrHeaderTooWide, topLevelSeparatorWidth, header)
	}
	fill := strings.Repeat("=", topLevelSeparatorWidth-width)
	if p.color {
		padded = p.styles.header.Render(header) + " "
		fill = p.styles.rule.Render(fill)
	}
	_, err := fmt.Fprintf(w, "%s%s\n", padded, fill)
	return err
}

// printBottomLevelSeparator divides a section's summary from its rows. It is
// indented once since it separates within a section.
func printBottomLevelSeparator(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\t%s\n", strings.Repeat("-", bottomLevelSeparatorWidth))
	return err
}

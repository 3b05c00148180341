package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/sortbench/internal/record"
)

const (
	sizeTitle = "Input Size"
	separator = " | "
	missing   = "-"
)

// Table writes result tables.
type Table struct {
	w     io.Writer
	color bool
}

// NewTable creates a Table writing to w. useColor highlights headers.
func NewTable(w io.Writer, useColor bool) *Table {
	return &Table{w: w, color: useColor}
}

// WriteResults prints one line per row: the input size followed by the mean
// time of every sorter in seconds with six decimals.
func (t *Table) WriteResults(res *Results) {
	headers := []string{sizeTitle}
	for _, c := range res.Columns {
		headers = append(headers, c.Title+" (s)")
	}

	rows := make([][]string, 0, len(res.Rows))
	for _, r := range res.Rows {
		cells := []string{strconv.Itoa(r.Size)}
		for _, c := range res.Columns {
			if d, ok := r.Mean(c.Name); ok {
				cells = append(cells, fmt.Sprintf("%.6f", d.Seconds()))
			} else {
				cells = append(cells, missing)
			}
		}
		rows = append(rows, cells)
	}

	fmt.Fprintln(t.w)
	t.title("Results:")
	t.grid(headers, rows)
}

// WriteRecords prints records with ID, name and score columns.
func (t *Table) WriteRecords(records []record.Record) {
	headers := []string{"#", "ID", "Name", "Score"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(r.ID, 10),
			r.Name,
			strconv.FormatFloat(r.Score, 'f', 2, 64),
		}
	}
	t.grid(headers, rows)
}

func (t *Table) title(s string) {
	if t.color {
		s = color.Bold.Sprint(s)
	}
	fmt.Fprintln(t.w, s)
}

// grid prints headers and rows with every column padded to its widest cell.
// Numeric cells are right-aligned, everything else is left-aligned.
func (t *Table) grid(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	total := runewidth.StringWidth(separator) * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}

	fmt.Fprintln(t.w, strings.Repeat("=", total))

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = runewidth.FillRight(h, widths[i])
	}
	header := strings.Join(cells, separator)
	if t.color {
		header = color.Cyan.Sprint(header)
	}
	fmt.Fprintln(t.w, header)
	fmt.Fprintln(t.w, strings.Repeat("-", total))

	for _, row := range rows {
		for i, cell := range row {
			if isNumeric(cell) {
				cells[i] = runewidth.FillLeft(cell, widths[i])
			} else {
				cells[i] = runewidth.FillRight(cell, widths[i])
			}
		}
		fmt.Fprintln(t.w, strings.TrimRight(strings.Join(cells, separator), " "))
	}
}

func isNumeric(s string) bool {
	if s == missing {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

package buffer

import (
	"strings"

	"github.com/callmesalmon/vine/internal/syntax"
)

// Document is the ordered sequence of rows plus the active syntax.
// Every structural edit keeps rows[i].Index == i; every mutation
// increments the dirty counter and eagerly recomputes render/highlight
// state before returning.
type Document struct {
	rows     []*Row
	dirty    int
	tabWidth int

	syntax   *syntax.Syntax
	keywords []compiledKeyword
	scs      []rune
	mcs      []rune
	mce      []rune
}

// New returns an empty document.
func New(tabWidth int) *Document {
	if tabWidth < 1 {
		tabWidth = 1
	}
	return &Document{tabWidth: tabWidth}
}

// LoadBytes replaces the document contents with the given file data,
// one row per line, trailing newline/carriage-return stripped. The
// dirty counter resets to zero.
func (d *Document) LoadBytes(data []byte) {
	d.rows = nil
	for _, line := range splitLines(data) {
		d.InsertRow(len(d.rows), line)
	}
	d.dirty = 0
}

// Serialize concatenates each row's raw content with a single newline
// terminator, in row order.
func (d *Document) Serialize() []byte {
	var b strings.Builder
	for _, row := range d.rows {
		b.WriteString(string(row.Chars))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// RowCount reports the number of rows.
func (d *Document) RowCount() int { return len(d.rows) }

// Row returns the row at index i, or nil when out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// Dirty reports the number of unsaved modifications.
func (d *Document) Dirty() int { return d.dirty }

// MarkClean resets the dirty counter after a successful save.
func (d *Document) MarkClean() { d.dirty = 0 }

// TabWidth reports the configured tab stop.
func (d *Document) TabWidth() int { return d.tabWidth }

// Syntax returns the active syntax, or nil.
func (d *Document) Syntax() *syntax.Syntax { return d.syntax }

// SetSyntax installs a syntax (or nil) and re-highlights every row.
func (d *Document) SetSyntax(s *syntax.Syntax) {
	d.syntax = s
	d.compileSyntax()
	for i := range d.rows {
		d.scanRow(i)
	}
}

// InsertRow inserts a new row at the given position. Out-of-range
// positions are no-ops.
func (d *Document) InsertRow(at int, text string) {
	if at < 0 || at > len(d.rows) {
		return
	}
	row := newRow(at, text)
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = row
	for i := at + 1; i < len(d.rows); i++ {
		d.rows[i].Index = i
	}
	d.updateRow(at)
	d.dirty++
}

// DeleteRow removes the row at the given position. Out-of-range
// positions are no-ops. The row now occupying the position is
// re-highlighted since its carried-in comment state may have changed.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	copy(d.rows[at:], d.rows[at+1:])
	d.rows = d.rows[:len(d.rows)-1]
	for i := at; i < len(d.rows); i++ {
		d.rows[i].Index = i
	}
	if at < len(d.rows) {
		d.rehighlightFrom(at)
	}
	d.dirty++
}

// InsertChar inserts a character into a row. A column outside the row
// clamps to the end; an out-of-range row is a no-op.
func (d *Document) InsertChar(rowIdx, col int, r rune) {
	row := d.Row(rowIdx)
	if row == nil {
		return
	}
	if col < 0 || col > len(row.Chars) {
		col = len(row.Chars)
	}
	row.Chars = append(row.Chars, 0)
	copy(row.Chars[col+1:], row.Chars[col:])
	row.Chars[col] = r
	d.updateRow(rowIdx)
	d.dirty++
}

// DeleteChar removes the character at the given column. Out-of-range
// requests are no-ops.
func (d *Document) DeleteChar(rowIdx, col int) {
	row := d.Row(rowIdx)
	if row == nil || col < 0 || col >= len(row.Chars) {
		return
	}
	row.Chars = append(row.Chars[:col], row.Chars[col+1:]...)
	d.updateRow(rowIdx)
	d.dirty++
}

// SplitRow splits a row at the given column. At column 0 an empty row
// is inserted before the current one; otherwise the suffix becomes a
// new row and the current row is truncated to the prefix.
func (d *Document) SplitRow(rowIdx, col int) {
	row := d.Row(rowIdx)
	if row == nil {
		return
	}
	if col <= 0 {
		d.InsertRow(rowIdx, "")
		return
	}
	if col > len(row.Chars) {
		col = len(row.Chars)
	}
	d.InsertRow(rowIdx+1, string(row.Chars[col:]))
	row = d.rows[rowIdx]
	row.Chars = row.Chars[:col]
	d.updateRow(rowIdx)
}

// JoinRow appends the row's full content to the previous row and
// deletes it, returning the join column (the previous row's pre-join
// length). Joining the first row is a no-op and returns -1.
func (d *Document) JoinRow(rowIdx int) int {
	if rowIdx <= 0 || rowIdx >= len(d.rows) {
		return -1
	}
	prev := d.rows[rowIdx-1]
	joinCol := len(prev.Chars)
	prev.Chars = append(prev.Chars, d.rows[rowIdx].Chars...)
	d.updateRow(rowIdx - 1)
	d.dirty++
	d.DeleteRow(rowIdx)
	return joinCol
}

// CxToRx converts a buffer column to a rendered column for the row.
func (d *Document) CxToRx(rowIdx, cx int) int {
	row := d.Row(rowIdx)
	if row == nil {
		return 0
	}
	return row.cxToRx(cx, d.tabWidth)
}

// RxToCx converts a rendered column back to a buffer column.
func (d *Document) RxToCx(rowIdx, rx int) int {
	row := d.Row(rowIdx)
	if row == nil {
		return 0
	}
	return row.rxToCx(rx, d.tabWidth)
}

// updateRow rebuilds the row's render string and re-highlights it,
// cascading to following rows while their carried comment state changes.
func (d *Document) updateRow(at int) {
	d.rows[at].updateRender(d.tabWidth)
	d.rehighlightFrom(at)
}

func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	text := string(data)
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// Package buffer implements the document model: an ordered sequence of
// rows with derived render strings and per-character highlight classes.
//
// A Document is owned by a single control loop and is not safe for
// concurrent use without external synchronization.
package buffer

// Class tags one rendered character with its highlight kind.
type Class uint8

const (
	ClassNormal Class = iota
	ClassComment
	ClassMLComment
	ClassKeyword1
	ClassKeyword2
	ClassString
	ClassNumber
	ClassMatch
)

// Row is one logical line. Chars is the authoritative content; Render
// and HL are derived and rebuilt whenever Chars changes. OpenComment
// records whether scanning this row left an unterminated multi-line
// comment for the next row to inherit.
type Row struct {
	Index       int
	Chars       []rune
	Render      []rune
	HL          []Class
	OpenComment bool
}

func newRow(index int, text string) *Row {
	return &Row{Index: index, Chars: []rune(text)}
}

// updateRender rebuilds the render string, expanding each tab to spaces
// up to the next multiple of tabWidth.
func (r *Row) updateRender(tabWidth int) {
	if tabWidth < 1 {
		tabWidth = 1
	}
	out := make([]rune, 0, len(r.Chars))
	for _, c := range r.Chars {
		if c == '\t' {
			out = append(out, ' ')
			for len(out)%tabWidth != 0 {
				out = append(out, ' ')
			}
			continue
		}
		out = append(out, c)
	}
	r.Render = out
}

// cxToRx maps a buffer column to its rendered column.
func (r *Row) cxToRx(cx, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	if cx > len(r.Chars) {
		cx = len(r.Chars)
	}
	rx := 0
	for j := 0; j < cx; j++ {
		if r.Chars[j] == '\t' {
			rx += (tabWidth - 1) - (rx % tabWidth)
		}
		rx++
	}
	return rx
}

// rxToCx is the inverse of cxToRx: the first buffer column whose
// cumulative rendered width exceeds rx.
func (r *Row) rxToCx(rx, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	curRx := 0
	for cx := 0; cx < len(r.Chars); cx++ {
		if r.Chars[cx] == '\t' {
			curRx += (tabWidth - 1) - (curRx % tabWidth)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return len(r.Chars)
}

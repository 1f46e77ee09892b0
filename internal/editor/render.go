package editor

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/callmesalmon/vine/internal/buffer"
)

// Run is a stretch of rendered characters sharing one highlight class.
// The draw loop switches styles only at run boundaries.
type Run struct {
	Text  []rune
	Class buffer.Class
}

// rowRuns slices a row's render/highlight arrays at [off, off+width)
// and groups them into runs.
func rowRuns(render []rune, hl []buffer.Class, off, width int) []Run {
	if off < 0 {
		off = 0
	}
	if off >= len(render) || width <= 0 {
		return nil
	}
	end := off + width
	if end > len(render) {
		end = len(render)
	}
	var runs []Run
	start := off
	for i := off + 1; i <= end; i++ {
		if i == end || hl[i] != hl[start] {
			runs = append(runs, Run{Text: render[start:i], Class: hl[start]})
			start = i
		}
	}
	return runs
}

func (e *Editor) styleFor(class buffer.Class) tcell.Style {
	switch class {
	case buffer.ClassComment, buffer.ClassMLComment:
		return e.styleComment
	case buffer.ClassKeyword1:
		return e.styleKeyword
	case buffer.ClassKeyword2:
		return e.styleType
	case buffer.ClassString:
		return e.styleString
	case buffer.ClassNumber:
		return e.styleNumber
	case buffer.ClassMatch:
		return e.styleMatch
	default:
		return e.styleMain
	}
}

// scroll recomputes rx from cx and clamps the offsets so the cursor
// stays inside the visible window, reserving room for the gutter on
// the right edge.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < e.doc.RowCount() {
		e.rx = e.doc.CxToRx(e.cy, e.cx)
	}

	if e.cy < e.rowOff {
		e.rowOff = e.cy
	}
	if e.cy >= e.rowOff+e.screenRows {
		e.rowOff = e.cy - e.screenRows + 1
	}
	if e.rx < e.colOff {
		e.colOff = e.rx
	}
	if e.rx >= e.colOff+e.screenCols {
		e.colOff = e.rx - e.screenCols + 1
	}
	if gutter := e.gutterWidth(); gutter > 0 {
		if e.rx >= e.colOff+e.screenCols-gutter {
			e.colOff = e.rx - e.screenCols + gutter + 1
		}
	}
}

func (e *Editor) gutterWidth() int {
	if !e.lineNumbers {
		return 0
	}
	return lineNumberPadding + 1
}

// Render draws the visible window, the status bar and the message bar.
func (e *Editor) Render(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	e.screenCols = w
	e.screenRows = h - 2
	if e.screenRows < 0 {
		e.screenRows = 0
	}
	e.scroll()

	s.SetStyle(e.styleMain)
	s.Clear()

	gutter := e.gutterWidth()
	for y := 0; y < e.screenRows; y++ {
		fileRow := y + e.rowOff
		if fileRow >= e.doc.RowCount() {
			e.drawFillerRow(s, y, w)
			continue
		}
		e.drawRow(s, y, w, gutter, fileRow)
	}

	if h >= 2 {
		e.drawStatusBar(s, w, h-2)
	}
	e.drawMessageBar(s, w, h-1)

	if e.prompt != nil {
		cx := len([]rune(e.prompt.label)) + len(e.prompt.buf)
		if cx >= w {
			cx = w - 1
		}
		s.ShowCursor(cx, h-1)
		s.Show()
		return
	}

	cy := e.cy - e.rowOff
	cx := gutter + e.rx - e.colOff
	if cy < 0 || cy >= e.screenRows || cx < 0 || cx >= w {
		s.HideCursor()
	} else {
		s.ShowCursor(cx, cy)
	}
	s.Show()
}

func (e *Editor) drawFillerRow(s tcell.Screen, y, w int) {
	s.SetContent(0, y, '~', nil, e.styleMain)
	if e.doc.RowCount() != 0 || y != e.screenRows/3 || e.filename != "" {
		return
	}
	welcome := []rune(fmt.Sprintf("Vine editor -- version %s", Version))
	if len(welcome) > w {
		welcome = welcome[:w]
	}
	x := (w - len(welcome)) / 2
	if x < 1 {
		x = 1
	}
	for i, r := range welcome {
		if x+i >= w {
			break
		}
		s.SetContent(x+i, y, r, nil, e.styleMain)
	}
}

func (e *Editor) drawRow(s tcell.Screen, y, w, gutter, fileRow int) {
	if gutter > 0 {
		num := fmt.Sprintf("%*d ", lineNumberPadding, fileRow+1)
		for i, r := range num {
			if i >= gutter || i >= w {
				break
			}
			s.SetContent(i, y, r, nil, e.styleLineNumber)
		}
	}

	row := e.doc.Row(fileRow)
	x := gutter
	for _, run := range rowRuns(row.Render, row.HL, e.colOff, w-gutter) {
		style := e.styleFor(run.Class)
		for _, r := range run.Text {
			if x >= w {
				return
			}
			if r < 32 || r == 127 {
				// Control characters draw as an inverse-video glyph;
				// the run style resumes right after.
				sym := '?'
				if r <= 26 {
					sym = '@' + r
				}
				s.SetContent(x, y, sym, nil, style.Reverse(true))
			} else {
				s.SetContent(x, y, r, nil, style)
			}
			x++
		}
	}
}

func (e *Editor) drawStatusBar(s tcell.Screen, w, y int) {
	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	dirtyMark := ""
	if e.doc.Dirty() > 0 {
		dirtyMark = "[+]"
	}
	filetype := "[No FT]"
	if syn := e.doc.Syntax(); syn != nil {
		filetype = syn.Name
	}
	left := fmt.Sprintf("%s - %d lines %s", name, e.doc.RowCount(), dirtyMark)
	right := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, e.doc.RowCount())
	for i, r := range composeStatusLine(left, right, w) {
		s.SetContent(i, y, r, nil, e.styleStatus)
	}
}

func (e *Editor) drawMessageBar(s tcell.Screen, w, y int) {
	var msg []rune
	if e.prompt != nil {
		msg = append([]rune(e.prompt.label), e.prompt.buf...)
	} else if e.statusMsg != "" && time.Since(e.statusTime) < statusMessageTimeout {
		msg = []rune(e.statusMsg)
	}
	for i := 0; i < w; i++ {
		r := ' '
		if i < len(msg) {
			r = msg[i]
		}
		s.SetContent(i, y, r, nil, e.styleMain)
	}
}

func composeStatusLine(left, right string, width int) []rune {
	if width <= 0 {
		return nil
	}
	leftRunes := []rune(left)
	rightRunes := []rune(right)
	if len(leftRunes)+len(rightRunes) > width {
		if len(rightRunes) >= width {
			rightRunes = rightRunes[len(rightRunes)-width:]
			leftRunes = nil
		} else {
			leftRunes = leftRunes[:width-len(rightRunes)]
		}
	}
	spaceCount := width - len(leftRunes) - len(rightRunes)
	if spaceCount < 0 {
		spaceCount = 0
	}
	line := make([]rune, 0, width)
	line = append(line, leftRunes...)
	for i := 0; i < spaceCount; i++ {
		line = append(line, ' ')
	}
	line = append(line, rightRunes...)
	return line
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

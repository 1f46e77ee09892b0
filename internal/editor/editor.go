// Package editor owns the cursor, the viewport and the terminal
// rendering of a document. It consumes decoded tcell key events and
// never reads raw bytes itself.
//
// An Editor is single-threaded: every operation runs to completion
// before the next event is handled, and it is not safe to share across
// goroutines without external synchronization.
package editor

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/callmesalmon/vine/internal/buffer"
	"github.com/callmesalmon/vine/internal/config"
	"github.com/callmesalmon/vine/internal/logger"
	"github.com/callmesalmon/vine/internal/syntax"
)

// Version is shown in the welcome banner.
const Version = "NET/1"

// lineNumberPadding is the fixed width of the line-number gutter digits.
const lineNumberPadding = 4

// statusMessageTimeout is how long a status message stays visible.
const statusMessageTimeout = 5 * time.Second

type promptKind int

const (
	promptSearch promptKind = iota
	promptSaveAs
)

type prompt struct {
	kind  promptKind
	label string
	buf   []rune
}

// findState carries one search session plus the cursor/scroll snapshot
// taken when the prompt opened, restored on cancel.
type findState struct {
	session     *buffer.FindSession
	savedCx     int
	savedCy     int
	savedRowOff int
	savedColOff int
}

type Editor struct {
	doc      *buffer.Document
	registry *syntax.Registry
	filename string

	cx, cy         int
	rx             int
	rowOff, colOff int

	screenRows int
	screenCols int

	quitTimes     int
	quitCountdown int

	statusMsg  string
	statusTime time.Time

	prompt *prompt
	find   *findState

	lineNumbers bool

	styleMain       tcell.Style
	styleStatus     tcell.Style
	styleLineNumber tcell.Style
	styleKeyword    tcell.Style
	styleType       tcell.Style
	styleString     tcell.Style
	styleComment    tcell.Style
	styleNumber     tcell.Style
	styleMatch      tcell.Style
}

func New(cfg config.Config, registry *syntax.Registry) *Editor {
	mainFg := parseColor(cfg.Theme.Foreground, tcell.ColorWhite)
	mainBg := parseColor(cfg.Theme.Background, tcell.ColorBlack)
	statusFg := parseColor(cfg.Theme.StatuslineForeground, tcell.ColorBlack)
	statusBg := parseColor(cfg.Theme.StatuslineBackground, tcell.ColorGray)
	lineNumberFg := parseColor(cfg.Theme.LineNumberForeground, tcell.ColorGray)
	matchFg := parseColor(cfg.Theme.SearchMatchForeground, tcell.ColorBlack)
	matchBg := parseColor(cfg.Theme.SearchMatchBackground, tcell.ColorYellow)

	base := tcell.StyleDefault.Background(mainBg)
	return &Editor{
		doc:             buffer.New(cfg.Editor.TabWidth),
		registry:        registry,
		quitTimes:       cfg.Editor.QuitTimes,
		quitCountdown:   cfg.Editor.QuitTimes,
		lineNumbers:     cfg.Editor.LineNumbers != "off",
		styleMain:       base.Foreground(mainFg),
		styleStatus:     tcell.StyleDefault.Foreground(statusFg).Background(statusBg),
		styleLineNumber: base.Foreground(lineNumberFg),
		styleKeyword:    base.Foreground(parseColor(cfg.Theme.SyntaxKeyword, mainFg)),
		styleType:       base.Foreground(parseColor(cfg.Theme.SyntaxType, mainFg)),
		styleString:     base.Foreground(parseColor(cfg.Theme.SyntaxString, mainFg)),
		styleComment:    base.Foreground(parseColor(cfg.Theme.SyntaxComment, mainFg)),
		styleNumber:     base.Foreground(parseColor(cfg.Theme.SyntaxNumber, mainFg)),
		styleMatch:      tcell.StyleDefault.Foreground(matchFg).Background(matchBg),
	}
}

// Document exposes the underlying buffer.
func (e *Editor) Document() *buffer.Document { return e.doc }

// Filename returns the path being edited, empty for an unnamed buffer.
func (e *Editor) Filename() string { return e.filename }

// Position reports cursor and scroll state for session persistence.
func (e *Editor) Position() (cx, cy, rowOff, colOff int) {
	return e.cx, e.cy, e.rowOff, e.colOff
}

// SetPosition restores cursor and scroll state, clamped to the buffer.
func (e *Editor) SetPosition(cx, cy, rowOff, colOff int) {
	if cy < 0 {
		cy = 0
	}
	if cy > e.doc.RowCount() {
		cy = e.doc.RowCount()
	}
	e.cy = cy
	rowLen := 0
	if row := e.doc.Row(cy); row != nil {
		rowLen = len(row.Chars)
	}
	if cx < 0 {
		cx = 0
	}
	if cx > rowLen {
		cx = rowLen
	}
	e.cx = cx
	if rowOff < 0 {
		rowOff = 0
	}
	e.rowOff = rowOff
	if colOff < 0 {
		colOff = 0
	}
	e.colOff = colOff
}

// OpenFile selects a syntax for the path and loads its contents. A
// missing or unreadable file leaves an empty buffer and returns the
// error for display; it is not a crash path.
func (e *Editor) OpenFile(path string) error {
	e.filename = path
	e.doc.SetSyntax(e.registry.Select(path))
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("open failed", "path", path, "error", err)
		return err
	}
	e.doc.LoadBytes(data)
	logger.Info("opened file", "path", path, "rows", e.doc.RowCount())
	return nil
}

// SetStatusMessage shows a transient message in the message bar.
func (e *Editor) SetStatusMessage(msg string) {
	e.statusMsg = msg
	e.statusTime = time.Now()
}

// HandleKey processes one decoded key event. It returns true when the
// editor should quit.
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	if e.prompt != nil {
		e.handlePrompt(ev)
		return false
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		e.insertNewline()
	case tcell.KeyCtrlQ:
		if e.doc.Dirty() > 0 && e.quitCountdown > 0 {
			e.SetStatusMessage(fmt.Sprintf(
				"[WARNING] File has unsaved changes. Press Ctrl-Q %d more times to quit.",
				e.quitCountdown))
			e.quitCountdown--
			return false
		}
		return true
	case tcell.KeyCtrlS:
		e.save()
	case tcell.KeyCtrlF:
		e.startSearch()
	case tcell.KeyCtrlJ:
		e.cx = 0
	case tcell.KeyCtrlK:
		if row := e.doc.Row(e.cy); row != nil {
			e.cx = len(row.Chars)
		}
	case tcell.KeyCtrlD:
		e.doc.DeleteRow(e.cy)
		e.clampCursor()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.deleteChar()
	case tcell.KeyCtrlX:
		e.moveCursor(tcell.KeyRight)
		e.deleteChar()
	case tcell.KeyDelete:
		e.moveCursor(tcell.KeyRight)
		e.deleteChar()
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		e.moveCursor(ev.Key())
	case tcell.KeyPgUp, tcell.KeyPgDn:
		e.movePage(ev.Key() == tcell.KeyPgUp)
	case tcell.KeyHome:
		e.cx = 0
	case tcell.KeyEnd:
		if row := e.doc.Row(e.cy); row != nil {
			e.cx = len(row.Chars)
		}
	case tcell.KeyTab:
		e.insertRune('\t')
	case tcell.KeyEscape, tcell.KeyCtrlL:
		// Ignored, as in the original key map.
	case tcell.KeyRune:
		e.insertRune(ev.Rune())
	}

	e.quitCountdown = e.quitTimes
	return false
}

func (e *Editor) insertRune(r rune) {
	if e.cy == e.doc.RowCount() {
		e.doc.InsertRow(e.doc.RowCount(), "")
	}
	e.doc.InsertChar(e.cy, e.cx, r)
	e.cx++
}

func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.doc.InsertRow(e.cy, "")
	} else {
		e.doc.SplitRow(e.cy, e.cx)
	}
	e.cy++
	e.cx = 0
}

func (e *Editor) deleteChar() {
	if e.cy == e.doc.RowCount() || (e.cx == 0 && e.cy == 0) {
		return
	}
	if e.cx > 0 {
		e.doc.DeleteChar(e.cy, e.cx-1)
		e.cx--
		return
	}
	e.cx = e.doc.JoinRow(e.cy)
	e.cy--
}

func (e *Editor) moveCursor(key tcell.Key) {
	row := e.doc.Row(e.cy)

	switch key {
	case tcell.KeyLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.doc.Row(e.cy).Chars)
		}
	case tcell.KeyRight:
		if row != nil && e.cx < len(row.Chars) {
			e.cx++
		} else if row != nil && e.cx == len(row.Chars) {
			e.cy++
			e.cx = 0
		}
	case tcell.KeyUp:
		if e.cy != 0 {
			e.cy--
		}
	case tcell.KeyDown:
		if e.cy < e.doc.RowCount() {
			e.cy++
		}
	}

	e.clampCursor()
}

func (e *Editor) clampCursor() {
	if e.cy > e.doc.RowCount() {
		e.cy = e.doc.RowCount()
	}
	rowLen := 0
	if row := e.doc.Row(e.cy); row != nil {
		rowLen = len(row.Chars)
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

func (e *Editor) movePage(up bool) {
	if up {
		e.cy = e.rowOff
	} else {
		e.cy = e.rowOff + e.screenRows - 1
		if e.cy > e.doc.RowCount() {
			e.cy = e.doc.RowCount()
		}
	}
	key := tcell.KeyDown
	if up {
		key = tcell.KeyUp
	}
	for times := e.screenRows; times > 0; times-- {
		e.moveCursor(key)
	}
}

func (e *Editor) save() {
	if e.filename == "" {
		e.prompt = &prompt{kind: promptSaveAs, label: "Save as: "}
		return
	}
	e.writeFile()
}

func (e *Editor) writeFile() {
	data := e.doc.Serialize()
	if err := os.WriteFile(e.filename, data, 0o644); err != nil {
		logger.Error("save failed", "path", e.filename, "error", err)
		e.SetStatusMessage("[ERROR] Can't save! I/O error: " + err.Error())
		return
	}
	e.doc.MarkClean()
	logger.Info("saved file", "path", e.filename, "bytes", len(data))
	e.SetStatusMessage(fmt.Sprintf("%d bytes written to disk", len(data)))
}

func (e *Editor) startSearch() {
	e.find = &findState{
		session:     buffer.NewFindSession(e.doc),
		savedCx:     e.cx,
		savedCy:     e.cy,
		savedRowOff: e.rowOff,
		savedColOff: e.colOff,
	}
	e.prompt = &prompt{kind: promptSearch, label: "Search: "}
	e.SetStatusMessage("Search (Use ESC/Arrows/Enter)")
}

func (e *Editor) handlePrompt(ev *tcell.EventKey) {
	p := e.prompt
	switch ev.Key() {
	case tcell.KeyEscape:
		e.prompt = nil
		if p.kind == promptSearch {
			e.stepSearch(string(p.buf), buffer.FindKeyCancel)
			e.cx = e.find.savedCx
			e.cy = e.find.savedCy
			e.rowOff = e.find.savedRowOff
			e.colOff = e.find.savedColOff
			e.find = nil
		} else {
			e.SetStatusMessage("Save aborted")
		}
	case tcell.KeyEnter:
		if len(p.buf) == 0 {
			return
		}
		e.prompt = nil
		switch p.kind {
		case promptSearch:
			e.stepSearch(string(p.buf), buffer.FindKeyAccept)
			e.find = nil
			e.SetStatusMessage("")
		case promptSaveAs:
			e.filename = string(p.buf)
			// The keyword and comment rules may have changed with the
			// new name, so every row is re-highlighted.
			e.doc.SetSyntax(e.registry.Select(e.filename))
			e.writeFile()
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyCtrlX:
		if len(p.buf) > 0 {
			p.buf = p.buf[:len(p.buf)-1]
		}
		if p.kind == promptSearch {
			e.stepSearch(string(p.buf), buffer.FindKeyQuery)
		}
	case tcell.KeyRight, tcell.KeyDown:
		if p.kind == promptSearch {
			e.stepSearch(string(p.buf), buffer.FindKeyNext)
		}
	case tcell.KeyLeft, tcell.KeyUp:
		if p.kind == promptSearch {
			e.stepSearch(string(p.buf), buffer.FindKeyPrev)
		}
	case tcell.KeyRune:
		p.buf = append(p.buf, ev.Rune())
		if p.kind == promptSearch {
			e.stepSearch(string(p.buf), buffer.FindKeyQuery)
		}
	}
}

func (e *Editor) stepSearch(query string, key buffer.FindKey) {
	if e.find == nil {
		return
	}
	m, ok := e.find.session.Advance(query, key)
	if !ok {
		return
	}
	logger.Debug("search match", "row", m.Row, "rx", m.Rx)
	e.cy = m.Row
	e.cx = m.Cx
	// Force the scroll clamp to bring the match to the top of the view.
	e.rowOff = e.doc.RowCount()
}

package buffer

// FindKey tells a find session what happened in the prompt since the
// last step.
type FindKey int

const (
	// FindKeyQuery means the query text changed; the scan restarts.
	FindKeyQuery FindKey = iota
	// FindKeyNext advances to the next match (forward).
	FindKeyNext
	// FindKeyPrev advances to the previous match (backward).
	FindKeyPrev
	// FindKeyAccept ends the session keeping the cursor at the match.
	FindKeyAccept
	// FindKeyCancel ends the session; the caller restores the cursor.
	FindKeyCancel
)

// Match locates one query hit.
type Match struct {
	Row    int
	Cx     int
	Rx     int
	Length int
}

// FindSession is the incremental search state shared by repeated steps
// of one prompt session: the last matched row, the scan direction, and
// a snapshot of the highlight slice it overrode.
type FindSession struct {
	doc       *Document
	lastMatch int
	direction int
	savedRow  int
	savedHL   []Class
}

// NewFindSession starts a search session over the document.
func NewFindSession(doc *Document) *FindSession {
	return &FindSession{doc: doc, lastMatch: -1, direction: 1, savedRow: -1}
}

// Advance performs one search step. Any highlight override from the
// previous step is restored first. Accept and Cancel end the session
// and report no match; otherwise rows are scanned starting after the
// last match in the current direction, wrapping once around the
// document, and the first row whose render string contains the query
// gets its matched span overridden with ClassMatch.
func (s *FindSession) Advance(query string, key FindKey) (Match, bool) {
	s.restore()

	switch key {
	case FindKeyAccept, FindKeyCancel:
		s.lastMatch = -1
		s.direction = 1
		return Match{}, false
	case FindKeyNext:
		s.direction = 1
	case FindKeyPrev:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}

	q := []rune(query)
	n := s.doc.RowCount()
	if len(q) == 0 || n == 0 {
		return Match{}, false
	}
	if s.lastMatch == -1 {
		s.direction = 1
	}

	current := s.lastMatch
	for i := 0; i < n; i++ {
		current += s.direction
		if current == -1 {
			current = n - 1
		} else if current == n {
			current = 0
		}
		row := s.doc.Row(current)
		at := indexRunes(row.Render, q)
		if at < 0 {
			continue
		}
		s.lastMatch = current
		s.savedRow = current
		s.savedHL = append([]Class(nil), row.HL...)
		end := at + len(q)
		if end > len(row.HL) {
			end = len(row.HL)
		}
		fill(row.HL[at:end], ClassMatch)
		return Match{
			Row:    current,
			Cx:     row.rxToCx(at, s.doc.tabWidth),
			Rx:     at,
			Length: len(q),
		}, true
	}
	return Match{}, false
}

// restore copies the saved highlight slice back, exactly as captured.
func (s *FindSession) restore() {
	if s.savedRow >= 0 && s.savedRow < s.doc.RowCount() {
		row := s.doc.Row(s.savedRow)
		if len(s.savedHL) == len(row.HL) {
			copy(row.HL, s.savedHL)
		}
	}
	s.savedRow = -1
	s.savedHL = nil
}

func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 || len(haystack) < len(needle) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if hasPrefix(haystack[i:], needle) {
			return i
		}
	}
	return -1
}

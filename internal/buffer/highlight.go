package buffer

import (
	"strings"
	"unicode"

	"github.com/callmesalmon/vine/internal/syntax"
)

// Characters that end a keyword or number token, in addition to any
// whitespace. The NUL entry covers end-of-line boundary tests.
const separators = ",.()+-/*^=@#~&%$`´<>[]{}!\\:|;?"

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == 0 || strings.ContainsRune(separators, r)
}

type compiledKeyword struct {
	text      []rune
	secondary bool
}

func (d *Document) compileSyntax() {
	d.keywords = nil
	d.scs = nil
	d.mcs = nil
	d.mce = nil
	if d.syntax == nil {
		return
	}
	d.keywords = make([]compiledKeyword, 0, len(d.syntax.Keywords))
	for _, kw := range d.syntax.Keywords {
		text, secondary := syntax.KeywordClass(kw)
		if text == "" {
			continue
		}
		d.keywords = append(d.keywords, compiledKeyword{text: []rune(text), secondary: secondary})
	}
	d.scs = []rune(d.syntax.SingleLineComment)
	d.mcs = []rune(d.syntax.MultiLineCommentStart)
	d.mce = []rune(d.syntax.MultiLineCommentEnd)
}

// rehighlightFrom re-scans the row at the given index and keeps walking
// forward while a row's carried-out comment flag changes. This is the
// iterative form of the multi-line comment cascade: one edit near the
// top of a file may recolor every following row.
func (d *Document) rehighlightFrom(at int) {
	for i := at; i < len(d.rows); i++ {
		if !d.scanRow(i) {
			break
		}
	}
}

// scanRow recomputes the highlight classes for one row from its render
// string and reports whether the carried-out comment flag changed.
func (d *Document) scanRow(idx int) bool {
	row := d.rows[idx]
	row.HL = make([]Class, len(row.Render))

	if d.syntax == nil {
		changed := row.OpenComment
		row.OpenComment = false
		return changed
	}

	render := row.Render
	n := len(render)

	prevSep := true
	var inString rune
	inComment := idx > 0 && d.rows[idx-1].OpenComment

	i := 0
	for i < n {
		c := render[i]
		prevHL := ClassNormal
		if i > 0 {
			prevHL = row.HL[i-1]
		}

		if len(d.scs) > 0 && inString == 0 && !inComment && hasPrefix(render[i:], d.scs) {
			fill(row.HL[i:], ClassComment)
			break
		}

		if len(d.mcs) > 0 && len(d.mce) > 0 && inString == 0 {
			if inComment {
				row.HL[i] = ClassMLComment
				if hasPrefix(render[i:], d.mce) {
					fill(row.HL[i:i+len(d.mce)], ClassMLComment)
					i += len(d.mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if hasPrefix(render[i:], d.mcs) {
				fill(row.HL[i:i+len(d.mcs)], ClassMLComment)
				i += len(d.mcs)
				inComment = true
				continue
			}
		}

		if d.syntax.HighlightStrings {
			if inString != 0 {
				row.HL[i] = ClassString
				if c == '\\' && i+1 < n {
					row.HL[i+1] = ClassString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				row.HL[i] = ClassString
				i++
				continue
			}
		}

		if d.syntax.HighlightNumbers {
			if (unicode.IsDigit(c) && (prevSep || prevHL == ClassNumber)) ||
				((c == '.' || c == 'x' || (c >= 'a' && c <= 'f')) && prevHL == ClassNumber) {
				row.HL[i] = ClassNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			matched := false
			for _, kw := range d.keywords {
				klen := len(kw.text)
				if i+klen > n || !hasPrefix(render[i:], kw.text) {
					continue
				}
				// Reject matches running into an identifier.
				if i+klen < n && !isSeparator(render[i+klen]) {
					continue
				}
				class := ClassKeyword1
				if kw.secondary {
					class = ClassKeyword2
				}
				fill(row.HL[i:i+klen], class)
				i += klen
				matched = true
				break
			}
			if matched {
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	changed := row.OpenComment != inComment
	row.OpenComment = inComment
	return changed
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) == 0 || len(s) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

func fill(hl []Class, c Class) {
	for i := range hl {
		hl[i] = c
	}
}

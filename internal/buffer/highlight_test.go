package buffer

import (
	"testing"

	"github.com/callmesalmon/vine/internal/syntax"
)

func cLike() *syntax.Syntax {
	return &syntax.Syntax{
		Name:                  "test",
		FileMatch:             []string{".t"},
		Keywords:              []string{"for", "if", "struct", "int|", "char|"},
		SingleLineComment:     "//",
		MultiLineCommentStart: "/*",
		MultiLineCommentEnd:   "*/",
		HighlightNumbers:      true,
		HighlightStrings:      true,
	}
}

func newHLDoc(syn *syntax.Syntax, lines ...string) *Document {
	d := newTestDoc(lines...)
	d.SetSyntax(syn)
	return d
}

func classes(row *Row) []Class {
	return append([]Class(nil), row.HL...)
}

func allClass(hl []Class, c Class) bool {
	for _, got := range hl {
		if got != c {
			return false
		}
	}
	return true
}

func TestNoSyntaxAllNormal(t *testing.T) {
	d := newTestDoc("for (x) /* y */")
	row := d.Row(0)
	if !allClass(row.HL, ClassNormal) {
		t.Fatalf("HL = %v, want all normal", row.HL)
	}
	if row.OpenComment {
		t.Fatalf("OpenComment = true, want false")
	}
}

func TestSingleLineComment(t *testing.T) {
	d := newHLDoc(cLike(), "x = 1; // trailing")
	hl := d.Row(0).HL
	at := 7 // start of "//"
	if !allClass(hl[at:], ClassComment) {
		t.Fatalf("comment tail = %v", hl[at:])
	}
	if hl[0] != ClassNormal {
		t.Fatalf("hl[0] = %v, want normal", hl[0])
	}
}

func TestKeywordBoundary(t *testing.T) {
	d := newHLDoc(cLike(), "forward")
	if !allClass(d.Row(0).HL, ClassNormal) {
		t.Fatalf("keyword matched inside identifier: %v", d.Row(0).HL)
	}

	d = newHLDoc(cLike(), "for (x)")
	hl := d.Row(0).HL
	if !allClass(hl[:3], ClassKeyword1) {
		t.Fatalf("keyword not highlighted: %v", hl[:3])
	}
	if hl[3] != ClassNormal {
		t.Fatalf("hl[3] = %v, want normal", hl[3])
	}
}

func TestKeywordAtEndOfLine(t *testing.T) {
	d := newHLDoc(cLike(), "for")
	if !allClass(d.Row(0).HL, ClassKeyword1) {
		t.Fatalf("keyword at EOL not highlighted: %v", d.Row(0).HL)
	}
}

func TestSecondaryKeywordClass(t *testing.T) {
	d := newHLDoc(cLike(), "int x")
	hl := d.Row(0).HL
	if !allClass(hl[:3], ClassKeyword2) {
		t.Fatalf("type keyword class = %v, want keyword2", hl[:3])
	}
}

func TestStringWithEscape(t *testing.T) {
	d := newHLDoc(cLike(), `x = "a\"b" y`)
	hl := d.Row(0).HL
	if !allClass(hl[4:10], ClassString) {
		t.Fatalf("string span = %v", hl[4:10])
	}
	if hl[11] != ClassNormal {
		t.Fatalf("after string = %v, want normal", hl[11])
	}
}

func TestNumbers(t *testing.T) {
	d := newHLDoc(cLike(), "a = 0x1f + 3.14; id9")
	hl := d.Row(0).HL
	if !allClass(hl[4:8], ClassNumber) {
		t.Fatalf("hex literal = %v", hl[4:8])
	}
	if !allClass(hl[11:15], ClassNumber) {
		t.Fatalf("float literal = %v", hl[11:15])
	}
	// A digit inside an identifier must not start a number.
	if hl[19] != ClassNormal {
		t.Fatalf("digit in identifier = %v, want normal", hl[19])
	}
}

func TestMultiLineCommentPropagation(t *testing.T) {
	d := newHLDoc(cLike(), "/* comment", "still comment */", "code")

	if !d.Row(0).OpenComment {
		t.Fatalf("row 0 OpenComment = false, want true")
	}
	if !allClass(d.Row(0).HL, ClassMLComment) {
		t.Fatalf("row 0 = %v", d.Row(0).HL)
	}

	row1 := d.Row(1)
	if row1.OpenComment {
		t.Fatalf("row 1 OpenComment = true, want false")
	}
	if !allClass(row1.HL[:16], ClassMLComment) {
		t.Fatalf("row 1 comment span = %v", row1.HL)
	}

	row2 := d.Row(2)
	if !allClass(row2.HL, ClassNormal) {
		t.Fatalf("row 2 = %v, want normal", row2.HL)
	}
}

func TestCascadeOnEdit(t *testing.T) {
	d := newHLDoc(cLike(), "/* comment", "still comment */", "code")

	// Delete the "*/" from row 1: the open-comment state must cascade
	// into row 2 even though row 2's raw content never changed.
	d.DeleteChar(1, 15)
	d.DeleteChar(1, 14)

	if !d.Row(1).OpenComment {
		t.Fatalf("row 1 OpenComment = false, want true")
	}
	if !allClass(d.Row(2).HL, ClassMLComment) {
		t.Fatalf("row 2 = %v, want all comment", d.Row(2).HL)
	}

	// Putting the close marker back restores row 2.
	d.InsertChar(1, 14, '*')
	d.InsertChar(1, 15, '/')
	if d.Row(1).OpenComment {
		t.Fatalf("row 1 OpenComment = true, want false")
	}
	if !allClass(d.Row(2).HL, ClassNormal) {
		t.Fatalf("row 2 = %v, want normal", d.Row(2).HL)
	}
}

func TestDeleteRowRehighlightsSuccessor(t *testing.T) {
	d := newHLDoc(cLike(), "/* open", "x", "*/ done")
	if !allClass(d.Row(1).HL, ClassMLComment) {
		t.Fatalf("row 1 = %v, want comment", d.Row(1).HL)
	}

	// Removing the opening row must un-comment everything below.
	d.DeleteRow(0)
	if !allClass(d.Row(0).HL, ClassNormal) {
		t.Fatalf("row 0 after delete = %v, want normal", d.Row(0).HL)
	}
}

func TestCommentInsideStringIgnored(t *testing.T) {
	d := newHLDoc(cLike(), `"/* not a comment"`)
	row := d.Row(0)
	if !allClass(row.HL, ClassString) {
		t.Fatalf("HL = %v, want all string", row.HL)
	}
	if row.OpenComment {
		t.Fatalf("OpenComment = true, want false")
	}
}

func TestThreeCharCommentDelimiters(t *testing.T) {
	py := &syntax.Syntax{
		Name:                  "py",
		FileMatch:             []string{".py"},
		SingleLineComment:     "#",
		MultiLineCommentStart: `"""`,
		MultiLineCommentEnd:   `"""`,
		HighlightNumbers:      true,
		HighlightStrings:      false,
	}
	d := newHLDoc(py, `"""doc`, `end"""`, "x = 1")
	if !d.Row(0).OpenComment {
		t.Fatalf("row 0 OpenComment = false, want true")
	}
	if d.Row(1).OpenComment {
		t.Fatalf("row 1 OpenComment = true, want false")
	}
	if !allClass(d.Row(1).HL, ClassMLComment) {
		t.Fatalf("row 1 = %v, want comment", d.Row(1).HL)
	}
	if d.Row(2).HL[0] != ClassNormal {
		t.Fatalf("row 2 head = %v, want normal", d.Row(2).HL[0])
	}
}

func TestHighlightIdempotent(t *testing.T) {
	d := newHLDoc(cLike(), "for (i = 0x1f; /* c */ i < 10; i++) { \"s\" }")
	before := classes(d.Row(0))
	renderBefore := string(d.Row(0).Render)

	d.updateRow(0)

	if string(d.Row(0).Render) != renderBefore {
		t.Fatalf("render changed on recompute")
	}
	after := classes(d.Row(0))
	if len(before) != len(after) {
		t.Fatalf("HL length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("HL[%d] changed: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestSetSyntaxRehighlightsAll(t *testing.T) {
	d := newTestDoc("/* c */", "for")
	if !allClass(d.Row(1).HL, ClassNormal) {
		t.Fatalf("pre-syntax HL not normal")
	}
	d.SetSyntax(cLike())
	if !allClass(d.Row(0).HL, ClassMLComment) {
		t.Fatalf("row 0 = %v, want comment", d.Row(0).HL)
	}
	if !allClass(d.Row(1).HL, ClassKeyword1) {
		t.Fatalf("row 1 = %v, want keyword", d.Row(1).HL)
	}
	d.SetSyntax(nil)
	if !allClass(d.Row(0).HL, ClassNormal) {
		t.Fatalf("row 0 after clearing syntax = %v", d.Row(0).HL)
	}
}

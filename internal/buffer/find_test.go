package buffer

import (
	"testing"
)

func TestFindForwardAndWrap(t *testing.T) {
	d := newTestDoc("alpha", "beta", "alpha beta")
	s := NewFindSession(d)

	m, ok := s.Advance("beta", FindKeyQuery)
	if !ok {
		t.Fatalf("no match")
	}
	if m.Row != 1 || m.Cx != 0 || m.Length != 4 {
		t.Fatalf("match = %+v", m)
	}

	m, ok = s.Advance("beta", FindKeyNext)
	if !ok || m.Row != 2 || m.Cx != 6 {
		t.Fatalf("next match = %+v ok=%v", m, ok)
	}

	// Wraps back around to the first hit.
	m, ok = s.Advance("beta", FindKeyNext)
	if !ok || m.Row != 1 {
		t.Fatalf("wrapped match = %+v ok=%v", m, ok)
	}

	m, ok = s.Advance("beta", FindKeyPrev)
	if !ok || m.Row != 2 {
		t.Fatalf("prev match = %+v ok=%v", m, ok)
	}
}

func TestFindMatchUsesRenderColumns(t *testing.T) {
	d := newTestDoc("\tneedle")
	s := NewFindSession(d)
	m, ok := s.Advance("needle", FindKeyQuery)
	if !ok {
		t.Fatalf("no match")
	}
	if m.Rx != 4 {
		t.Fatalf("rx = %d, want 4", m.Rx)
	}
	if m.Cx != 1 {
		t.Fatalf("cx = %d, want 1", m.Cx)
	}
}

func TestFindOverridesAndRestoresHighlight(t *testing.T) {
	d := newTestDoc("alpha", "beta")
	d.SetSyntax(cLike())
	before := classes(d.Row(1))

	s := NewFindSession(d)
	m, ok := s.Advance("bet", FindKeyQuery)
	if !ok || m.Row != 1 {
		t.Fatalf("match = %+v ok=%v", m, ok)
	}
	row := d.Row(1)
	for i := 0; i < 3; i++ {
		if row.HL[i] != ClassMatch {
			t.Fatalf("HL[%d] = %v, want match", i, row.HL[i])
		}
	}

	// Ending the session must copy the snapshot back exactly.
	if _, ok := s.Advance("bet", FindKeyCancel); ok {
		t.Fatalf("cancel reported a match")
	}
	after := classes(d.Row(1))
	if len(before) != len(after) {
		t.Fatalf("HL length changed")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("HL[%d] = %v, want %v", i, after[i], before[i])
		}
	}
}

func TestFindNoMatchLeavesState(t *testing.T) {
	d := newTestDoc("alpha")
	s := NewFindSession(d)
	if _, ok := s.Advance("zzz", FindKeyQuery); ok {
		t.Fatalf("unexpected match")
	}
	if !allClass(d.Row(0).HL, ClassNormal) {
		t.Fatalf("highlight disturbed: %v", d.Row(0).HL)
	}
}

func TestFindQueryChangeRestartsScan(t *testing.T) {
	d := newTestDoc("one", "two", "twin")
	s := NewFindSession(d)

	m, _ := s.Advance("tw", FindKeyQuery)
	if m.Row != 1 {
		t.Fatalf("first = %+v", m)
	}
	m, _ = s.Advance("tw", FindKeyNext)
	if m.Row != 2 {
		t.Fatalf("second = %+v", m)
	}
	// Editing the query resets the scan to the top.
	m, _ = s.Advance("twi", FindKeyQuery)
	if m.Row != 2 {
		t.Fatalf("after edit = %+v", m)
	}
	m, _ = s.Advance("tw", FindKeyQuery)
	if m.Row != 1 {
		t.Fatalf("after shrink = %+v", m)
	}
}

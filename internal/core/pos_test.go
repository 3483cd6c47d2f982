package core

import "testing"

func TestDirRotation(t *testing.T) {
	tests := []struct {
		d, right, left, opposite Dir
	}{
		{DirNorth, DirEast, DirWest, DirSouth},
		{DirEast, DirSouth, DirNorth, DirWest},
		{DirSouth, DirWest, DirEast, DirNorth},
		{DirWest, DirNorth, DirSouth, DirEast},
	}

	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			if got := tc.d.Right(); got != tc.right {
				t.Errorf("Right() = %v, expected %v", got, tc.right)
			}
			if got := tc.d.Left(); got != tc.left {
				t.Errorf("Left() = %v, expected %v", got, tc.left)
			}
			if got := tc.d.Opposite(); got != tc.opposite {
				t.Errorf("Opposite() = %v, expected %v", got, tc.opposite)
			}
			if got := tc.d.Right().Left(); got != tc.d {
				t.Errorf("Right().Left() = %v, expected %v", got, tc.d)
			}
		})
	}
}

func TestParseDir(t *testing.T) {
	tests := []struct {
		in string
		d  Dir
		ok bool
	}{
		{"N", DirNorth, true},
		{"east", DirEast, true},
		{"South", DirSouth, true},
		{"w", DirWest, true},
		{"SoUtH", DirSouth, true},
		{"LEFT", DirWest, true},
		{"no", 0, false},
		{"x", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		d, ok := ParseDir(tc.in)
		if ok != tc.ok || (ok && d != tc.d) {
			t.Errorf("ParseDir(%q) = %v, %v; expected %v, %v", tc.in, d, ok, tc.d, tc.ok)
		}
	}
}

func TestPosMove(t *testing.T) {
	p := P(3, 3)

	if got := p.Move(DirNorth); got != P(3, 2) {
		t.Errorf("Move(N) = %v", got)
	}
	if got := p.Move(DirEast); got != P(4, 3) {
		t.Errorf("Move(E) = %v", got)
	}
	if got := p.Move(DirSouth); got != P(3, 4) {
		t.Errorf("Move(S) = %v", got)
	}
	if got := p.Move(DirWest); got != P(2, 3) {
		t.Errorf("Move(W) = %v", got)
	}
}

func TestPosMoveUnderflowPanics(t *testing.T) {
	for _, tc := range []struct {
		p Pos
		d Dir
	}{
		{P(0, 5), DirWest},
		{P(5, 0), DirNorth},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%v.Move(%v) should panic", tc.p, tc.d)
				}
			}()
			tc.p.Move(tc.d)
		}()
	}
}

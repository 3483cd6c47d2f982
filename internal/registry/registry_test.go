package registry

import (
	"context"
	"testing"
)

type fakeSolver struct {
	day   int
	title string
}

func (f fakeSolver) Day() int      { return f.day }
func (f fakeSolver) Title() string { return f.title }

func (f fakeSolver) Parse(input string, _ Options) (Puzzle, error) {
	return fakePuzzle(len(input)), nil
}

type fakePuzzle int

func (p fakePuzzle) Part1(context.Context) (int, error) { return int(p), nil }
func (p fakePuzzle) Part2(context.Context) (int, error) { return int(p) * 2, nil }

func TestRegisterAndCreate(t *testing.T) {
	Register(func() Solver { return fakeSolver{day: 901, title: "Fake"} })
	defer unregister(901)

	if !Exists(901) {
		t.Fatal("day 901 should exist after Register")
	}

	s, err := Create(901)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if s.Title() != "Fake" {
		t.Errorf("Title() = %q, expected %q", s.Title(), "Fake")
	}

	p, err := s.Parse("abc", Options{})
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if v, _ := p.Part2(context.Background()); v != 6 {
		t.Errorf("Part2() = %d, expected 6", v)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(func() Solver { return fakeSolver{day: 902, title: "A"} })
	defer unregister(902)

	defer func() {
		if recover() == nil {
			t.Error("registering day 902 twice should panic")
		}
	}()
	Register(func() Solver { return fakeSolver{day: 902, title: "B"} })
}

func TestListSortedByDay(t *testing.T) {
	Register(func() Solver { return fakeSolver{day: 912, title: "Later"} })
	Register(func() Solver { return fakeSolver{day: 911, title: "Earlier"} })
	defer unregister(911)
	defer unregister(912)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Day >= list[i].Day {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create(999); err == nil {
		t.Error("Create() of unknown day should fail")
	}
	if Exists(999) {
		t.Error("day 999 should not exist")
	}
}

func TestOptionsLogDefaultsToDiscard(t *testing.T) {
	var o Options
	if o.Log() == nil {
		t.Fatal("Log() should never return nil")
	}
	o.Log().Info("discarded")
}

package wordsearch

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func testEnv(active []string, rows ...string) Env {
	return Env{Grid: MustParseGrid(rows...), Active: active, Rules: DefaultRules()}
}

func drag(env Env, cells ...Coord) Selection {
	var s Selection
	s = s.Begin(env, cells[0])
	for _, c := range cells[1:] {
		s = s.MoveOver(env, c)
	}
	return s
}

func TestBeginOnlyFromIdle(t *testing.T) {
	env := testEnv([]string{"cat"}, "cat")

	s := Selection{}.Begin(env, C(0, 0))
	if !s.Selecting || s.Word != "c" || len(s.Path) != 1 {
		t.Fatalf("Begin = %+v", s)
	}
	if again := s.Begin(env, C(2, 0)); !reflect.DeepEqual(again, s) {
		t.Error("Begin while selecting should be a no-op")
	}
	if off := (Selection{}).Begin(env, C(5, 5)); !off.Idle() {
		t.Error("Begin off the grid should stay idle")
	}
}

func TestMoveOverBuildsWord(t *testing.T) {
	env := testEnv([]string{"car", "cat"}, "cat", "a..", "r..")

	s := drag(env, C(0, 0), C(1, 0), C(2, 0))
	if s.Word != "cat" || s.Orientation != Horizontal {
		t.Errorf("horizontal drag = %q %s, expected cat horizontal", s.Word, s.Orientation)
	}

	s = drag(env, C(0, 0), C(0, 1), C(0, 2))
	if s.Word != "car" || s.Orientation != Vertical {
		t.Errorf("vertical drag = %q %s, expected car vertical", s.Word, s.Orientation)
	}
}

func TestMoveOverSkipsNonPrefixCells(t *testing.T) {
	env := testEnv([]string{"cat"}, "cxt", "a..", "t..")

	s := drag(env, C(0, 0), C(1, 0))
	if s.Word != "c" || len(s.Path) != 1 {
		t.Errorf("non-prefix letter should be skipped, got %q %v", s.Word, s.Path)
	}
	if s.Orientation != Horizontal {
		t.Errorf("skipped cell still sets the direction, got %s", s.Orientation)
	}

	s = s.MoveOver(env, C(0, 1))
	if s.Word != "ca" || s.Orientation != Vertical {
		t.Errorf("cell next to the start should re-orient, got %q %s", s.Word, s.Orientation)
	}
}

func TestMoveOverIgnoresNonAdjacent(t *testing.T) {
	env := testEnv([]string{"cat"}, "cat")

	s := drag(env, C(0, 0), C(2, 0))
	if s.Word != "c" {
		t.Errorf("jumping two cells should be ignored, got %q", s.Word)
	}
}

func TestMoveOverIgnoresOtherDirections(t *testing.T) {
	env := testEnv([]string{"cata", "cb"}, "cat.", ".b..", "..a.")
	env.Rules.ReorientFromStart = false

	s := drag(env, C(0, 0), C(1, 0), C(2, 1))
	if s.Word != "ca" || s.Orientation != Horizontal {
		t.Errorf("diagonal step off a horizontal path should be ignored, got %q %s", s.Word, s.Orientation)
	}
}

func TestBacktrackRestoresPrefix(t *testing.T) {
	env := testEnv([]string{"cats"}, "cats")

	s := drag(env, C(0, 0), C(1, 0), C(2, 0), C(3, 0))
	if s.Word != "cats" {
		t.Fatalf("setup: got %q", s.Word)
	}

	s = s.MoveOver(env, C(1, 0))
	if s.Word != "ca" || len(s.Path) != 2 {
		t.Errorf("retrace to (1,0) = %q %v, expected ca with 2 cells", s.Word, s.Path)
	}

	s = s.MoveOver(env, C(2, 0))
	if s.Word != "cat" {
		t.Errorf("extend after retrace = %q, expected cat", s.Word)
	}
}

func TestReorientFromStart(t *testing.T) {
	env := testEnv([]string{"cat", "cow"}, "cat", "o..", "w..")

	s := drag(env, C(0, 0), C(1, 0), C(0, 1))
	if s.Word != "co" || s.Orientation != Vertical {
		t.Errorf("reorient = %q %s, expected co vertical", s.Word, s.Orientation)
	}
	if !reflect.DeepEqual(s.Path, []Coord{C(0, 0), C(0, 1)}) {
		t.Errorf("reorient path = %v", s.Path)
	}
}

func TestReorientDisabled(t *testing.T) {
	env := testEnv([]string{"cat", "cow"}, "cat", "o..", "w..")
	env.Rules.ReorientFromStart = false

	s := drag(env, C(0, 0), C(1, 0), C(0, 1))
	if s.Word != "ca" || s.Orientation != Horizontal {
		t.Errorf("strict mode = %q %s, expected ca horizontal", s.Word, s.Orientation)
	}

	// Retracing to the start frees the direction again.
	s = s.MoveOver(env, C(0, 0))
	if s.Word != "c" || len(s.Path) != 1 || s.Orientation != NoOrientation {
		t.Fatalf("retrace to start = %q %v %s", s.Word, s.Path, s.Orientation)
	}
	s = s.MoveOver(env, C(0, 1))
	if s.Word != "co" || s.Orientation != Vertical {
		t.Errorf("after retrace = %q %s, expected co vertical", s.Word, s.Orientation)
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	env := testEnv([]string{"cats"}, "cats")
	s := drag(env, C(0, 0), C(1, 0), C(2, 0))
	before := s.clone()

	_ = s.MoveOver(env, C(3, 0))
	_ = s.MoveOver(env, C(1, 0))
	_, _ = s.WalkTo(env, C(3, 0))
	_, _ = s.Finish(env.Active)

	if !reflect.DeepEqual(s, before) {
		t.Errorf("receiver changed: %+v, expected %+v", s, before)
	}
}

func TestWalkToDiagonal(t *testing.T) {
	env := testEnv([]string{"dog"}, "d..", ".o.", "..g")

	s := Selection{}.Begin(env, C(0, 0))
	s, ok := s.WalkTo(env, C(2, 2))
	if !ok {
		t.Fatal("WalkTo on a diagonal should succeed")
	}
	if s.Orientation != Diagonal {
		t.Errorf("orientation = %s, expected %s", s.Orientation, Diagonal)
	}
	expected := []Coord{C(0, 0), C(1, 1), C(2, 2)}
	if !reflect.DeepEqual(s.Path, expected) {
		t.Errorf("path = %v, expected %v", s.Path, expected)
	}
	if s.Word != "dog" {
		t.Errorf("word = %q, expected dog", s.Word)
	}
}

func TestWalkToRejectsOffLine(t *testing.T) {
	env := testEnv([]string{"dog"}, "d..", ".o.", "..g")

	s := Selection{}.Begin(env, C(0, 0))
	next, ok := s.WalkTo(env, C(2, 1))
	if ok {
		t.Error("WalkTo off the line should fail")
	}
	if !reflect.DeepEqual(next, s) {
		t.Error("failed WalkTo should leave the selection unchanged")
	}
}

func TestWalkToStopsAtGridEdge(t *testing.T) {
	env := testEnv([]string{"ab"}, "ab")

	s := Selection{}.Begin(env, C(0, 0))
	s, ok := s.WalkTo(env, C(500, 0))
	if !ok {
		t.Fatal("target beyond the edge is still on the line")
	}
	if s.Word != "ab" || len(s.Path) != 2 {
		t.Errorf("walk = %q %v", s.Word, s.Path)
	}
}

func TestFinish(t *testing.T) {
	env := testEnv([]string{"ca", "cat"}, "cat")

	s := drag(env, C(0, 0), C(1, 0))
	out, next := s.Finish(env.Active)
	if !out.Matched || out.Word != "ca" {
		t.Errorf("Finish = %+v, expected match on ca", out)
	}
	if !next.Idle() || len(next.Path) != 0 {
		t.Error("Finish should return to idle")
	}

	s = drag(env, C(0, 0))
	if out, _ := s.Finish(env.Active); out.Matched {
		t.Error("single letter should not match")
	}
}

func TestSharedPrefixWords(t *testing.T) {
	// Order of the active list must not matter for completion.
	for _, active := range [][]string{{"cat", "cats"}, {"cats", "cat"}} {
		env := testEnv(active, "cats")

		s := drag(env, C(0, 0), C(1, 0), C(2, 0))
		out, _ := s.Finish(env.Active)
		if !out.Matched || out.Word != "cat" {
			t.Errorf("%v: stopping at t = %+v, expected cat", active, out)
		}

		s = drag(env, C(0, 0), C(1, 0), C(2, 0), C(3, 0))
		out, _ = s.Finish(env.Active)
		if !out.Matched || out.Word != "cats" {
			t.Errorf("%v: dragging to s = %+v, expected cats", active, out)
		}

		// With cat already removed, cats still extends through the shared prefix.
		env.Active = removeWord(env.Active, "cat")
		s = drag(env, C(0, 0), C(1, 0), C(2, 0), C(3, 0))
		if s.Word != "cats" {
			t.Errorf("%v: after removing cat, drag = %q", active, s.Word)
		}
	}
}

func TestWordAlwaysActivePrefix(t *testing.T) {
	env := testEnv([]string{"cat", "cats", "tea", "seat", "east"},
		"cats",
		"aeae",
		"tats",
		"sate",
	)
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 200; run++ {
		s := Selection{}.Begin(env, C(rng.Intn(4), rng.Intn(4)))
		for step := 0; step < 30; step++ {
			s = s.MoveOver(env, C(rng.Intn(6)-1, rng.Intn(6)-1))
			if !isActivePrefix(env.Active, s.Word) && s.Len() > 1 {
				t.Fatalf("run %d step %d: %q is not a prefix of any active word", run, step, s.Word)
			}
			if len(s.Path) != s.Len() {
				t.Fatalf("run %d step %d: path %v does not match word %q", run, step, s.Path, s.Word)
			}
		}
	}
}

func isActivePrefix(active []string, word string) bool {
	if word == "" {
		return true
	}
	for _, w := range active {
		if strings.HasPrefix(w, word) {
			return true
		}
	}
	return false
}

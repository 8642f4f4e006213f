package dice

import "testing"

// scriptedSource replays faces in order. Each face must fit the die that
// consumes it.
type scriptedSource struct {
	t     *testing.T
	faces []int
	next  int
}

func newScriptedSource(t *testing.T, faces ...int) *scriptedSource {
	t.Helper()
	return &scriptedSource{t: t, faces: faces}
}

func (s *scriptedSource) Intn(n int) int {
	s.t.Helper()
	if s.next >= len(s.faces) {
		s.t.Fatalf("scripted source exhausted after %d draws", s.next)
	}
	face := s.faces[s.next]
	s.next++
	if face < 1 || face > n {
		s.t.Fatalf("scripted face %d does not fit a d%d", face, n)
	}
	return face - 1
}

func TestNewSource_Determinism(t *testing.T) {
	first := NewSource(12345)
	second := NewSource(12345)

	for i := 0; i < 50; i++ {
		a, b := first.Intn(12), second.Intn(12)
		if a != b {
			t.Fatalf("draw %d differs: %d vs %d", i, a, b)
		}
	}
}

func TestNewRandomSource(t *testing.T) {
	src, seed, err := NewRandomSource()
	if err != nil {
		t.Fatalf("NewRandomSource() error = %v", err)
	}
	replay := NewSource(seed)
	for i := 0; i < 10; i++ {
		if got, want := src.Intn(8), replay.Intn(8); got != want {
			t.Fatalf("draw %d = %d, replay = %d", i, got, want)
		}
	}
}

func TestRollDieRange(t *testing.T) {
	src := NewSource(42)
	for _, size := range Sizes {
		for i := 0; i < 200; i++ {
			face := rollDie(src, int(size))
			if face < 1 || face > int(size) {
				t.Fatalf("rollDie(%d) = %d, out of range", size, face)
			}
		}
	}
}

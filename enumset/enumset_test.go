package enumset

import (
	"strconv"
	"testing"
)

type color uint32

func TestOfContains(t *testing.T) {
	s := Of[color](1, 5, 63, 64, 4423, 4423)

	for _, v := range []color{1, 5, 63, 64, 4423} {
		if !s.Contains(v) {
			t.Errorf("Contains(%d) = false, want true", v)
		}
	}
	for _, v := range []color{0, 2, 62, 65, 4422} {
		if s.Contains(v) {
			t.Errorf("Contains(%d) = true, want false", v)
		}
	}
	if s.Len() != 5 {
		t.Errorf("Len = %d, want 5", s.Len())
	}
}

func TestZeroValue(t *testing.T) {
	var s Set[color]
	if !s.IsEmpty() {
		t.Error("zero set should be empty")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
	if s.Intersects(Of[color](1, 100)) {
		t.Error("empty set should not intersect anything")
	}
	if got := s.Format(func(c color) string { return "x" }); got != "{}" {
		t.Errorf("Format = %q, want {}", got)
	}
}

func TestUnion(t *testing.T) {
	a := Of[color](1, 100, 300)
	b := Of[color](2, 100, 200)

	u := a.Union(b)
	want := []color{1, 2, 100, 200, 300}
	got := u.Values()
	if len(got) != len(want) {
		t.Fatalf("Values = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	// receivers are untouched
	if a.Contains(2) || b.Contains(1) {
		t.Error("Union mutated an operand")
	}
	if !a.Union(Set[color]{}).Equal(a) {
		t.Error("union with empty should equal the original")
	}
}

func TestWithDoesNotAlias(t *testing.T) {
	base := Of[color](100, 300)
	x := base.With(200)
	y := base.With(250)

	if base.Contains(200) || base.Contains(250) {
		t.Error("With mutated the receiver")
	}
	if x.Contains(250) || y.Contains(200) {
		t.Error("derived sets share storage")
	}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Set[color]
		want bool
	}{
		{"mask overlap", Of[color](1, 2), Of[color](2, 3), true},
		{"overflow overlap", Of[color](4423), Of[color](1, 4423), true},
		{"disjoint", Of[color](1, 4423), Of[color](2, 4424), false},
		{"one empty", Of[color](1), Set[color]{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualAndFormat(t *testing.T) {
	a := Of[color](3, 1, 70)
	b := Of[color](70, 3).With(1)
	if !a.Equal(b) {
		t.Error("sets built in different order should be equal")
	}
	if a.Equal(Of[color](1, 3)) {
		t.Error("different sets compare equal")
	}

	got := a.Format(func(c color) string { return strconv.Itoa(int(c)) })
	if got != "{1|3|70}" {
		t.Errorf("Format = %q, want {1|3|70}", got)
	}
}

package ident

import "testing"

func TestSame(t *testing.T) {
	type box struct{ n int }
	p1 := &box{n: 1}
	p2 := &box{n: 1}
	s1 := []int{1, 2}
	s2 := []int{1, 2}
	m1 := map[string]int{"a": 1}
	m2 := map[string]int{"a": 1}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs value", nil, 1, false},
		{"value vs nil", 1, nil, false},
		{"equal ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"equal strings", "a", "a", true},
		{"different types", 1, "1", false},
		{"int vs int64", int(1), int64(1), false},
		{"same pointer", p1, p1, true},
		{"equal but distinct pointers", p1, p2, false},
		{"same slice", s1, s1, true},
		{"equal but distinct slices", s1, s2, false},
		{"same map", m1, m1, true},
		{"equal but distinct maps", m1, m2, false},
		{"equal structs", box{n: 1}, box{n: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Same(tt.a, tt.b); got != tt.want {
				t.Errorf("Same(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSame_SliceSubrange(t *testing.T) {
	s := []int{1, 2, 3}
	if Same(s, s[:2]) {
		t.Error("slice and its prefix reported identical")
	}
	if !Same(s[:2], s[:2]) {
		t.Error("same subrange not identical")
	}
}

func TestSame_Funcs(t *testing.T) {
	f := func() {}
	g := func() {}
	if !Same(f, f) {
		t.Error("same func not identical")
	}
	if Same(f, g) {
		t.Error("distinct funcs reported identical")
	}
}

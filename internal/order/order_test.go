package order

import (
	"math/rand"
	"testing"
)

type rec struct {
	id  int64
	ord int
}

func recID(r rec) int64 { return r.id }

func ids(s []rec) []int64 {
	out := make([]int64, len(s))
	for i, r := range s {
		out[i] = r.id
	}
	return out
}

func TestNext(t *testing.T) {
	if got := Next(0); got != 0 {
		t.Errorf("Next(0) = %d, want 0", got)
	}
	if got := Next(5); got != 5 {
		t.Errorf("Next(5) = %d, want 5", got)
	}
}

func TestMove(t *testing.T) {
	base := []rec{{id: 1}, {id: 2}, {id: 3}, {id: 4}}

	tests := []struct {
		name string
		from int
		to   int
		want []int64
	}{
		{name: "forward", from: 0, to: 2, want: []int64{2, 3, 1, 4}},
		{name: "backward", from: 3, to: 0, want: []int64{4, 1, 2, 3}},
		{name: "adjacent swap", from: 1, to: 2, want: []int64{1, 3, 2, 4}},
		{name: "same index no-op", from: 2, to: 2, want: []int64{1, 2, 3, 4}},
		{name: "from out of range", from: 4, to: 0, want: []int64{1, 2, 3, 4}},
		{name: "to out of range", from: 0, to: 4, want: []int64{1, 2, 3, 4}},
		{name: "negative from", from: -1, to: 1, want: []int64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Move(base, tt.from, tt.to)
			gotIDs := ids(got)
			for i := range tt.want {
				if gotIDs[i] != tt.want[i] {
					t.Fatalf("Move(%d, %d) = %v, want %v", tt.from, tt.to, gotIDs, tt.want)
				}
			}
		})
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	base := []rec{{id: 1}, {id: 2}, {id: 3}}
	_ = Move(base, 0, 2)
	want := []int64{1, 2, 3}
	for i, id := range ids(base) {
		if id != want[i] {
			t.Fatalf("input mutated: %v", ids(base))
		}
	}
}

func TestReindexContiguity(t *testing.T) {
	s := []rec{{id: 30, ord: 7}, {id: 10, ord: 2}, {id: 20, ord: 5}}
	got := Reindex(s, recID)

	want := []Assignment{{ID: 30, Order: 0}, {ID: 10, Order: 1}, {ID: 20, Order: 2}}
	if len(got) != len(want) {
		t.Fatalf("got %d assignments, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("assignment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReindexIdempotent(t *testing.T) {
	s := []rec{{id: 1, ord: 0}, {id: 2, ord: 1}, {id: 3, ord: 2}}
	first := Reindex(s, recID)
	second := Reindex(s, recID)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("reindex not idempotent: %+v vs %+v", first[i], second[i])
		}
	}
}

// After any sequence of moves, reindexed orders must form 0..n-1.
func TestMoveReindexProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := make([]rec, 10)
	for i := range s {
		s[i] = rec{id: int64(i + 1), ord: i}
	}

	for step := 0; step < 200; step++ {
		from := rng.Intn(len(s) + 2) // occasionally out of range on purpose
		to := rng.Intn(len(s) + 2)
		s = Move(s, from, to)

		assignments := Reindex(s, recID)
		seen := make(map[int]bool)
		for _, a := range assignments {
			if a.Order < 0 || a.Order >= len(s) {
				t.Fatalf("step %d: order %d out of range", step, a.Order)
			}
			if seen[a.Order] {
				t.Fatalf("step %d: duplicate order %d", step, a.Order)
			}
			seen[a.Order] = true
		}
	}
}

func TestRemoveInsertAt(t *testing.T) {
	s := []rec{{id: 1}, {id: 2}, {id: 3}}

	s2 := Remove(s, 1)
	if got := ids(s2); len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("Remove = %v", got)
	}

	s3 := InsertAt(s2, 1, rec{id: 9})
	if got := ids(s3); len(got) != 3 || got[1] != 9 {
		t.Fatalf("InsertAt = %v", got)
	}

	// insert past the end appends
	s4 := InsertAt(s2, 10, rec{id: 8})
	if got := ids(s4); got[len(got)-1] != 8 {
		t.Fatalf("InsertAt past end = %v", got)
	}

	if got := Remove(s, 5); len(got) != 3 {
		t.Fatalf("Remove out of range should be a no-op, got %v", ids(got))
	}
}

func TestIndexOf(t *testing.T) {
	s := []rec{{id: 5}, {id: 7}}
	if got := IndexOf(s, recID, 7); got != 1 {
		t.Errorf("IndexOf(7) = %d, want 1", got)
	}
	if got := IndexOf(s, recID, 99); got != -1 {
		t.Errorf("IndexOf(99) = %d, want -1", got)
	}
}

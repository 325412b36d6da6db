package layout

import "testing"

func TestRange_BoundedClampsAfterIncrement(t *testing.T) {
	r := Bounded(0, 3)
	r.Resolve(10)
	for range 20 {
		r.Increment()
	}
	if r.Min != 7 {
		t.Fatalf("Min = %d after scrolling past the end, want 7", r.Min)
	}
	if start, end := r.Window(10); start != 7 || end != 10 {
		t.Errorf("Window = [%d, %d), want [7, 10)", start, end)
	}
	if f := r.Fraction(); f != 1 {
		t.Errorf("Fraction() = %v, want 1", f)
	}

	r.Decrement()
	if r.Min != 6 {
		t.Errorf("Min = %d after Decrement, want 6", r.Min)
	}
	for range 20 {
		r.Decrement()
	}
	if r.Min != 0 {
		t.Errorf("Min = %d after scrolling past the start, want 0", r.Min)
	}
}

func TestRange_Kinds(t *testing.T) {
	tests := []struct {
		name      string
		r         Range
		total     int
		wantMin   int
		wantStart int
		wantEnd   int
	}{
		{"all", AllItems(), 5, 0, 0, 5},
		{"all ignores min", Range{Kind: RangeAll, Min: 3}, 5, 0, 0, 5},
		{"bounded", Bounded(2, 3), 10, 2, 2, 5},
		{"bounded past end", Bounded(9, 3), 10, 7, 7, 10},
		{"bounded longer than total", Bounded(4, 20), 10, 0, 0, 10},
		{"capped past end", Capped(30, 3), 10, 9, 9, 10},
		{"capped partial", Capped(8, 3), 10, 8, 8, 10},
		{"stepped snaps", Stepped(5, 3), 10, 3, 3, 6},
		{"stepped last page", Stepped(100, 3), 10, 9, 9, 10},
		{"negative min", Bounded(-4, 2), 10, 0, 0, 2},
		{"empty", Bounded(3, 2), 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.r
			r.Resolve(tt.total)
			if r.Min != tt.wantMin {
				t.Errorf("Min = %d, want %d", r.Min, tt.wantMin)
			}
			start, end := r.Window(tt.total)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Window = [%d, %d), want [%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
			if r.Total() != tt.total {
				t.Errorf("Total() = %d, want %d", r.Total(), tt.total)
			}
		})
	}
}

func TestRange_Stepped(t *testing.T) {
	r := Stepped(0, 3)
	r.Resolve(10)
	if r.Pages() != 4 {
		t.Errorf("Pages() = %d, want 4", r.Pages())
	}

	var mins []int
	for range 5 {
		r.Increment()
		mins = append(mins, r.Min)
	}
	want := []int{3, 6, 9, 9, 9}
	for i := range want {
		if mins[i] != want[i] {
			t.Fatalf("Min sequence = %v, want %v", mins, want)
		}
	}
	if r.Page() != 3 {
		t.Errorf("Page() = %d, want 3", r.Page())
	}

	r.SetFraction(0.5)
	if r.Min != 6 {
		t.Errorf("SetFraction(0.5): Min = %d, want 6", r.Min)
	}
	r.SetFraction(0)
	if r.Min != 0 {
		t.Errorf("SetFraction(0): Min = %d, want 0", r.Min)
	}
}

func TestRange_Fraction(t *testing.T) {
	r := Bounded(0, 3)
	r.Resolve(10)
	r.SetFraction(0.5)
	if r.Min != 4 {
		t.Errorf("SetFraction(0.5): Min = %d, want 4", r.Min)
	}
	r.SetFraction(2)
	if r.Min != 7 {
		t.Errorf("SetFraction(2): Min = %d, want 7", r.Min)
	}

	// A window that shows everything cannot scroll.
	all := Bounded(0, 10)
	all.Resolve(4)
	if f := all.Fraction(); f != 0 {
		t.Errorf("Fraction() = %v, want 0", f)
	}
	if all.Pages() != 1 {
		t.Errorf("Pages() = %d, want 1", all.Pages())
	}
}

func TestRange_ShrinkingTotal(t *testing.T) {
	r := Capped(0, 2)
	r.Resolve(10)
	for range 8 {
		r.Increment()
	}
	if r.Min != 8 {
		t.Fatalf("Min = %d, want 8", r.Min)
	}
	r.Resolve(4)
	if r.Min != 3 {
		t.Errorf("Min = %d after the child count shrank, want 3", r.Min)
	}
}

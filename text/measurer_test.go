package text

import (
	"math"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/gogpu/layout"
	"github.com/gogpu/layout/cache"
	"golang.org/x/image/font/gofont/goregular"
)

func TestNewMeasurersRejectEmptyData(t *testing.T) {
	if _, err := NewFaceMeasurer(nil); err != ErrEmptyFontData {
		t.Errorf("NewFaceMeasurer(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewShapingMeasurer(nil); err != ErrEmptyFontData {
		t.Errorf("NewShapingMeasurer(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFaceMeasurer([]byte("not a font")); err == nil {
		t.Error("NewFaceMeasurer(garbage) should fail")
	}
	if _, err := NewShapingMeasurer([]byte("not a font")); err == nil {
		t.Error("NewShapingMeasurer(garbage) should fail")
	}
}

func measurers(t *testing.T) map[string]Measurer {
	t.Helper()
	face, err := NewFaceMeasurer(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFaceMeasurer: %v", err)
	}
	t.Cleanup(func() { _ = face.Close() })
	return map[string]Measurer{
		"face":    face,
		"shaping": DefaultShapingMeasurer(),
	}
}

func TestMeasureScalesWithSize(t *testing.T) {
	for name, m := range measurers(t) {
		t.Run(name, func(t *testing.T) {
			small := m.Measure("Hello, world", 12)
			large := m.Measure("Hello, world", 24)
			if small.X <= 0 || small.Y <= 0 {
				t.Fatalf("Measure at 12px = %v, want positive", small)
			}
			ratio := large.X / small.X
			if math.Abs(ratio-2) > 0.1 {
				t.Errorf("width ratio 24px/12px = %f, want about 2", ratio)
			}
			ratio = large.Y / small.Y
			if math.Abs(ratio-2) > 0.1 {
				t.Errorf("height ratio 24px/12px = %f, want about 2", ratio)
			}
		})
	}
}

func TestMeasureLines(t *testing.T) {
	for name, m := range measurers(t) {
		t.Run(name, func(t *testing.T) {
			one := m.Measure("short", 16)
			two := m.Measure("short\na longer second line", 16)
			wide := m.Measure("a longer second line", 16)

			if math.Abs(two.Y-2*one.Y) > 1e-9 {
				t.Errorf("two-line height = %f, want %f", two.Y, 2*one.Y)
			}
			if math.Abs(two.X-wide.X) > 1e-9 {
				t.Errorf("two-line width = %f, want widest line %f", two.X, wide.X)
			}
		})
	}
}

func TestMeasureEdgeCases(t *testing.T) {
	for name, m := range measurers(t) {
		t.Run(name, func(t *testing.T) {
			empty := m.Measure("", 16)
			if empty.X != 0 {
				t.Errorf("empty width = %f, want 0", empty.X)
			}
			if empty.Y <= 0 {
				t.Errorf("empty height = %f, want one line", empty.Y)
			}
			for _, size := range []float64{0, -4, math.NaN()} {
				if got := m.Measure("text", size); got != (layout.Vec2{}) {
					t.Errorf("Measure at size %v = %v, want zero", size, got)
				}
			}
		})
	}
}

func TestShapingCloseToFaceWidth(t *testing.T) {
	ms := measurers(t)
	face := ms["face"].Measure("The quick brown fox", 20)
	shaped := ms["shaping"].Measure("The quick brown fox", 20)
	if rel := math.Abs(face.X-shaped.X) / face.X; rel > 0.1 {
		t.Errorf("shaped width %f differs from face width %f by %.0f%%", shaped.X, face.X, rel*100)
	}
}

func TestMeasureConcurrent(t *testing.T) {
	for name, m := range measurers(t) {
		t.Run(name, func(t *testing.T) {
			want := m.Measure("concurrent", 18)
			var wg sync.WaitGroup
			for range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for range 50 {
						if got := m.Measure("concurrent", 18); got != want {
							t.Errorf("Measure = %v, want %v", got, want)
							return
						}
					}
				}()
			}
			wg.Wait()
		})
	}
}

func TestBidiRuns(t *testing.T) {
	if runs := bidiRuns(""); len(runs) != 0 {
		t.Errorf("bidiRuns(\"\") = %v, want none", runs)
	}

	runs := bidiRuns("Hello")
	if len(runs) != 1 || runs[0].text != "Hello" || runs[0].dir != di.DirectionLTR {
		t.Fatalf("bidiRuns(Hello) = %+v, want one LTR run", runs)
	}

	mixed := "abc שלום"
	runs = bidiRuns(mixed)
	total := 0
	rtl := false
	for _, r := range runs {
		total += utf8.RuneCountInString(r.text)
		if r.dir == di.DirectionRTL {
			rtl = true
		}
	}
	if total != utf8.RuneCountInString(mixed) {
		t.Errorf("runs cover %d runes, want %d", total, utf8.RuneCountInString(mixed))
	}
	if !rtl {
		t.Errorf("bidiRuns(%q) = %+v, want a right-to-left run", mixed, runs)
	}
}

func TestDetectScript(t *testing.T) {
	tests := []struct {
		name string
		text string
		want language.Script
	}{
		{"latin", "abc", language.Latin},
		{"leading space", "  abc", language.Latin},
		{"hebrew", "של", language.Hebrew},
		{"blank", "   ", language.Latin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectScript([]rune(tt.text)); got != tt.want {
				t.Errorf("detectScript(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCached(t *testing.T) {
	calls := 0
	inner := MeasurerFunc(func(s string, size float64) layout.Vec2 {
		calls++
		return layout.Vec2{X: float64(len(s)) * size / 2, Y: size}
	})
	c := NewCached(inner, cache.WithShards(1), cache.WithCapacity(4))

	a := c.Measure("abcd", 10)
	b := c.Measure("abcd", 10)
	if a != b || a != (layout.Vec2{X: 20, Y: 10}) {
		t.Errorf("Measure = %v then %v, want (20,10) twice", a, b)
	}
	c.Measure("abcd", 12)
	if calls != 2 {
		t.Errorf("inner called %d times, want 2", calls)
	}

	st := c.Stats()
	if st.Hits != 1 || st.Misses != 2 || st.Len != 2 {
		t.Errorf("Stats = %+v, want 1 hit, 2 misses, 2 entries", st)
	}

	c.Purge()
	c.Measure("abcd", 10)
	if calls != 3 {
		t.Errorf("inner called %d times after Purge, want 3", calls)
	}
}

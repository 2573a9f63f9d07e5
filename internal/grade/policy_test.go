package grade

import (
	"math"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		colour  string
		grade   Grade
		passes  bool
		verdict Verdict
		message string
	}{
		{
			name:    "white at grade 0",
			colour:  "#ffffff",
			grade:   0,
			passes:  true,
			verdict: Pass,
			message: "Luminance between [1, 1] (actual: 1)",
		},
		{
			name:    "black at grade 100",
			colour:  "#000000",
			grade:   100,
			passes:  true,
			verdict: Pass,
			message: "Luminance between [0, 0] (actual: 0)",
		},
		{
			name:    "near black rounds to zero",
			colour:  "#010101",
			grade:   100,
			passes:  true,
			verdict: Pass,
			message: "Luminance between [0, 0] (actual: 0)",
		},
		{
			name:    "positive luminance at grade 100",
			colour:  "#030303",
			grade:   100,
			verdict: TooBright,
			message: "Luminance above [0] (actual: 0.001)",
		},
		{
			name:    "seed blue 50",
			colour:  "#1b6ef3",
			grade:   50,
			passes:  true,
			verdict: Pass,
			message: "Luminance between [0.175, 0.183] (actual: 0.179)",
		},
		{
			name:    "too dark for grade 50",
			colour:  "#123456",
			grade:   50,
			verdict: TooDark,
			message: "Luminance below [0.175] (actual: 0.033)",
		},
		{
			name:    "too bright for grade 5",
			colour:  "#ffffff",
			grade:   5,
			verdict: TooBright,
			message: "Luminance above [0.93] (actual: 1)",
		},
		{
			name:    "unparsable colour",
			colour:  "blue",
			grade:   50,
			verdict: TooDark,
			message: "Luminance below [0.175] (actual: -1)",
		},
		{
			name:    "unknown grade",
			colour:  "#ffffff",
			grade:   42,
			verdict: UnknownGrade,
			message: "No bucket for grade 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.colour, tt.grade)
			if got.Passes != tt.passes {
				t.Errorf("Check(%q, %d).Passes = %v, want %v", tt.colour, tt.grade, got.Passes, tt.passes)
			}
			if got.Verdict != tt.verdict {
				t.Errorf("Check(%q, %d).Verdict = %v, want %v", tt.colour, tt.grade, got.Verdict, tt.verdict)
			}
			if got.Message != tt.message {
				t.Errorf("Check(%q, %d).Message = %q, want %q", tt.colour, tt.grade, got.Message, tt.message)
			}
		})
	}
}

func TestClassifyRoundsBeforeComparing(t *testing.T) {
	got := Classify(0.1745, 50)
	if !got.Passes {
		t.Errorf("Classify(0.1745, 50) = %+v, want pass", got)
	}
	if got.Actual != 0.175 {
		t.Errorf("Actual = %v, want 0.175", got.Actual)
	}

	got = Classify(0.1744, 50)
	if got.Passes || got.Verdict != TooDark {
		t.Errorf("Classify(0.1744, 50) = %+v, want too dark", got)
	}

	got = Classify(0.9995, 0)
	if !got.Passes {
		t.Errorf("Classify(0.9995, 0) = %+v, want pass", got)
	}
}

func TestClassifyEqualBoundsBranching(t *testing.T) {
	// Grade 0 has min == max == 1; anything under it is reported against min.
	got := Classify(0.99, 0)
	if got.Verdict != TooDark || got.Message != "Luminance below [1] (actual: 0.99)" {
		t.Errorf("Classify(0.99, 0) = %+v", got)
	}
}

func TestClassifyNaN(t *testing.T) {
	got := Classify(math.NaN(), 50)
	if got.Passes || got.Verdict != UnknownGrade {
		t.Errorf("Classify(NaN, 50) = %+v, want unknown", got)
	}
}

func TestBounds(t *testing.T) {
	for _, g := range Grades() {
		b, ok := Bounds(g)
		if !ok {
			t.Errorf("Bounds(%d) missing", g)
			continue
		}
		if b.Min > b.Max {
			t.Errorf("Bounds(%d) = %v, min above max", g, b)
		}
	}

	if _, ok := Bounds(15); ok {
		t.Error("Bounds(15) should not exist")
	}
}

func TestGradesAreAscendingAndCopied(t *testing.T) {
	gs := Grades()
	if len(gs) != 12 {
		t.Fatalf("len(Grades()) = %d, want 12", len(gs))
	}
	for i := 1; i < len(gs); i++ {
		if gs[i] <= gs[i-1] {
			t.Errorf("Grades() not ascending at %d: %v", i, gs)
		}
	}

	gs[0] = 99
	if Grades()[0] != 0 {
		t.Error("Grades() exposed its backing array")
	}
}

func TestParse(t *testing.T) {
	g, err := Parse("50")
	if err != nil || g != 50 {
		t.Errorf("Parse(50) = %d, %v", g, err)
	}
	if _, err := Parse("fifty"); err == nil {
		t.Error("Parse(fifty) should fail")
	}
}

func TestVerdictString(t *testing.T) {
	tests := map[Verdict]string{
		Pass:         "pass",
		TooBright:    "too-bright",
		TooDark:      "too-dark",
		UnknownGrade: "unknown-grade",
		Verdict(99):  "unknown",
	}
	for v, want := range tests {
		if got := v.String(); got != want {
			t.Errorf("Verdict(%d).String() = %q, want %q", int(v), got, want)
		}
	}
}

package palette

import (
	"reflect"
	"testing"

	"github.com/jmylchreest/tonal/internal/grade"
)

func TestSetColor(t *testing.T) {
	seed := Seed()

	got, ok := SetColor(seed, Blue, 50, "#123456")
	if !ok {
		t.Fatal("SetColor(Blue, 50) did not update")
	}

	blue, _ := got.Scale(Blue)
	if c, _ := blue.Color(50); c != "#123456" {
		t.Errorf("Blue/50 = %q, want #123456", c)
	}

	// Everything else is untouched.
	want := Seed()
	want[0].Grades[6].Color = "#123456"
	if !reflect.DeepEqual(got, want) {
		t.Error("SetColor changed entries other than Blue/50")
	}

	// The argument is never mutated.
	if !reflect.DeepEqual(seed, Seed()) {
		t.Error("SetColor mutated its input palette")
	}
}

func TestSetColorNoMatch(t *testing.T) {
	tests := []struct {
		name  string
		scale string
		grade grade.Grade
	}{
		{name: "unknown scale", scale: "Purple", grade: 50},
		{name: "unknown grade", scale: Blue, grade: 55},
		{name: "case sensitive name", scale: "blue", grade: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Seed()
			got, ok := SetColor(in, tt.scale, tt.grade, "#123456")
			if ok {
				t.Fatal("SetColor reported an update")
			}
			if !reflect.DeepEqual(got, in) {
				t.Error("unchanged palette should be deep-equal to input")
			}
			if len(got) > 0 && &got[0] == &in[0] {
				t.Error("unchanged palette should be a copy, not the input")
			}
		})
	}
}

func TestSetColorFirstMatchWins(t *testing.T) {
	p := Palette{
		{Name: "A", Grades: []Entry{{Color: "#111111", Grade: 50}, {Color: "#222222", Grade: 50}}},
		{Name: "B", Grades: []Entry{{Color: "#333333", Grade: 50}}},
		{Name: "A", Grades: []Entry{{Color: "#444444", Grade: 50}}},
	}

	got, ok := SetColor(p, "A", 50, "#ffffff")
	if !ok {
		t.Fatal("expected update")
	}

	want := []string{"#ffffff", "#222222", "#333333", "#444444"}
	gotColours := []string{got[0].Grades[0].Color, got[0].Grades[1].Color, got[1].Grades[0].Color, got[2].Grades[0].Color}
	if !reflect.DeepEqual(gotColours, want) {
		t.Errorf("colours = %v, want %v", gotColours, want)
	}

	// Other scales with the same grade are not touched.
	got, _ = SetColor(p, "B", 50, "#ffffff")
	if got[0].Grades[0].Color != "#111111" || got[1].Grades[0].Color != "#ffffff" {
		t.Errorf("SetColor(B) = %+v", got)
	}
}

func TestSeed(t *testing.T) {
	p := Seed()

	wantNames := []string{Blue, Red, Green, Yellow, Grey}
	if !reflect.DeepEqual(p.Names(), wantNames) {
		t.Errorf("Names() = %v, want %v", p.Names(), wantNames)
	}

	for _, s := range p {
		if len(s.Grades) != len(grade.Grades()) {
			t.Errorf("%s has %d grades, want %d", s.Name, len(s.Grades), len(grade.Grades()))
		}
		for i, g := range grade.Grades() {
			if s.Grades[i].Grade != g {
				t.Errorf("%s grade %d = %d, want %d", s.Name, i, s.Grades[i].Grade, g)
			}
		}
	}

	// Seed returns independent copies.
	p[0].Grades[0].Color = "#123456"
	if Seed()[0].Grades[0].Color != "#ffffff" {
		t.Error("Seed() shares memory between calls")
	}
}

func TestSeedColoursMeetTheirGrades(t *testing.T) {
	for _, s := range Seed() {
		for _, e := range s.Grades {
			if r := grade.Check(e.Color, e.Grade); !r.Passes {
				t.Errorf("%s %d (%s): %s", s.Name, e.Grade, e.Color, r.Message)
			}
		}
	}
}

func TestSeedScale(t *testing.T) {
	s, ok := SeedScale(Grey)
	if !ok || s.Name != Grey {
		t.Fatalf("SeedScale(Grey) = %+v, %v", s, ok)
	}
	if _, ok := SeedScale("Purple"); ok {
		t.Error("SeedScale(Purple) should not exist")
	}
}

func TestCloneNil(t *testing.T) {
	var p Palette
	if p.Clone() != nil {
		t.Error("Clone of nil palette should be nil")
	}
}

func TestCloneKeepsNilGrades(t *testing.T) {
	p := Palette{{Name: "Purple"}, {Name: "Teal", Grades: []Entry{}}}

	got := p.Clone()
	if !reflect.DeepEqual(got, p) {
		t.Errorf("Clone() = %#v, want %#v", got, p)
	}

	next, ok := SetColor(p, "Purple", 50, "#6a1b9a")
	if ok {
		t.Error("SetColor() should not match a scale without grades")
	}
	if !reflect.DeepEqual(next, p) {
		t.Errorf("SetColor() without a match = %#v, want %#v", next, p)
	}
}

func TestStore(t *testing.T) {
	s := NewStore(Seed())
	before := s.Current()

	if !s.Apply(Red, 60, "#aa0000") {
		t.Fatal("Apply(Red, 60) did not update")
	}
	red, _ := s.Current().Scale(Red)
	if c, _ := red.Color(60); c != "#aa0000" {
		t.Errorf("Red/60 = %q, want #aa0000", c)
	}

	// The previous value is still intact.
	red, _ = before.Scale(Red)
	if c, _ := red.Color(60); c != "#b3261e" {
		t.Errorf("previous palette changed: Red/60 = %q", c)
	}

	current := s.Current()
	if s.Apply("Purple", 60, "#aa0000") {
		t.Error("Apply(Purple) reported an update")
	}
	if !reflect.DeepEqual(s.Current(), current) {
		t.Error("failed Apply changed the current palette")
	}

	s.Replace(nil)
	if s.Current() != nil {
		t.Error("Replace(nil) not applied")
	}
}

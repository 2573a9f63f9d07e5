package history

import (
	"encoding/base64"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/palette"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	reordered := palette.Seed()
	reordered[0], reordered[4] = reordered[4], reordered[0]
	edited, _ := palette.SetColor(palette.Seed(), palette.Green, 30, "#abc")

	tests := []struct {
		name string
		p    palette.Palette
	}{
		{name: "seed", p: palette.Seed()},
		{name: "reordered", p: reordered},
		{name: "edited", p: edited},
		{name: "empty", p: palette.Palette{}},
		{name: "custom scale", p: palette.Palette{{Name: "Purple", Grades: []palette.Entry{{Color: "#6a1b9a", Grade: 70}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := Encode(tt.p)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if strings.ContainsAny(token, "+/= ") {
				t.Errorf("Encode() = %q, not URL-safe", token)
			}

			got, err := Decode(token)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.p) {
				t.Errorf("Decode(Encode(p)) = %+v, want %+v", got, tt.p)
			}
		})
	}
}

func TestEncodeNil(t *testing.T) {
	token, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil) error = %v", err)
	}
	got, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Decode(Encode(nil)) = %#v, want empty palette", got)
	}
}

func TestEncodeNilGrades(t *testing.T) {
	p := palette.Palette{{Name: "Purple"}}

	token, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "Purple" || len(got[0].Grades) != 0 {
		t.Errorf("Decode(Encode(p)) = %#v, want one empty Purple scale", got)
	}
	if p[0].Grades != nil {
		t.Error("Encode() modified its input")
	}
}

func TestDecodeStandardBase64(t *testing.T) {
	raw := `[{"scale":"Blue","grades":[{"color":"#ffffff","grade":0},{"color":"#1b6ef3","grade":50}]}]`
	want := palette.Palette{{Name: "Blue", Grades: []palette.Entry{{Color: "#ffffff", Grade: 0}, {Color: "#1b6ef3", Grade: 50}}}}

	for name, token := range map[string]string{
		"padded":   base64.StdEncoding.EncodeToString([]byte(raw)),
		"unpadded": base64.RawStdEncoding.EncodeToString([]byte(raw)),
		"url safe": base64.URLEncoding.EncodeToString([]byte(raw)),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(token)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Decode() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestDecodeQueryMangledPlus(t *testing.T) {
	// The name is chosen so the standard encoding contains both "+" and "/".
	raw := `[{"scale":"?>?~~~","grades":[]}]`
	token := base64.StdEncoding.EncodeToString([]byte(raw))
	if !strings.Contains(token, "+") {
		t.Fatalf("test token %q has no '+'", token)
	}

	got, err := Decode(strings.ReplaceAll(token, "+", " "))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got[0].Name != "?>?~~~" {
		t.Errorf("Name = %q", got[0].Name)
	}
}

func TestDecodeErrors(t *testing.T) {
	encode := func(s string) string {
		return base64.RawURLEncoding.EncodeToString([]byte(s))
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not base64", token: "!!!not-base64!!!"},
		{name: "not json", token: encode("hello")},
		{name: "object instead of list", token: encode(`{"scale":"Blue"}`)},
		{name: "null", token: encode("null")},
		{name: "missing scale name", token: encode(`[{"grades":[]}]`)},
		{name: "missing grades", token: encode(`[{"scale":"Blue"}]`)},
		{name: "missing grade", token: encode(`[{"scale":"Blue","grades":[{"color":"#fff"}]}]`)},
		{name: "missing colour", token: encode(`[{"scale":"Blue","grades":[{"grade":5}]}]`)},
		{name: "fractional grade", token: encode(`[{"scale":"Blue","grades":[{"color":"#fff","grade":5.5}]}]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.token)
			if err == nil {
				t.Fatal("Decode() succeeded, want error")
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Errorf("Decode() error = %T, want *DecodeError", err)
			}
		})
	}
}

func TestDecodeZeroValuesArePresent(t *testing.T) {
	token := base64.RawURLEncoding.EncodeToString([]byte(`[{"scale":"Blue","grades":[{"color":"#ffffff","grade":0}]}]`))
	got, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got[0].Grades[0].Grade != 0 {
		t.Errorf("grade = %d, want 0", got[0].Grades[0].Grade)
	}
}

func TestReconcile(t *testing.T) {
	seed := palette.Seed()
	blue, _ := seed.Scale(palette.Blue)
	red, _ := seed.Scale(palette.Red)
	grey, _ := seed.Scale(palette.Grey)

	t.Run("appends missing default", func(t *testing.T) {
		loaded := palette.Palette{blue, red}
		got := Reconcile(loaded, []string{palette.Grey})

		want := palette.Palette{blue, red, grey}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Reconcile() names = %v, want %v", got.Names(), want.Names())
		}
		if len(loaded) != 2 {
			t.Error("Reconcile() modified its input")
		}
	})

	t.Run("keeps present scale untouched", func(t *testing.T) {
		custom := palette.Scale{Name: palette.Grey, Grades: []palette.Entry{{Color: "#777777", Grade: 50}}}
		got := Reconcile(palette.Palette{custom}, []string{palette.Grey})
		if !reflect.DeepEqual(got, palette.Palette{custom}) {
			t.Errorf("Reconcile() = %+v", got)
		}
	})

	t.Run("follows required order without duplicates", func(t *testing.T) {
		got := Reconcile(palette.Palette{blue}, []string{palette.Yellow, palette.Grey, palette.Yellow, palette.Blue})
		want := []string{palette.Blue, palette.Yellow, palette.Grey}
		if !reflect.DeepEqual(got.Names(), want) {
			t.Errorf("Reconcile() names = %v, want %v", got.Names(), want)
		}
	})

	t.Run("skips names without a default", func(t *testing.T) {
		got := Reconcile(palette.Palette{blue}, []string{"Purple"})
		if !reflect.DeepEqual(got.Names(), []string{palette.Blue}) {
			t.Errorf("Reconcile() names = %v", got.Names())
		}
	})
}

func TestInitialPalette(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		got, err := InitialPalette("")
		if err != nil {
			t.Fatalf("InitialPalette() error = %v", err)
		}
		if !reflect.DeepEqual(got, palette.Seed()) {
			t.Error("InitialPalette(\"\") should be the seed palette")
		}
	})

	t.Run("token without grey", func(t *testing.T) {
		blue, _ := palette.SeedScale(palette.Blue)
		blue.Grades[6].Color = "#123456"
		token, _ := Encode(palette.Palette{blue})

		got, err := InitialPalette(token)
		if err != nil {
			t.Fatalf("InitialPalette() error = %v", err)
		}
		if !reflect.DeepEqual(got.Names(), []string{palette.Blue, palette.Grey}) {
			t.Errorf("names = %v, want [Blue Grey]", got.Names())
		}
		if c, _ := got[0].Color(50); c != "#123456" {
			t.Errorf("Blue/50 = %q, want #123456", c)
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		got, err := InitialPalette("%%%")
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("InitialPalette() error = %v, want *DecodeError", err)
		}
		if !reflect.DeepEqual(got, palette.Seed()) {
			t.Error("malformed token should fall back to the seed palette")
		}
	})
}

func TestTokenFromQuery(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"", ""},
		{"?config=abc", "abc"},
		{"config=abc", "abc"},
		{"?data=xyz", "xyz"},
		{"?data=xyz&config=abc", "abc"},
		{"?config=&data=xyz", "xyz"},
		{"?other=1", ""},
	}

	for _, tt := range tests {
		if got := TokenFromQuery(tt.query); got != tt.want {
			t.Errorf("TokenFromQuery(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestLocationRoundTrip(t *testing.T) {
	token, _ := Encode(palette.Seed())
	loc := Location(token)
	if !strings.HasPrefix(loc, "?config=") {
		t.Errorf("Location() = %q", loc)
	}

	got, err := InitialPalette(TokenFromQuery(loc))
	if err != nil {
		t.Fatalf("InitialPalette() error = %v", err)
	}
	if !reflect.DeepEqual(got, palette.Seed()) {
		t.Error("reloading the location did not reconstruct the palette")
	}
}

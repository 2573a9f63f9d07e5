// Package history encodes palettes into shareable URL tokens and keeps the
// current palette in step with a navigation history.
package history

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jmylchreest/tonal/internal/grade"
	"github.com/jmylchreest/tonal/internal/palette"
	"github.com/jmylchreest/tonal/internal/validation"
)

const (
	// QueryParam is the query parameter that carries a palette token.
	QueryParam = "config"
	// LegacyQueryParam is accepted when QueryParam is absent.
	LegacyQueryParam = "data"
)

// RequiredScales are backfilled from the seed set when a decoded palette
// lacks them.
var RequiredScales = []string{palette.Grey}

// validate checks decoded tokens for required fields.
var validate = validation.New()

// DecodeError is returned when a token cannot be turned back into a palette.
type DecodeError struct {
	Err error
}

// Error implements error.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid palette token: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// wireEntry and wireScale mirror palette.Entry and palette.Scale with pointer
// fields so that missing keys can be told apart from zero values.
type wireEntry struct {
	Color *string      `json:"color" validate:"required"`
	Grade *grade.Grade `json:"grade" validate:"required"`
}

type wireScale struct {
	Scale  *string     `json:"scale" validate:"required"`
	Grades []wireEntry `json:"grades" validate:"required,dive"`
}

// Encode serialises p as JSON and encodes it as unpadded URL-safe base64.
// Nil palettes and nil grade lists are written as empty arrays so the token
// always decodes.
func Encode(p palette.Palette) (string, error) {
	if p == nil {
		p = palette.Palette{}
	}
	for i := range p {
		if p[i].Grades == nil {
			p = p.Clone()
			for j := range p {
				if p[j].Grades == nil {
					p[j].Grades = []palette.Entry{}
				}
			}
			break
		}
	}

	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal palette: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode reverses Encode. Standard base64 tokens, padded or not, are also
// accepted, as are tokens whose '+' was turned into a space by query decoding.
func Decode(token string) (palette.Palette, error) {
	data, err := decodeBase64(token)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	var scales []wireScale
	if err := json.Unmarshal(data, &scales); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if scales == nil {
		return nil, &DecodeError{Err: errors.New("token does not contain a palette")}
	}

	out := make(palette.Palette, len(scales))
	for i := range scales {
		if err := validate.Struct(&scales[i]); err != nil {
			return nil, &DecodeError{Err: fmt.Errorf("scale %d: %w", i, err)}
		}

		s := palette.Scale{
			Name:   *scales[i].Scale,
			Grades: make([]palette.Entry, len(scales[i].Grades)),
		}
		for j, e := range scales[i].Grades {
			s.Grades[j] = palette.Entry{Color: *e.Color, Grade: *e.Grade}
		}
		out[i] = s
	}

	return out, nil
}

func decodeBase64(token string) ([]byte, error) {
	token = strings.ReplaceAll(strings.TrimSpace(token), " ", "+")
	token = strings.TrimRight(token, "=")
	if token == "" {
		return nil, errors.New("empty token")
	}

	enc := base64.RawStdEncoding
	if strings.ContainsAny(token, "-_") {
		enc = base64.RawURLEncoding
	}
	return enc.DecodeString(token)
}

// Reconcile appends the seed scale for every name in required that loaded does
// not already contain. Loaded scales keep their order and come first; names
// the seed set does not define are skipped.
func Reconcile(loaded palette.Palette, required []string) palette.Palette {
	out := loaded.Clone()
	for _, name := range required {
		if _, ok := out.Scale(name); ok {
			continue
		}
		if s, ok := palette.SeedScale(name); ok {
			out = append(out, s)
		}
	}
	return out
}

// InitialPalette returns the palette described by token, reconciled against
// RequiredScales. An empty token yields the seed palette. A malformed token
// also yields the seed palette, together with the *DecodeError so the caller
// can report it.
func InitialPalette(token string) (palette.Palette, error) {
	if token == "" {
		return palette.Seed(), nil
	}

	p, err := Decode(token)
	if err != nil {
		return palette.Seed(), err
	}
	return Reconcile(p, RequiredScales), nil
}

// TokenFromQuery extracts the palette token from a raw query string, with or
// without the leading '?'. QueryParam takes precedence over LegacyQueryParam.
func TokenFromQuery(rawQuery string) string {
	// ParseQuery keeps every pair it could parse, so the error is not fatal.
	values, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if token := values.Get(QueryParam); token != "" {
		return token
	}
	return values.Get(LegacyQueryParam)
}

// Location returns the addressable location for a token.
func Location(token string) string {
	return "?" + QueryParam + "=" + token
}

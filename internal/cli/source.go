package cli

import (
	"fmt"
	"net/url"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tonal/internal/history"
	"github.com/jmylchreest/tonal/internal/palette"
	"github.com/spf13/pflag"
)

// paletteSource holds the flags that select which palette a command reads.
type paletteSource struct {
	token string
	link  string
}

// register adds --config and --url to fs.
func (s *paletteSource) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.token, "config", "", "palette token, as in ?config=<token> (default: built-in palette)")
	fs.StringVar(&s.link, "url", "", "shared link or query string to read the palette token from")
}

// resolveToken returns the token named by the flags. --config wins over --url.
func (s *paletteSource) resolveToken() (string, error) {
	if s.token != "" {
		return s.token, nil
	}
	if s.link == "" {
		return "", nil
	}

	u, err := url.Parse(s.link)
	if err != nil {
		return "", fmt.Errorf("invalid --url: %w", err)
	}
	return history.TokenFromQuery(u.RawQuery), nil
}

// load returns the selected palette. A malformed token is an error here: the
// user supplied it explicitly and a silent fallback would hide the mistake.
func (s *paletteSource) load(logger hclog.Logger) (palette.Palette, error) {
	token, err := s.resolveToken()
	if err != nil {
		return nil, err
	}
	if token == "" {
		logger.Debug("using built-in palette")
	}

	p, err := history.InitialPalette(token)
	if err != nil {
		return nil, fmt.Errorf("failed to load palette: %w", err)
	}

	logger.Debug("loaded palette", "scales", p.Names())
	return p, nil
}

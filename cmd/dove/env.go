package main

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/dove"
)

// EnvPrefix prefixes every environment variable read by dove.
const EnvPrefix = "DOVE_"

// Env holds the DOVE_* environment variables.
type Env struct {
	Input    string `env:"INPUT"`
	InputURL string `env:"INPUT_URL"`
	GistURL  string `env:"GIST_URL"`
	Out      string `env:"OUT"`
	Static   string `env:"STATIC"`
	Theme    string `env:"THEME"`
	ThemeDir string `env:"THEME_DIR"`
	BasePath string `env:"BASE_PATH"`

	NoIntranet               Switch `env:"NO_INTRANET"`
	GenerateIntermediatePage Switch `env:"GENERATE_INTERMEDIATE_PAGE"`

	ColorScheme  string `env:"COLOR_SCHEME"`
	Title        string `env:"TITLE"`
	Description  string `env:"DESCRIPTION"`
	BuildVersion string `env:"BUILD_VERSION"`

	IconDir     string  `env:"ICON_DIR"`
	IconThreads int     `env:"ICON_THREADS"`
	IconRPS     float64 `env:"ICON_RPS"`

	GithubToken string `env:"GITHUB_TOKEN"`
	AuthScheme  string `env:"AUTH_SCHEME"`
}

// ParseEnv reads the DOVE_* variables from environ, given in os.Environ
// form.
func ParseEnv(environ []string) (*Env, error) {
	e, err := env.ParseAsWithOptions[Env](env.Options{
		Prefix:      EnvPrefix,
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return nil, dove.Errorf(dove.EINVALID, "invalid environment: %s", err)
	}
	return &e, nil
}

// Switch is a boolean environment variable that remembers whether it was
// set at all.
type Switch uint8

// Switch states.
const (
	SwitchUnset Switch = iota
	SwitchOff
	SwitchOn
)

// UnmarshalText accepts 1, true, on, yes and y as on. Anything else is off.
func (s *Switch) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "1", "true", "on", "yes", "y":
		*s = SwitchOn
	default:
		*s = SwitchOff
	}
	return nil
}

// Or returns the switch value, or def when the variable was not set.
func (s Switch) Or(def bool) bool {
	if s == SwitchUnset {
		return def
	}
	return s == SwitchOn
}

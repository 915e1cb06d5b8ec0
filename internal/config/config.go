package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// EnvPrefix prefixes environment overrides, e.g. VANITY_STREAM=true
const EnvPrefix = "vanity"

// Errors
var (
	ErrInvalidColor   = errors.New("color must be one of always, always_ansi, auto, never")
	ErrInvalidWorkers = errors.New("workers must be at least 1")
)

// ColorMode selects how output is colorized
type ColorMode string

const (
	ColorAlways     ColorMode = "always"
	ColorAlwaysANSI ColorMode = "always_ansi"
	ColorAuto       ColorMode = "auto"
	ColorNever      ColorMode = "never"
)

// ParseColorMode validates a --color value
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAlways, ColorAlwaysANSI, ColorAuto, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidColor, s)
	}
}

// Config holds the application configuration
type Config struct {
	Workers int       `mapstructure:"workers"`
	Quiet   bool      `mapstructure:"quiet"`
	Stream  bool      `mapstructure:"stream"`
	Color   ColorMode `mapstructure:"color"`
	Verbose bool      `mapstructure:"verbose"`
	LogFile string    `mapstructure:"log-file"`
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
		Color:   ColorAuto,
	}
}

// Load merges defaults, VANITY_* environment variables and the command's
// flags, in increasing order of precedence, and validates the result.
func Load(cmd *cobra.Command) (*Config, error) {
	defaults := NewConfig()

	v := viper.New()
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("color", string(defaults.Color))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate validates the configuration and normalizes the color mode
func (c *Config) Validate() error {
	mode, err := ParseColorMode(string(c.Color))
	if err != nil {
		return err
	}
	c.Color = mode
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}
	return nil
}

// ResolvePatterns returns the positional patterns, or the lines of stdin
// when none were given.
func (c *Config) ResolvePatterns(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	return ReadPatterns(stdin)
}

// ReadPatterns reads one pattern per line. Blank lines are skipped since an
// empty pattern would match every address.
func ReadPatterns(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read patterns: %w", err)
	}
	return out, nil
}

// IsTerminal reports whether f is an interactive terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

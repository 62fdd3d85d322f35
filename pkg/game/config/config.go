// Package config loads game settings from flags, MINESWEEPER_* environment
// variables and an optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/i18n"
)

// EnvPrefix is prepended to every environment variable, e.g. MINESWEEPER_CUSTOM_ROWS
const EnvPrefix = "MINESWEEPER"

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// ErrInvalid is returned when a loaded setting has an unusable value
var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved game configuration
type Config struct {
	Renderer   string       `mapstructure:"renderer"`
	Difficulty string       `mapstructure:"difficulty"`
	Custom     CustomConfig `mapstructure:"custom"`
	HeatMap    bool         `mapstructure:"heatmap"`
	Seed       uint64       `mapstructure:"seed"`
	Language   string       `mapstructure:"language"`
	Log        LogConfig    `mapstructure:"log"`
}

// CustomConfig holds the board used when the custom difficulty is chosen
type CustomConfig struct {
	Rows  int `mapstructure:"rows"`
	Cols  int `mapstructure:"cols"`
	Mines int `mapstructure:"mines"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// setting ties a viper key to its command line flag and default value.
// The default's type picks the flag type.
type setting struct {
	key       string
	flag      string
	shorthand string
	def       any
	usage     string
}

var settings = []setting{
	{"renderer", "renderer", "r", RendererTUI, "front end: tui or ebiten"},
	{"difficulty", "difficulty", "d", strings.ToLower(difficulty.Easy.Name), "easy, medium, hard or custom"},
	{"custom.rows", "custom-rows", "", 12, "rows of the custom board"},
	{"custom.cols", "custom-cols", "", 12, "columns of the custom board"},
	{"custom.mines", "custom-mines", "", 20, "mines on the custom board"},
	{"heatmap", "heatmap", "", false, "start with the danger heat map shown"},
	{"seed", "seed", "", uint64(0), "mine layout seed, 0 picks a random one"},
	{"language", "language", "l", i18n.DefaultLanguage, "UI language: " + strings.Join(i18n.Languages(), ", ")},
	{"log.level", "log-level", "", "warn", "log level (debug, info, warn, error)"},
	{"log.file", "log-file", "", "", "append logs to this file instead of stderr"},
}

func setDefaults(v *viper.Viper) {
	for _, s := range settings {
		v.SetDefault(s.key, s.def)
	}
}

// NewFlagSet declares the command line flags with the same defaults viper falls back to
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (yaml, toml or json)")
	for _, s := range settings {
		switch def := s.def.(type) {
		case string:
			fs.StringP(s.flag, s.shorthand, def, s.usage)
		case int:
			fs.IntP(s.flag, s.shorthand, def, s.usage)
		case uint64:
			fs.Uint64P(s.flag, s.shorthand, def, s.usage)
		case bool:
			fs.BoolP(s.flag, s.shorthand, def, s.usage)
		default:
			panic(fmt.Sprintf("config: flag %s has unsupported default %T", s.flag, s.def))
		}
	}
	return fs
}

// Load parses args and resolves the configuration
func Load(args []string) (*Config, error) {
	fs := NewFlagSet("minesweeper")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, s := range settings {
		if f := fs.Lookup(s.flag); f != nil && f.Changed {
			if err := v.BindPFlag(s.key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", s.flag, err)
			}
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values no front end can start with
func (c *Config) Validate() error {
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("%w: renderer %q, want %s or %s", ErrInvalid, c.Renderer, RendererTUI, RendererEbiten)
	}
	if _, err := c.StartDifficulty(); err != nil {
		return err
	}
	if langs := i18n.Languages(); !slices.Contains(langs, strings.ToLower(strings.TrimSpace(c.Language))) {
		return fmt.Errorf("%w: language %q, want one of %s", ErrInvalid, c.Language, strings.Join(langs, ", "))
	}
	return nil
}

// CustomDifficulty returns the configured custom board
func (c *Config) CustomDifficulty() (difficulty.Difficulty, error) {
	return difficulty.Custom(c.Custom.Rows, c.Custom.Cols, c.Custom.Mines)
}

// StartDifficulty resolves the difficulty the first game uses
func (c *Config) StartDifficulty() (difficulty.Difficulty, error) {
	if difficulty.IsCustom(c.Difficulty) {
		d, err := c.CustomDifficulty()
		if err != nil {
			return difficulty.Difficulty{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		return d, nil
	}
	d, ok := difficulty.Lookup(c.Difficulty)
	if !ok {
		return difficulty.Difficulty{}, fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, c.Difficulty)
	}
	return d, nil
}

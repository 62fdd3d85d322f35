package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/i18n"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Renderer != RendererTUI {
		t.Errorf("Renderer = %q, want %q", cfg.Renderer, RendererTUI)
	}
	d, err := cfg.StartDifficulty()
	if err != nil || d != difficulty.Easy {
		t.Errorf("StartDifficulty() = %v, %v, want Easy", d, err)
	}
	if cfg.Seed != 0 || cfg.HeatMap {
		t.Errorf("Seed = %d, HeatMap = %v, want 0, false", cfg.Seed, cfg.HeatMap)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load([]string{"-d", "custom", "--custom-rows", "5", "--custom-cols", "6", "--custom-mines", "7", "--seed", "42", "--heatmap"})
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	d, err := cfg.StartDifficulty()
	if err != nil {
		t.Fatalf("StartDifficulty error = %v", err)
	}
	if d.Rows != 5 || d.Cols != 6 || d.Mines != 7 {
		t.Errorf("StartDifficulty() = %v, want 5x6/7", d)
	}
	if cfg.Seed != 42 || !cfg.HeatMap {
		t.Errorf("Seed = %d, HeatMap = %v, want 42, true", cfg.Seed, cfg.HeatMap)
	}
}

func TestLoad_EnvOverridesDefaultsFlagsOverrideEnv(t *testing.T) {
	t.Setenv("MINESWEEPER_DIFFICULTY", "hard")
	t.Setenv("MINESWEEPER_LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Difficulty != "hard" || cfg.Log.Level != "debug" {
		t.Errorf("Difficulty = %q, Log.Level = %q, want hard, debug", cfg.Difficulty, cfg.Log.Level)
	}

	cfg, err = Load([]string{"--difficulty", "medium"})
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Difficulty != "medium" {
		t.Errorf("Difficulty = %q, want medium", cfg.Difficulty)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minesweeper.yaml")
	content := "renderer: ebiten\ncustom:\n  rows: 9\n  cols: 9\n  mines: 9\nlanguage: de\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	cfg, err := Load([]string{"--config", path})
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Renderer != RendererEbiten || cfg.Language != "de" || cfg.Custom.Rows != 9 {
		t.Errorf("cfg = %+v, want values from file", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"renderer", []string{"--renderer", "sdl"}},
		{"difficulty", []string{"--difficulty", "nightmare"}},
		{"custom", []string{"--difficulty", "custom", "--custom-rows", "2", "--custom-cols", "2", "--custom-mines", "4"}},
		{"language", []string{"--language", "xx"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.args); !errors.Is(err, ErrInvalid) {
				t.Errorf("Load(%v) error = %v, want ErrInvalid", tt.args, err)
			}
		})
	}
}

func TestLoad_Help(t *testing.T) {
	if _, err := Load([]string{"--help"}); !errors.Is(err, pflag.ErrHelp) {
		t.Errorf("Load(--help) error = %v, want pflag.ErrHelp", err)
	}
}

func TestNewFlagSet_DefaultsMatchLoad(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	fs := NewFlagSet("test")
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse error = %v", err)
	}

	strs := map[string]string{
		"renderer":   cfg.Renderer,
		"difficulty": cfg.Difficulty,
		"language":   cfg.Language,
		"log-level":  cfg.Log.Level,
		"log-file":   cfg.Log.File,
	}
	for name, want := range strs {
		if got, err := fs.GetString(name); err != nil || got != want {
			t.Errorf("--%s default = %q, %v, want %q", name, got, err, want)
		}
	}
	ints := map[string]int{
		"custom-rows":  cfg.Custom.Rows,
		"custom-cols":  cfg.Custom.Cols,
		"custom-mines": cfg.Custom.Mines,
	}
	for name, want := range ints {
		if got, err := fs.GetInt(name); err != nil || got != want {
			t.Errorf("--%s default = %d, %v, want %d", name, got, err, want)
		}
	}
	if got, _ := fs.GetUint64("seed"); got != cfg.Seed {
		t.Errorf("--seed default = %d, want %d", got, cfg.Seed)
	}
	if got, _ := fs.GetBool("heatmap"); got != cfg.HeatMap {
		t.Errorf("--heatmap default = %v, want %v", got, cfg.HeatMap)
	}
}

func TestNewFlagSet_LanguageUsageListsCatalogues(t *testing.T) {
	f := NewFlagSet("test").Lookup("language")
	if f == nil {
		t.Fatal("no --language flag")
	}
	for _, lang := range i18n.Languages() {
		if !strings.Contains(f.Usage, lang) {
			t.Errorf("--language usage = %q, missing %q", f.Usage, lang)
		}
	}
}

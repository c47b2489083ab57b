package cli

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	errs "github.com/matzehuels/backdrop/pkg/errors"
	"github.com/matzehuels/backdrop/pkg/styles"
)

// execute runs the root command with args, isolated from any user config.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func pngSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	if format != "png" {
		t.Errorf("%s format = %q, want png", path, format)
	}
	return cfg.Width, cfg.Height
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "banner.png")
	err := execute(t, "generate", styles.QuantumAI, "-o", out, "--width", "160", "--height", "90", "--seed", "7")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if w, h := pngSize(t, out); w != 160 || h != 90 {
		t.Errorf("size = %dx%d, want 160x90", w, h)
	}
}

func TestGenerateCommandSeedReproduces(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")
	for _, out := range []string{a, b} {
		if err := execute(t, "generate", styles.DataScience, "-o", out, "--width", "100", "--height", "50", "--seed", "99"); err != nil {
			t.Fatalf("generate: %v", err)
		}
	}
	da, _ := os.ReadFile(a)
	db, _ := os.ReadFile(b)
	if !bytes.Equal(da, db) {
		t.Error("same --seed produced different files")
	}
}

func TestGenerateCommandConfig(t *testing.T) {
	out := filepath.Join(t.TempDir(), "from-config.png")
	cfg := writeConfig(t, fmt.Sprintf("style = %q\nwidth = 120\nheight = 60\nseed = 5\noutput = %q\n", styles.TechMatrix, out))

	if err := execute(t, "--config", cfg, "generate"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if w, h := pngSize(t, out); w != 120 || h != 60 {
		t.Errorf("config size = %dx%d, want 120x60", w, h)
	}

	// A flag that is set wins; unset flags keep the config value.
	if err := execute(t, "--config", cfg, "generate", "--width", "200"); err != nil {
		t.Fatalf("generate --width: %v", err)
	}
	if w, h := pngSize(t, out); w != 200 || h != 60 {
		t.Errorf("override size = %dx%d, want 200x60", w, h)
	}
}

func TestGenerateCommandAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "all")
	if err := execute(t, "generate", "--all", "--dir", dir, "--width", "64", "--height", "32", "--seed", "3"); err != nil {
		t.Fatalf("generate --all: %v", err)
	}
	for _, key := range styles.Default().Keys() {
		path := filepath.Join(dir, key+".png")
		if w, h := pngSize(t, path); w != 64 || h != 32 {
			t.Errorf("%s size = %dx%d, want 64x32", key, w, h)
		}
	}
}

func TestGenerateCommandErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		code errs.Code
	}{
		{"unknown style", []string{"generate", "not_a_style", "-o", filepath.Join(dir, "x.png")}, errs.ErrCodeUnknownStyle},
		{"zero width", []string{"generate", "--width", "0", "-o", filepath.Join(dir, "x.png")}, errs.ErrCodeInvalidDimensions},
		{"bad output", []string{"generate", "-o", filepath.Join(dir, "x.gif")}, errs.ErrCodeInvalidPath},
		{"bad config", []string{"--config", writeConfig(t, "width = \"wide\"\n"), "generate"}, errs.ErrCodeInvalidConfig},
		{"style with --all", []string{"generate", "--all", styles.AINeural}, ""},
		{"too many args", []string{"generate", styles.AINeural, styles.MLData}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.code != "" && !errs.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
	if _, err := os.Stat(filepath.Join(dir, "x.png")); !os.IsNotExist(err) {
		t.Error("a failed generate wrote a file")
	}
}

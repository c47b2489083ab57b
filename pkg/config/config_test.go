package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	errs "github.com/matzehuels/backdrop/pkg/errors"
	"github.com/matzehuels/backdrop/pkg/styles"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Style != styles.DefaultKey {
		t.Errorf("Style = %q, want %q", c.Style, styles.DefaultKey)
	}
	if c.Width != 1584 || c.Height != 396 {
		t.Errorf("size = %dx%d, want 1584x396", c.Width, c.Height)
	}
	if c.Output != "linkedin-background.png" {
		t.Errorf("Output = %q", c.Output)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Config
		wantErr bool
	}{
		{
			name:  "empty",
			input: "",
			want:  Default(),
		},
		{
			name:  "partial",
			input: "style = \"quantum_ai\"\nseed = 99\n",
			want: Config{
				Style: "quantum_ai", Width: 1584, Height: 396, Seed: 99,
				Output: "linkedin-background.png", Dir: "backgrounds",
			},
		},
		{
			name:  "full",
			input: "style = \"nlp_text\"\nwidth = 800\nheight = 600\noutput = \"a.png\"\ndir = \"out\"\n",
			want: Config{
				Style: "nlp_text", Width: 800, Height: 600,
				Output: "a.png", Dir: "out",
			},
		},
		{name: "unknown style", input: "style = \"vaporwave\"\n", wantErr: true},
		{name: "negative width", input: "width = -5\n", wantErr: true},
		{name: "bad output", input: "output = \"a.jpg\"\n", wantErr: true},
		{name: "unknown key", input: "colour = \"red\"\n", wantErr: true},
		{name: "wrong type", input: "width = \"wide\"\n", wantErr: true},
		{name: "syntax", input: "style = \n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errs.Is(err, errs.ErrCodeInvalidConfig) {
					t.Errorf("err = %v, want %s", err, errs.ErrCodeInvalidConfig)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if c != Default() {
		t.Errorf("missing file = %+v, want defaults", c)
	}

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("height = 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Height != 200 || c.Width != DefaultWidth {
		t.Errorf("size = %dx%d, want %dx200", c.Width, c.Height, DefaultWidth)
	}

	if _, err := Load(dir); !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("Load(dir) err = %v, want %s", err, errs.ErrCodeInvalidConfig)
	}
}

func TestLoadDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "backdrop", "config.toml"); path != want {
		t.Errorf("DefaultPath = %q, want %q", path, want)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("style = \"tech_matrix\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Style != styles.TechMatrix {
		t.Errorf("Style = %q, want %q", c.Style, styles.TechMatrix)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	in := Config{Style: "data_science", Width: 1200, Height: 300, Seed: 12345, Output: "x.png", Dir: "d"}

	var buf bytes.Buffer
	if err := in.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out, err := Parse(buf.String())
	if err != nil {
		t.Fatalf("Parse: %v\n%s", err, buf.String())
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

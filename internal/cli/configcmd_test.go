package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/matzehuels/backdrop/pkg/config"
	"github.com/matzehuels/backdrop/pkg/styles"
)

func TestConfigShowTOML(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeConfig(t, "style = \"llm_brain\"\nseed = 8\n")

	var buf bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"--config", path, "config", "show", "--toml"})
	root.SetOut(&buf)
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("config show: %v", err)
	}

	got, err := config.Parse(buf.String())
	if err != nil {
		t.Fatalf("output is not a valid config: %v\n%s", err, buf.String())
	}
	if got.Style != styles.LLMBrain || got.Seed != 8 || got.Width != config.DefaultWidth {
		t.Errorf("config show = %+v", got)
	}
}

func TestConfigCommands(t *testing.T) {
	for _, args := range [][]string{
		{"config", "show"},
		{"config", "path"},
		{"--config", "/nonexistent/backdrop.toml", "config", "path"},
	} {
		if err := execute(t, args...); err != nil {
			t.Errorf("%v: %v", args, err)
		}
	}
}

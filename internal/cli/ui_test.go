package cli

import (
	"testing"
	"time"

	"github.com/matzehuels/backdrop/pkg/render"
	"github.com/matzehuels/backdrop/pkg/scene"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#1a1a2e", "#1a1a2e"},
		{"#FFF", "#ffffff"},
		{"#000000", "#000000"},
	}
	for _, tt := range tests {
		if got := hexColor(scene.MustHex(tt.in)); got != tt.want {
			t.Errorf("hexColor(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDescribeResult(t *testing.T) {
	res := render.Result{Width: 1584, Height: 396, Seed: 42, Commands: 318, Duration: 35 * time.Millisecond}
	want := "1584x396 · seed 42 · 318 shapes · 35ms"
	if got := describeResult(res); got != want {
		t.Errorf("describeResult = %q, want %q", got, want)
	}
}

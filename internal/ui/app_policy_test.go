package ui

import (
	"testing"

	"github.com/melovue/shell/internal/config"
	"github.com/melovue/shell/internal/domain/navigation"
)

func TestEngineFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	engine := engineFromConfig(cfg)

	tests := []struct {
		name     string
		url      string
		topLevel bool
		allow    bool
	}{
		{"base host stays embedded", "https://app.melovue.com/events", true, true},
		{"trusted login host stays embedded", "https://accounts.spotify.com/authorize", true, true},
		{"partner page leaves top-level", "https://open.spotify.com/track/abc", true, false},
		{"partner embed widget stays", "https://open.spotify.com/embed/track/abc", true, true},
		{"foreign site leaves top-level", "https://example.com/", true, false},
		{"foreign subframe stays", "https://example.com/ad", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := engine.Decide(navigation.Request{URL: tt.url, TopLevelFrame: tt.topLevel})
			if d.AllowInPlace != tt.allow {
				t.Errorf("Decide(%q, topLevel=%v) allow = %v, want %v",
					tt.url, tt.topLevel, d.AllowInPlace, tt.allow)
			}
		})
	}
}

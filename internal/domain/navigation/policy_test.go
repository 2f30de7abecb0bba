package navigation

import "testing"

func testEngine() *Engine {
	return NewEngine(Policy{
		BaseHost:           "app.melovue.com",
		TrustedHosts:       []string{"accounts.spotify.com"},
		PartnerHost:        "open.spotify.com",
		PartnerEmbedPrefix: "/embed/",
	})
}

func TestEngineDecide(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		wantAllow bool
		wantWhy   Reason
	}{
		{
			name:      "empty URL allowed",
			req:       Request{URL: "", TopLevelFrame: true},
			wantAllow: true,
			wantWhy:   ReasonEmptyURL,
		},
		{
			name:      "malformed URL allowed",
			req:       Request{URL: "http://%zz:8080/", TopLevelFrame: true},
			wantAllow: true,
			wantWhy:   ReasonMalformedURL,
		},
		{
			name:      "spotify deep link vetoed",
			req:       Request{URL: "spotify:track:4uLU6hMCjMI75M1A2tKUQC", TopLevelFrame: true},
			wantAllow: false,
			wantWhy:   ReasonAppScheme,
		},
		{
			name:      "intent scheme vetoed",
			req:       Request{URL: "intent://open#Intent;package=com.spotify.music;end", TopLevelFrame: true},
			wantAllow: false,
			wantWhy:   ReasonAppScheme,
		},
		{
			name:      "mailto vetoed top-level",
			req:       Request{URL: "mailto:booking@melovue.com", TopLevelFrame: true},
			wantAllow: false,
			wantWhy:   ReasonContactScheme,
		},
		{
			name:      "mailto vetoed in sub-frame",
			req:       Request{URL: "mailto:booking@melovue.com", TopLevelFrame: false},
			wantAllow: false,
			wantWhy:   ReasonContactScheme,
		},
		{
			name:      "tel vetoed",
			req:       Request{URL: "tel:+4915123456789", TopLevelFrame: true},
			wantAllow: false,
			wantWhy:   ReasonContactScheme,
		},
		{
			name:      "sms vetoed",
			req:       Request{URL: "sms:+4915123456789", TopLevelFrame: false},
			wantAllow: false,
			wantWhy:   ReasonContactScheme,
		},
		{
			name:      "partner track page vetoed top-level",
			req:       Request{URL: "https://open.spotify.com/track/123", TopLevelFrame: true},
			wantAllow: false,
			wantWhy:   ReasonPartnerTopLevel,
		},
		{
			name:      "partner embed path allowed top-level",
			req:       Request{URL: "https://open.spotify.com/embed/track/123", TopLevelFrame: true},
			wantAllow: true,
			wantWhy:   ReasonInPlace,
		},
		{
			name:      "partner track page allowed in sub-frame",
			req:       Request{URL: "https://open.spotify.com/track/123", TopLevelFrame: false},
			wantAllow: true,
			wantWhy:   ReasonInPlace,
		},
		{
			name:      "base host allowed top-level",
			req:       Request{URL: "https://app.melovue.com/events/42", TopLevelFrame: true},
			wantAllow: true,
			wantWhy:   ReasonInPlace,
		},
		{
			name:      "trusted host allowed top-level",
			req:       Request{URL: "https://accounts.spotify.com/authorize", TopLevelFrame: true},
			wantAllow: true,
			wantWhy:   ReasonInPlace,
		},
		{
			name:      "external host vetoed top-level",
			req:       Request{URL: "https://example.org/tickets", TopLevelFrame: true},
			wantAllow: false,
			wantWhy:   ReasonExternalHost,
		},
		{
			name:      "external host allowed in sub-frame",
			req:       Request{URL: "https://example.org/widget", TopLevelFrame: false},
			wantAllow: true,
			wantWhy:   ReasonInPlace,
		},
		{
			name:      "http scheme policed like https",
			req:       Request{URL: "http://example.org/", TopLevelFrame: true},
			wantAllow: false,
			wantWhy:   ReasonExternalHost,
		},
		{
			name:      "unknown scheme allowed",
			req:       Request{URL: "about:blank", TopLevelFrame: true},
			wantAllow: true,
			wantWhy:   ReasonUnknownScheme,
		},
		{
			name:      "blob scheme allowed",
			req:       Request{URL: "blob:https://app.melovue.com/d4f0", TopLevelFrame: true},
			wantAllow: true,
			wantWhy:   ReasonUnknownScheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testEngine().Decide(tt.req)
			if got.AllowInPlace != tt.wantAllow {
				t.Errorf("Decide(%+v).AllowInPlace = %v, want %v", tt.req, got.AllowInPlace, tt.wantAllow)
			}
			if got.Reason != tt.wantWhy {
				t.Errorf("Decide(%+v).Reason = %q, want %q", tt.req, got.Reason, tt.wantWhy)
			}
		})
	}
}

func TestEngineWithoutEmbedPrefix(t *testing.T) {
	// With no embed prefix configured the whole partner host opens natively.
	eng := NewEngine(Policy{
		BaseHost:    "app.melovue.com",
		PartnerHost: "open.spotify.com",
	})
	got := eng.Decide(Request{URL: "https://open.spotify.com/embed/track/123", TopLevelFrame: true})
	if got.AllowInPlace {
		t.Fatalf("Decide() allowed partner page with no embed prefix, reason %q", got.Reason)
	}
}

func TestPartnerEmbedAllowedWithoutAllowListEntry(t *testing.T) {
	// The embed allowance comes from the partner rule alone; the partner
	// host is deliberately absent from the trusted hosts.
	eng := NewEngine(Policy{
		BaseHost:           "app.melovue.com",
		PartnerHost:        "open.spotify.com",
		PartnerEmbedPrefix: "/embed/",
	})
	got := eng.Decide(Request{URL: "https://open.spotify.com/embed/track/123", TopLevelFrame: true})
	if !got.AllowInPlace || got.Reason != ReasonInPlace {
		t.Fatalf("Decide() = %+v, want embed path allowed in place", got)
	}
}

func TestNeedsDispatch(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"mailto:booking@melovue.com", true},
		{"tel:+4915123456789", true},
		{"sms:+4915123456789", true},
		{"https://app.melovue.com/", false},
		{"spotify:track:123", false},
		{"", false},
		{"http://%zz/", false},
	}
	for _, tt := range tests {
		if got := NeedsDispatch(tt.url); got != tt.want {
			t.Errorf("NeedsDispatch(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

package navigation

import "testing"

func TestIsExternal(t *testing.T) {
	baseHost := "app.melovue.com"
	allowList := []string{"accounts.spotify.com", "sdk.scdn.co"}

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{
			name: "base host",
			url:  "https://app.melovue.com/events",
			want: false,
		},
		{
			name: "base host with port mismatch",
			url:  "https://app.melovue.com:8443/events",
			want: true,
		},
		{
			name: "allow-listed partner login",
			url:  "https://accounts.spotify.com/login",
			want: false,
		},
		{
			name: "allow-listed sdk host",
			url:  "https://sdk.scdn.co/spotify-player.js",
			want: false,
		},
		{
			name: "external host",
			url:  "https://example.org/",
			want: true,
		},
		{
			name: "subdomain is not wildcarded",
			url:  "https://cdn.app.melovue.com/logo.png",
			want: true,
		},
		{
			name: "case-sensitive host match",
			url:  "https://App.Melovue.Com/",
			want: true,
		},
		{
			name: "malformed URL fails open",
			url:  "https://app.melovue.com/%zz\x7f",
			want: false,
		},
		{
			name: "empty string",
			url:  "",
			want: false,
		},
		{
			name: "scheme-relative garbage",
			url:  "://nohost",
			want: false,
		},
		{
			name: "host-less mailto fails open",
			url:  "mailto:booking@melovue.com",
			want: false,
		},
		{
			name: "relative path has no host",
			url:  "/events/42",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExternal(tt.url, baseHost, allowList); got != tt.want {
				t.Errorf("IsExternal(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsExternalEmptyAllowList(t *testing.T) {
	if IsExternal("https://app.melovue.com/", "app.melovue.com", nil) {
		t.Error("base host should never be external")
	}
	if !IsExternal("https://other.example/", "app.melovue.com", nil) {
		t.Error("foreign host should be external with nil allow-list")
	}
}

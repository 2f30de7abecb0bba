package version

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty stays empty",
			input: "",
			want:  "",
		},
		{
			name:  "bare version gets prefix",
			input: "1.2.0",
			want:  "v1.2.0",
		},
		{
			name:  "prefixed version unchanged",
			input: "v1.2.0",
			want:  "v1.2.0",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  1.2.0\n",
			want:  "v1.2.0",
		},
		{
			name:  "only first prefix stripped",
			input: "vv1.2.0",
			want:  "vv1.2.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"v1.2.0", "1.2.0", true},
		{"1.2.0", "1.2.0", true},
		{"v1.2.0", "v1.3.0", false},
		{"", "", true},
		{"", "v1.2.0", false},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

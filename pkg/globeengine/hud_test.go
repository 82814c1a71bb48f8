package globeengine

import "testing"

func TestCountryDisplayName(t *testing.T) {
	tests := []struct {
		id, want string
	}{
		{"356", "India"},
		{"India", "India"},
		{"no-such-country", "no-such-country"},
	}
	for _, tt := range tests {
		if got := countryDisplayName(tt.id); got != tt.want {
			t.Errorf("countryDisplayName(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

package theme

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		theme  Theme
		parsed bool
	}{
		{"dark", Dark, true},
		{"light", Light, true},
		{"", Default, false},
		{"sepia", Default, false},
	}

	for _, test := range tests {
		theme, ok := Parse(test.in)
		if theme != test.theme || ok != test.parsed {
			t.Errorf("Parse(%q) expected (%s, %v), got (%s, %v)",
				test.in, test.theme, test.parsed, theme, ok)
		}
	}
}

func TestToggle(t *testing.T) {
	if Dark.Toggle() != Light || Light.Toggle() != Dark {
		t.Error("toggle does not flip the theme")
	}
}

func TestTokensComplete(t *testing.T) {
	for _, theme := range []Theme{Dark, Light} {
		for _, v := range TokensOf(theme).Vars() {
			if v.Value == "" {
				t.Errorf("%s: token %s is empty", theme, v.Name)
			}
		}
	}

	if TokensOf(Dark).Background == TokensOf(Light).Background {
		t.Error("dark and light share a background")
	}
}

package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"CIRIS Aesthetics Lounge App", "ciris-aesthetics-lounge-app"},
		{"Café Crème", "cafe-creme"},
		{"Rock & Roll!", "rock-roll"},
		{"  spaced   out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"under_scored__twice", "under-scored-twice"},
		{"--Leading & trailing--", "leading-trailing"},
		{"2024 Redesign (v2)", "2024-redesign-v2"},
		{"日本語だけ", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

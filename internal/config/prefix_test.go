package config

import "testing"

func TestNormalizePrefix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"docs/", "docs/"},
		{"docs", "docs"},
		{"/docs/reports/", "docs/reports/"},
		{"docs//reports", "docs/reports"},
		{"docs\\reports\\", "docs/reports/"},
	}
	for _, c := range cases {
		if got := NormalizePrefix(c.in); got != c.want {
			t.Errorf("NormalizePrefix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

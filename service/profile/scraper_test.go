package profile

import "testing"

func TestExtractUsername(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.linkedin.com/in/jane-doe", "jane-doe"},
		{"https://www.linkedin.com/in/jane-doe/", "jane-doe"},
		{"https://www.linkedin.com/in/jane-doe?utm_source=share", "jane-doe"},
		{"https://www.linkedin.com/in/jane-doe/?utm_source=share", "jane-doe"},
		{"https://www.linkedin.com/in/jane-doe#about", "jane-doe"},
		{"  https://www.linkedin.com/in/jane-doe  ", "jane-doe"},
		{"jane-doe", "jane-doe"},
		{"", ""},
	}

	for _, c := range cases {
		if got := extractUsername(c.url); got != c.want {
			t.Fatalf("extractUsername(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}

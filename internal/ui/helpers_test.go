package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated", 5, "trun…"},
		{"x", 0, "x"},
		{"abc", 1, "…"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle(" https://short.ly/a ", 40); got != " https://short.ly/a " {
		t.Fatalf("truncateMiddle altered value: %q", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	got := truncateMiddle("https://example.com/a/very/long/path", 11)
	if got != "https…/path" {
		t.Fatalf("truncateMiddle = %q, want %q", got, "https…/path")
	}
	if n := len([]rune(got)); n != 11 {
		t.Fatalf("truncateMiddle length = %d, want 11", n)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 10, 20); got != 10 {
		t.Fatalf("clamp low = %d, want 10", got)
	}
	if got := clamp(25, 10, 20); got != 20 {
		t.Fatalf("clamp high = %d, want 20", got)
	}
	if got := clamp(15, 10, 20); got != 15 {
		t.Fatalf("clamp mid = %d, want 15", got)
	}
}

func TestHostOf(t *testing.T) {
	cases := map[string]string{
		"http://127.0.0.1:8080":    "127.0.0.1:8080",
		" https://short.example/ ": "short.example",
		"":                         "",
	}
	for in, want := range cases {
		if got := hostOf(in); got != want {
			t.Fatalf("hostOf(%q) = %q, want %q", in, got, want)
		}
	}
}

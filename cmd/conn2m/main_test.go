package main

import (
	"testing"
	"time"
)

func TestParseLightDuration(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"on", 255},
		{"ON", 255},
		{"off", 0},
		{"30", 30},
	}
	for _, c := range cases {
		got, err := parseLightDuration(c.in)
		if err != nil {
			t.Errorf("parseLightDuration(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseLightDuration(%q) = %d, want %d", c.in, got, c.want)
		}
	}
	if _, err := parseLightDuration("bright"); err == nil {
		t.Error("parseLightDuration(bright) accepted")
	}
}

func TestDatePrefix(t *testing.T) {
	a := time.Date(2020, 5, 6, 7, 0, 0, 0, time.UTC)
	b := time.Date(2020, 5, 6, 23, 59, 0, 0, time.UTC)
	c := time.Date(2020, 5, 8, 1, 0, 0, 0, time.UTC)

	if got := datePrefix(a, b); got != "200506" {
		t.Errorf("same-day prefix = %q", got)
	}
	if got := datePrefix(a, c); got != "200506-200508" {
		t.Errorf("multi-day prefix = %q", got)
	}
}

func TestDefaultPrefix(t *testing.T) {
	cases := map[string]string{
		"get-tracks": "track",
		"get-pois":   "pois",
		"get-route":  "route",
	}
	for mode, want := range cases {
		if got := defaultPrefix(mode); got != want {
			t.Errorf("defaultPrefix(%s) = %q, want %q", mode, got, want)
		}
	}
}

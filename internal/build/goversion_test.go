package build

import (
	"context"
	"testing"
)

func TestParseGoVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"go version go1.24.3 linux/amd64", "v1.24.3"},
		{"go version go1.25 darwin/arm64", "v1.25"},
		{"go version go1.23.0 linux/amd64", "v1.23.0"},
		{"go version devel +abc123 linux/amd64", ""},
		{"not go output", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := parseGoVersion(tt.in); got != tt.want {
			t.Errorf("parseGoVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCheckGoVersion(t *testing.T) {
	installFakeGo(t)

	if err := checkGoVersion(context.Background()); err != nil {
		t.Errorf("go1.24.3 should pass: %v", err)
	}

	t.Setenv("GNB_TEST_GOVERSION", "go1.22.1")
	if err := checkGoVersion(context.Background()); err == nil {
		t.Error("go1.22.1 should be rejected")
	}

	// Unparseable output degrades to a warning, not an error.
	t.Setenv("GNB_TEST_GOVERSION", "devel")
	if err := checkGoVersion(context.Background()); err != nil {
		t.Errorf("devel toolchain should warn, not fail: %v", err)
	}
}

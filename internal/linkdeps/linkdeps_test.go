package linkdeps

import (
	"reflect"
	"testing"

	"github.com/gnarkffi/gnb/internal/target"
)

func names(ds []Directive) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Name
	}
	return out
}

func TestFor(t *testing.T) {
	tests := []struct {
		family target.Family
		want   []string
	}{
		{target.Darwin, []string{"CoreFoundation", "Security", "resolv"}},
		{target.IOS, []string{"CoreFoundation", "Security", "resolv"}},
		{target.Android, []string{"c", "log"}},
		{target.Linux, []string{"pthread", "resolv"}},
		{target.Unknown, []string{"pthread", "resolv"}},
	}
	for _, tt := range tests {
		if got := names(For(tt.family)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("For(%q) = %v, want %v", tt.family, got, tt.want)
		}
	}
}

func TestForFrameworkKinds(t *testing.T) {
	ds := For(target.IOS)
	if ds[0].Kind != Framework || ds[1].Kind != Framework || ds[2].Kind != Lib {
		t.Errorf("ios directives have wrong kinds: %v", ds)
	}
	for _, d := range For(target.Android) {
		if d.Kind != Lib {
			t.Errorf("android directive %v should be a plain library", d)
		}
	}
}

func TestDirectiveArg(t *testing.T) {
	if got := (Directive{Framework, "Security"}).Arg(); got != "-framework Security" {
		t.Errorf("framework arg = %q", got)
	}
	if got := (Directive{Lib, "resolv"}).Arg(); got != "-lresolv" {
		t.Errorf("lib arg = %q", got)
	}
}

func TestLinkLine(t *testing.T) {
	cls := target.Classify("aarch64-linux-android")
	got := LinkLine(cls, "/out")
	want := []string{"-L/out", "-lgnark", "-lc", "-llog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LinkLine = %v, want %v", got, want)
	}
}

// Purity: repeated calls return equal values for every family.
func TestForPure(t *testing.T) {
	for _, f := range []target.Family{target.Linux, target.Darwin, target.IOS, target.Android, target.Unknown} {
		if !reflect.DeepEqual(For(f), For(f)) {
			t.Errorf("For(%q) is not stable", f)
		}
	}
}

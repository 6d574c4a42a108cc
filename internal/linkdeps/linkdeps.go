// Package linkdeps emits the system libraries the final linker must pull
// in alongside libgnark. The set depends only on the target OS family; it
// is independent of the chosen compiler and environment.
package linkdeps

import "github.com/gnarkffi/gnb/internal/target"

// Kind distinguishes plain system libraries from Apple frameworks.
type Kind int

const (
	Lib Kind = iota
	Framework
)

// Directive names one required system dependency of the Go runtime on the
// target platform.
type Directive struct {
	Kind Kind
	Name string
}

// Arg renders the directive as a linker argument.
func (d Directive) Arg() string {
	if d.Kind == Framework {
		return "-framework " + d.Name
	}
	return "-l" + d.Name
}

// For returns the link directives for an OS family, in link order. It is
// pure and total: every family, including Unknown, has a fixed answer.
func For(f target.Family) []Directive {
	switch f {
	case target.Darwin, target.IOS:
		return []Directive{
			{Framework, "CoreFoundation"},
			{Framework, "Security"},
			{Lib, "resolv"},
		}
	case target.Android:
		return []Directive{{Lib, "c"}, {Lib, "log"}}
	default:
		// Linux and anything unrecognized.
		return []Directive{{Lib, "pthread"}, {Lib, "resolv"}}
	}
}

// LinkLine returns the linker argument list for consuming the built
// library out of dir: the search path, the library itself, and the
// platform directives. Whether -lgnark resolves statically or dynamically
// follows the build mode, which decided the artifact present in dir.
func LinkLine(cls target.Classification, dir string) []string {
	args := []string{"-L" + dir, "-lgnark"}
	for _, d := range For(cls.Family) {
		args = append(args, d.Arg())
	}
	return args
}

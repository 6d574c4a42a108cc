package recipe

import (
	"fmt"
	"strings"
)

// EnvVar is a single environment variable assignment. Recipes keep their
// environment as an ordered slice so variables reach the subprocess in a
// stable order.
type EnvVar struct {
	Key   string
	Value string
}

func (v EnvVar) String() string { return v.Key + "=" + v.Value }

// ParseOverride parses an explicit cross-compilation override string of
// the form "GOOS=ios;GOARCH=arm64;CC=/path/to/cc". Entries without an "="
// are silently dropped: the format is deliberately forgiving, and callers
// that want diagnostics use ParseOverrideStrict instead.
func ParseOverride(s string) []EnvVar {
	if s == "" {
		return nil
	}
	var envs []EnvVar
	for _, pair := range strings.Split(s, ";") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		envs = append(envs, EnvVar{Key: key, Value: value})
	}
	return envs
}

// ParseOverrideStrict is the opt-in strict variant of ParseOverride: any
// entry missing its "=" separator is an error naming the entry.
func ParseOverrideStrict(s string) ([]EnvVar, error) {
	if s == "" {
		return nil, nil
	}
	var envs []EnvVar
	for _, pair := range strings.Split(s, ";") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed env override entry %q: missing '='", pair)
		}
		envs = append(envs, EnvVar{Key: key, Value: value})
	}
	return envs, nil
}

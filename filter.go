package siftlog

import (
	"os"
	"strings"
)

// SelectedLevelsFilter passes records whose level is one of levels.
// Duplicates are ignored and an empty list allows everything.
func SelectedLevelsFilter(levels ...Level) Filter {
	if len(levels) == 0 {
		return func(Record) bool { return true }
	}
	allowed := make(map[Level]struct{}, len(levels))
	for _, l := range levels {
		allowed[l] = struct{}{}
	}
	return func(r Record) bool {
		_, ok := allowed[r.Level]
		return ok
	}
}

// MinLevelFilter passes records at or above min.
func MinLevelFilter(min Level) Filter {
	return func(r Record) bool { return r.Level >= min }
}

// ComponentsFilter passes records whose component is one of
// components. An empty list allows everything, including records with
// no component at all; a non-empty list requires a matching component.
func ComponentsFilter(components ...string) Filter {
	if len(components) == 0 {
		return func(Record) bool { return true }
	}
	allowed := make(map[string]struct{}, len(components))
	for _, c := range components {
		allowed[c] = struct{}{}
	}
	return func(r Record) bool {
		if r.Component == "" {
			return false
		}
		_, ok := allowed[r.Component]
		return ok
	}
}

// ComponentPrefixFilter passes records whose component starts with any
// of the given prefixes. An empty list allows everything.
func ComponentPrefixFilter(prefixes ...string) Filter {
	if len(prefixes) == 0 {
		return func(Record) bool { return true }
	}
	owned := append([]string(nil), prefixes...)
	return func(r Record) bool {
		if r.Component == "" {
			return false
		}
		for _, p := range owned {
			if strings.HasPrefix(r.Component, p) {
				return true
			}
		}
		return false
	}
}

// Values treated as "off" by EnvFilter, matched after trimming
// whitespace and lowercasing.
var falsyEnvValues = map[string]struct{}{
	"":      {},
	"0":     {},
	"false": {},
	"no":    {},
}

// EnvFilter passes while the named environment variable is set to a
// truthy value. The variable is read on every evaluation, so toggling
// it at runtime takes effect on the next log call.
func EnvFilter(name string) Filter {
	return func(Record) bool {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
		_, falsy := falsyEnvValues[v]
		return !falsy
	}
}

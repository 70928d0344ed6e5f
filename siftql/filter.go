// Package siftql implements a small query language for filtering log
// records. Queries combine key:value matches on the level, component
// and message fields with AND, OR, NOT and parentheses; bare words and
// quoted strings are case-insensitive full-text searches, and
// level>=NAME compares severities numerically.
//
//	component:api AND level>=warn
//	(comp:db OR comp:cache) AND NOT "slow query"
package siftql

import (
	"fmt"

	"github.com/coffersTech/siftlog"
)

// Compile parses the query and returns it as a filter usable in a
// logger configuration. An empty query compiles to an allow-all
// filter. Unknown field names and malformed level comparisons are
// compile-time errors.
func Compile(query string) (siftlog.Filter, error) {
	node, err := Parse(query)
	if err != nil {
		return nil, err
	}
	if err := validate(node); err != nil {
		return nil, err
	}
	return func(r siftlog.Record) bool {
		return Match(node, r)
	}, nil
}

// validate walks the AST and rejects expressions that could never
// match anything, so callers learn about typos at compile time rather
// than through silently dropped records.
func validate(node Node) error {
	switch n := node.(type) {
	case nil:
		return nil
	case BinaryExpr:
		if err := validate(n.Left); err != nil {
			return err
		}
		return validate(n.Right)
	case NotExpr:
		return validate(n.Expr)
	case MatchExpr:
		if n.Key == "" {
			return nil
		}
		if !isKnownKey(n.Key) {
			return fmt.Errorf("unknown field %q", n.Key)
		}
		if n.Op == ">=" {
			if !isLevelKey(n.Key) {
				return fmt.Errorf("'>=' only applies to the level field, not %q", n.Key)
			}
			if _, err := siftlog.ParseLevel(n.Value); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

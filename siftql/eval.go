package siftql

import (
	"strings"

	"github.com/coffersTech/siftlog"
)

// Match evaluates the AST node against a record and returns true if it
// matches. A nil node matches everything.
func Match(node Node, r siftlog.Record) bool {
	if node == nil {
		return true
	}

	switch n := node.(type) {
	case BinaryExpr:
		return evalBinary(n, r)
	case MatchExpr:
		return evalMatch(n, r)
	case NotExpr:
		return !Match(n.Expr, r)
	default:
		return false
	}
}

func evalBinary(expr BinaryExpr, r siftlog.Record) bool {
	left := Match(expr.Left, r)
	right := Match(expr.Right, r)

	switch expr.Op {
	case "AND":
		return left && right
	case "OR":
		return left || right
	default:
		return false
	}
}

func evalMatch(expr MatchExpr, r siftlog.Record) bool {
	// Full-text search (no key specified)
	if expr.Key == "" {
		return matchFullText(expr.Value, r)
	}

	// Level comparison is numeric, not textual
	if expr.Op == ">=" {
		return evalMinLevel(expr, r)
	}

	val := fieldValue(expr.Key, r)

	switch expr.Op {
	case "=":
		return strings.EqualFold(val, expr.Value)
	case "!=":
		return !strings.EqualFold(val, expr.Value)
	case "CONTAINS":
		return containsIgnoreCase(val, expr.Value)
	default:
		return strings.EqualFold(val, expr.Value)
	}
}

// evalMinLevel handles level >= NAME expressions.
func evalMinLevel(expr MatchExpr, r siftlog.Record) bool {
	if !isLevelKey(expr.Key) {
		return false
	}
	min, err := siftlog.ParseLevel(expr.Value)
	if err != nil {
		return false
	}
	return r.Level >= min
}

// fieldValue returns the value of a record field by name.
func fieldValue(key string, r siftlog.Record) string {
	switch strings.ToLower(key) {
	case "component", "comp":
		return r.Component
	case "message", "msg":
		return r.Message
	case "level", "lvl":
		return r.Level.String()
	default:
		return ""
	}
}

func isLevelKey(key string) bool {
	switch strings.ToLower(key) {
	case "level", "lvl":
		return true
	}
	return false
}

func isKnownKey(key string) bool {
	switch strings.ToLower(key) {
	case "component", "comp", "message", "msg", "level", "lvl":
		return true
	}
	return false
}

// containsIgnoreCase checks if haystack contains needle (case-insensitive).
func containsIgnoreCase(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// matchFullText searches across all record fields.
func matchFullText(query string, r siftlog.Record) bool {
	q := strings.ToLower(query)
	fields := []string{
		r.Component,
		r.Message,
		r.Level.String(),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

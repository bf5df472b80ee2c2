package dice

import (
	"strings"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

// Operator compares a rolled total against a target number
type Operator string

const (
	LessOrEqual    Operator = "<="
	Less           Operator = "<"
	Equal          Operator = "="
	Greater        Operator = ">"
	GreaterOrEqual Operator = ">="
)

// Operators lists every supported comparison
var Operators = []Operator{LessOrEqual, Less, Equal, Greater, GreaterOrEqual}

// Valid reports whether o is one of the supported comparisons
func (o Operator) Valid() bool {
	switch o {
	case LessOrEqual, Less, Equal, Greater, GreaterOrEqual:
		return true
	}
	return false
}

// Compare applies the operator to total and target
func (o Operator) Compare(total, target int) bool {
	switch o {
	case LessOrEqual:
		return total <= target
	case Less:
		return total < target
	case Equal:
		return total == target
	case Greater:
		return total > target
	case GreaterOrEqual:
		return total >= target
	}
	return false
}

// ParseOperator accepts the symbolic form and a few word aliases
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "<=", "lte":
		return LessOrEqual, nil
	case "<", "lt":
		return Less, nil
	case "=", "==", "eq":
		return Equal, nil
	case ">", "gt":
		return Greater, nil
	case ">=", "gte":
		return GreaterOrEqual, nil
	}
	return "", dnderr.InvalidArgumentf("unknown comparison operator %q", s)
}

// RerollStrategy controls whether a formula is rolled twice
type RerollStrategy string

const (
	RerollNone       RerollStrategy = "none"
	RerollBestOfTwo  RerollStrategy = "best-of-two"
	RerollWorstOfTwo RerollStrategy = "worst-of-two"
)

package dice

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

// Variables binds formula references such as @mod.meleeAttack to values
type Variables map[string]int

// Lookup returns the bound value for path, without the leading @
func (v Variables) Lookup(path string) (int, bool) {
	if v == nil {
		return 0, false
	}
	value, ok := v[path]
	return value, ok
}

// Merge returns a copy of v with other's bindings layered on top
func (v Variables) Merge(other Variables) Variables {
	out := make(Variables, len(v)+len(other))
	for k, val := range v {
		out[k] = val
	}
	for k, val := range other {
		out[k] = val
	}
	return out
}

var variablePattern = regexp.MustCompile(`@([A-Za-z_](?:[A-Za-z0-9_.]*[A-Za-z0-9_])?)`)

// Substitute replaces every @path in formula with its bound value.
// Unbound paths become 0.
func Substitute(formula string, vars Variables) string {
	return variablePattern.ReplaceAllStringFunc(formula, func(match string) string {
		value, _ := vars.Lookup(match[1:])
		if value < 0 {
			return "(" + strconv.Itoa(value) + ")"
		}
		return strconv.Itoa(value)
	})
}

// Options tune a single evaluation
type Options struct {
	// Modifier is appended as +N or -N; omitted when zero
	Modifier int
	// Operator and Target turn the roll into a pass/fail check
	Operator Operator
	Target   *int
	// Reroll rolls the formula twice and keeps the better or worse total
	Reroll RerollStrategy
}

// Against is a shorthand for a pass/fail check
func Against(op Operator, target int) *Options {
	return &Options{Operator: op, Target: &target}
}

// Outcome is the result of evaluating a formula
type Outcome struct {
	Formula   string   `json:"formula"`
	Total     int      `json:"total"`
	Success   *bool    `json:"success"`
	Operator  Operator `json:"operator,omitempty"`
	Target    *int     `json:"target,omitempty"`
	Breakdown []Term   `json:"breakdown"`
	Discarded *Outcome `json:"discarded,omitempty"`
}

// Succeeded reports a passed check. Plain rolls never succeed.
func (o *Outcome) Succeeded() bool {
	return o != nil && o.Success != nil && *o.Success
}

// IsPlain reports a roll made without a target and operator
func (o *Outcome) IsPlain() bool {
	return o == nil || o.Success == nil
}

// Natural returns the face of the first single d20 rolled, if any
func (o *Outcome) Natural() (int, bool) {
	if o == nil {
		return 0, false
	}
	for _, term := range o.Breakdown {
		if term.Sides != 20 || len(term.Rolls) == 0 {
			continue
		}
		if len(term.Kept) == 1 {
			return term.Kept[0], true
		}
		if len(term.Rolls) == 1 {
			return term.Rolls[0], true
		}
	}
	return 0, false
}

// Evaluator parses, rolls and checks dice formulas
type Evaluator struct {
	roller Roller
}

// NewEvaluator creates an evaluator rolling with roller
func NewEvaluator(roller Roller) *Evaluator {
	if roller == nil {
		panic("roller is required")
	}
	return &Evaluator{roller: roller}
}

// Validate parses formula without rolling. Variables are treated as 0.
func (e *Evaluator) Validate(formula string) error {
	_, err := parseFormula(Substitute(formula, nil))
	return err
}

// Evaluate rolls formula with vars substituted. A malformed formula is an
// evaluation error; unresolved variables evaluate to 0.
func (e *Evaluator) Evaluate(formula string, vars Variables, opts *Options) (*Outcome, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Target != nil && !opts.Operator.Valid() {
		return nil, dnderr.Evaluationf("invalid comparison operator %q", opts.Operator)
	}

	primary, err := e.evaluateOnce(formula, vars, opts)
	if err != nil {
		return nil, err
	}

	switch opts.Reroll {
	case "", RerollNone:
		return primary, nil
	case RerollBestOfTwo, RerollWorstOfTwo:
	default:
		return nil, dnderr.Evaluationf("unknown reroll strategy %q", opts.Reroll)
	}

	secondary, err := e.evaluateOnce(formula, vars, opts)
	if err != nil {
		log.Printf("DiceEvaluator: secondary roll of %q failed, keeping primary: %v", formula, err)
		return primary, nil
	}

	keep, drop := primary, secondary
	if opts.Reroll == RerollBestOfTwo && secondary.Total > primary.Total {
		keep, drop = secondary, primary
	}
	if opts.Reroll == RerollWorstOfTwo && secondary.Total < primary.Total {
		keep, drop = secondary, primary
	}
	keep.Discarded = drop
	return keep, nil
}

func (e *Evaluator) evaluateOnce(formula string, vars Variables, opts *Options) (*Outcome, error) {
	expr := strings.TrimSpace(Substitute(formula, vars))
	if opts.Modifier > 0 {
		expr += "+" + strconv.Itoa(opts.Modifier)
	} else if opts.Modifier < 0 {
		expr += "-" + strconv.Itoa(-opts.Modifier)
	}

	root, err := parseFormula(expr)
	if err != nil {
		return nil, err
	}

	st := &evalState{roller: e.roller}
	total, err := root.eval(st)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Formula:   expr,
		Total:     total,
		Breakdown: st.breakdown,
	}
	if opts.Target != nil {
		target := *opts.Target
		success := opts.Operator.Compare(total, target)
		outcome.Formula = "{" + expr + "}cs" + string(opts.Operator) + strconv.Itoa(target)
		outcome.Success = &success
		outcome.Operator = opts.Operator
		outcome.Target = &target
	}
	return outcome, nil
}

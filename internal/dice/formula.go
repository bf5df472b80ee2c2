package dice

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

const maxDiceCount = 1000

// Term is one rolled dice group or constant in an evaluated formula
type Term struct {
	Expression string `json:"expression"`
	Sides      int    `json:"sides,omitempty"`
	Rolls      []int  `json:"rolls,omitempty"`
	Kept       []int  `json:"kept,omitempty"`
	Value      int    `json:"value"`
}

// node is a parsed formula element
type node interface {
	eval(st *evalState) (int, error)
}

type evalState struct {
	roller    Roller
	breakdown []Term
}

type numberNode struct {
	value int
}

func (n numberNode) eval(st *evalState) (int, error) {
	st.breakdown = append(st.breakdown, Term{Expression: strconv.Itoa(n.value), Value: n.value})
	return n.value, nil
}

type keepMode int

const (
	keepAll keepMode = iota
	keepHighest
	keepLowest
)

type diceNode struct {
	count int
	sides int
	keep  keepMode
	keepN int
	text  string
}

func (n diceNode) eval(st *evalState) (int, error) {
	result, err := st.roller.Roll(n.count, n.sides, 0)
	if err != nil {
		return 0, dnderr.WrapWithCode(err, dnderr.CodeEvaluation, fmt.Sprintf("failed to roll %s", n.text))
	}

	kept := result.Rolls
	if n.keep != keepAll {
		sorted := make([]int, len(result.Rolls))
		copy(sorted, result.Rolls)
		if n.keep == keepHighest {
			sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
		} else {
			sort.Ints(sorted)
		}
		keepN := n.keepN
		if keepN > len(sorted) {
			keepN = len(sorted)
		}
		kept = sorted[:keepN]
	}

	value := 0
	for _, r := range kept {
		value += r
	}

	term := Term{
		Expression: n.text,
		Sides:      n.sides,
		Rolls:      result.Rolls,
		Value:      value,
	}
	if n.keep != keepAll {
		term.Kept = kept
	}
	st.breakdown = append(st.breakdown, term)
	return value, nil
}

type negNode struct {
	inner node
}

func (n negNode) eval(st *evalState) (int, error) {
	v, err := n.inner.eval(st)
	return -v, err
}

type binaryNode struct {
	op          byte
	left, right node
}

func (n binaryNode) eval(st *evalState) (int, error) {
	l, err := n.left.eval(st)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(st)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 {
			return 0, dnderr.Evaluationf("division by zero")
		}
		return l / r, nil
	}
	return 0, dnderr.Evaluationf("unknown operator %q", n.op)
}

// parser is a recursive descent parser over a substituted formula
type parser struct {
	src string
	pos int
}

func parseFormula(src string) (node, error) {
	if strings.TrimSpace(src) == "" {
		return nil, dnderr.Evaluationf("empty formula")
	}
	p := &parser{src: src}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos])
	}
	return n, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return dnderr.Evaluationf("malformed formula %q at %d: %s", p.src, p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) expr() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		c := p.peek()
		if c != '+' && c != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: c, left: left, right: right}
	}
}

func (p *parser) term() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		c := p.peek()
		if c != '*' && c != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: c, left: left, right: right}
	}
}

func (p *parser) unary() (node, error) {
	switch p.peek() {
	case '-':
		p.pos++
		inner, err := p.unary()
		if err != nil {
			return nil, err
		}
		return negNode{inner: inner}, nil
	case '+':
		p.pos++
		return p.unary()
	}
	return p.primary()
}

func (p *parser) primary() (node, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, p.errorf("missing closing parenthesis")
		}
		p.pos++
		return inner, nil
	case c == 'd' || c == 'D':
		start := p.pos
		return p.dice(1, start)
	case isDigit(c):
		start := p.pos
		n, err := p.number()
		if err != nil {
			return nil, err
		}
		if p.pos < len(p.src) && (p.src[p.pos] == 'd' || p.src[p.pos] == 'D') {
			return p.dice(n, start)
		}
		return numberNode{value: n}, nil
	case c == 0:
		return nil, p.errorf("unexpected end of formula")
	}
	return nil, p.errorf("unexpected %q", c)
}

// dice parses the "dX[kh|kl N]" suffix; p.pos points at the 'd'
func (p *parser) dice(count, start int) (node, error) {
	p.pos++
	var sides int
	switch {
	case p.pos < len(p.src) && p.src[p.pos] == '%':
		p.pos++
		sides = 100
	case p.pos < len(p.src) && isDigit(p.src[p.pos]):
		n, err := p.number()
		if err != nil {
			return nil, err
		}
		sides = n
	default:
		return nil, p.errorf("dice term needs a number of sides")
	}

	if count < 1 || count > maxDiceCount {
		return nil, p.errorf("dice count %d out of range", count)
	}
	if sides < 1 {
		return nil, p.errorf("dice sides must be positive")
	}

	n := diceNode{count: count, sides: sides, keep: keepAll}
	if p.pos < len(p.src) && (p.src[p.pos] == 'k' || p.src[p.pos] == 'K') {
		p.pos++
		n.keep = keepHighest
		if p.pos < len(p.src) {
			switch p.src[p.pos] {
			case 'h', 'H':
				p.pos++
			case 'l', 'L':
				p.pos++
				n.keep = keepLowest
			}
		}
		n.keepN = 1
		if p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			keep, err := p.number()
			if err != nil {
				return nil, err
			}
			n.keepN = keep
		}
		if n.keepN < 1 {
			return nil, p.errorf("keep count must be positive")
		}
	}
	n.text = strings.TrimSpace(p.src[start:p.pos])
	return n, nil
}

func (p *parser) number() (int, error) {
	start := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return 0, p.errorf("number %s out of range", p.src[start:p.pos])
	}
	return n, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

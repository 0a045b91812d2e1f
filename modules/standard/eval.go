// Package standard provides infix expression evaluation for the standard
// calculator: + - * / % ^ with parentheses and unary minus.
package standard

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/example/modular-calculator-demo/domain/calc"
)

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
	tokenLeftParen
	tokenRightParen
)

type token struct {
	kind  tokenKind
	value float64
	op    byte
}

// tokenize splits an expression into number, operator and parenthesis tokens.
func tokenize(expr string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(expr) {
		ch := expr[i]
		switch {
		case ch == ' ' || ch == '\t':
			i++
		case ch >= '0' && ch <= '9' || ch == '.':
			j := i
			dots := 0
			for j < len(expr) && (expr[j] >= '0' && expr[j] <= '9' || expr[j] == '.') {
				if expr[j] == '.' {
					dots++
				}
				j++
			}
			if dots > 1 {
				return nil, calc.NewParseError(fmt.Sprintf("malformed number %q", expr[i:j]))
			}
			v, err := strconv.ParseFloat(expr[i:j], 64)
			if err != nil {
				return nil, calc.NewParseError(fmt.Sprintf("malformed number %q", expr[i:j]))
			}
			tokens = append(tokens, token{kind: tokenNumber, value: v})
			i = j
		case strings.IndexByte("+-*/%^", ch) >= 0:
			tokens = append(tokens, token{kind: tokenOperator, op: ch})
			i++
		case ch == '(':
			tokens = append(tokens, token{kind: tokenLeftParen})
			i++
		case ch == ')':
			tokens = append(tokens, token{kind: tokenRightParen})
			i++
		default:
			r := rune(ch)
			if unicode.IsLetter(r) {
				return nil, calc.NewParseError("Please use numbers only")
			}
			return nil, calc.NewParseError(fmt.Sprintf("unexpected character %q", string(ch)))
		}
	}
	if len(tokens) == 0 {
		return nil, calc.NewParseError("empty expression")
	}
	return tokens, nil
}

// parser evaluates a token stream with a small recursive descent grammar:
//
//	expr   -> term   { (+|-) term }
//	term   -> unary  { (*|/|%) unary }
//	unary  -> - unary | power
//	power  -> atom   [ ^ unary ]
//	atom   -> number | ( expr )
type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokenOperator || (t.op != '+' && t.op != '-') {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if t.op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokenOperator || (t.op != '*' && t.op != '/' && t.op != '%') {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		switch t.op {
		case '*':
			left *= right
		case '/':
			if right == 0 {
				return 0, calc.ErrDivisionByZero
			}
			left /= right
		case '%':
			if right == 0 {
				return 0, calc.ErrDivisionByZero
			}
			left = math.Mod(left, right)
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	if t, ok := p.peek(); ok && t.kind == tokenOperator && t.op == '-' {
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (float64, error) {
	base, err := p.parseAtom()
	if err != nil {
		return 0, err
	}
	if t, ok := p.peek(); ok && t.kind == tokenOperator && t.op == '^' {
		p.pos++
		// Exponentiation is right-associative.
		exp, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	}
	return base, nil
}

func (p *parser) parseAtom() (float64, error) {
	t, ok := p.next()
	if !ok {
		return 0, calc.NewParseError("unexpected end of expression")
	}
	switch t.kind {
	case tokenNumber:
		return t.value, nil
	case tokenLeftParen:
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		closing, ok := p.next()
		if !ok || closing.kind != tokenRightParen {
			return 0, calc.ErrUnbalancedParentheses
		}
		return v, nil
	case tokenRightParen:
		return 0, calc.ErrUnbalancedParentheses
	default:
		return 0, calc.NewParseError("unexpected operator")
	}
}

// Evaluate parses and evaluates an infix arithmetic expression.
func Evaluate(expression string) (float64, error) {
	tokens, err := tokenize(expression)
	if err != nil {
		return 0, err
	}
	p := &parser{tokens: tokens}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.tokens) {
		if t, _ := p.peek(); t.kind == tokenRightParen {
			return 0, calc.ErrUnbalancedParentheses
		}
		return 0, calc.NewParseError("trailing input after expression")
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, calc.NewDomainError("result is not a finite number")
	}
	return v, nil
}

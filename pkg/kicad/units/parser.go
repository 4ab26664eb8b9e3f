package units

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// lengthExpr is a number with an optional unit suffix
type lengthExpr struct {
	Value float64 `parser:"@Number"`
	Unit  string  `parser:"@Unit?"`
}

// pointExpr is two lengths separated by a comma
type pointExpr struct {
	X *lengthExpr `parser:"@@ Comma"`
	Y *lengthExpr `parser:"@@"`
}

// Parser reads user-entered lengths. Numbers without a suffix are taken in
// the parser's default unit.
type Parser struct {
	DefaultUnit Unit

	lengths *participle.Parser[lengthExpr]
	points  *participle.Parser[pointExpr]
}

// NewParser creates a length parser with the given default unit
func NewParser(defaultUnit Unit) (*Parser, error) {
	if _, ok := nmPerUnit[defaultUnit]; !ok {
		return nil, fmt.Errorf("unknown default unit '%s'", defaultUnit)
	}

	lengths, err := participle.Build[lengthExpr](
		participle.Lexer(LengthLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build length parser: %w", err)
	}

	points, err := participle.Build[pointExpr](
		participle.Lexer(LengthLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build point parser: %w", err)
	}

	return &Parser{DefaultUnit: defaultUnit, lengths: lengths, points: points}, nil
}

// ParseLength converts text like "0.6mm" to nanometres
func (p *Parser) ParseLength(s string) (int, error) {
	expr, err := p.lengths.ParseString("", s)
	if err != nil {
		return 0, fmt.Errorf("invalid length '%s': %w", s, err)
	}
	return p.toNanometres(expr)
}

// ParsePoint converts text like "10mm, 5mm" to a nanometre coordinate pair
func (p *Parser) ParsePoint(s string) (x, y int, err error) {
	expr, err := p.points.ParseString("", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid point '%s': %w", s, err)
	}
	if x, err = p.toNanometres(expr.X); err != nil {
		return 0, 0, err
	}
	if y, err = p.toNanometres(expr.Y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (p *Parser) toNanometres(expr *lengthExpr) (int, error) {
	u := p.DefaultUnit
	if expr.Unit != "" {
		parsed, err := ParseUnit(expr.Unit)
		if err != nil {
			return 0, err
		}
		u = parsed
	}
	return To(expr.Value, u), nil
}

// ParseLength parses s with millimetres as the default unit
func ParseLength(s string) (int, error) {
	p, err := NewParser(Millimetre)
	if err != nil {
		return 0, err
	}
	return p.ParseLength(s)
}

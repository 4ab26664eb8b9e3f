package viapattern

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pattern selects the geometric rule spacing the vias of a group
type Pattern string

const (
	Perpendicular Pattern = "Perpendicular"
	Diagonal      Pattern = "Diagonal"
	Stagger       Pattern = "Stagger"
)

// Patterns lists the supported patterns in display order
var Patterns = []Pattern{Perpendicular, Diagonal, Stagger}

// ParsePattern converts user text to a Pattern, ignoring case.
func ParsePattern(name string) (Pattern, error) {
	p := Pattern(titleCase(name))
	if p.valid() {
		return p, nil
	}
	return "", fmt.Errorf("'%s' is not a valid Pattern", name)
}

func (p Pattern) valid() bool {
	switch p {
	case Perpendicular, Diagonal, Stagger:
		return true
	}
	return false
}

func (p Pattern) String() string {
	return string(p)
}

// Direction is the axis along which a group advances
type Direction string

const (
	Horizontal Direction = "Horizontal"
	Vertical   Direction = "Vertical"
)

// Directions lists the supported directions
var Directions = []Direction{Horizontal, Vertical}

// ParseDirection converts user text to a Direction, ignoring case.
func ParseDirection(name string) (Direction, error) {
	d := Direction(titleCase(name))
	if d.valid() {
		return d, nil
	}
	return "", fmt.Errorf("'%s' is not a valid Direction", name)
}

func (d Direction) valid() bool {
	return d == Horizontal || d == Vertical
}

func (d Direction) String() string {
	return string(d)
}

// RotateDirection is the sign of a quarter turn
type RotateDirection int

const (
	Clockwise        RotateDirection = 1
	CounterClockwise RotateDirection = -1
)

// ParseRotateDirection accepts "cw", "ccw" and their long forms.
func ParseRotateDirection(name string) (RotateDirection, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cw", "clockwise":
		return Clockwise, nil
	case "ccw", "counterclockwise", "counter-clockwise", "anticlockwise":
		return CounterClockwise, nil
	}
	return 0, fmt.Errorf("'%s' is not a valid RotateDirection", name)
}

func (r RotateDirection) String() string {
	switch r {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	}
	return fmt.Sprintf("RotateDirection(%d)", int(r))
}

// titleCase upper-cases the first letter of each word and lower-cases the rest
func titleCase(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

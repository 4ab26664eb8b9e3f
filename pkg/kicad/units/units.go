// Package units converts between KiCad's native integer nanometres and the
// measurement units a user types or reads (millimetres, mils, inches).
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is a length unit accepted in user input
type Unit string

const (
	Nanometre  Unit = "nm"
	Micrometre Unit = "um"
	Millimetre Unit = "mm"
	Mil        Unit = "mil"
	Inch       Unit = "in"
)

// Nanometres per unit
var nmPerUnit = map[Unit]float64{
	Nanometre:  1,
	Micrometre: 1e3,
	Millimetre: 1e6,
	Mil:        25400,
	Inch:       25.4e6,
}

// Digits after the decimal point when formatting, enough to be exact for
// every unit except mils and inches.
var displayPrecision = map[Unit]int{
	Nanometre:  0,
	Micrometre: 3,
	Millimetre: 6,
	Mil:        4,
	Inch:       6,
}

// ParseUnit maps a unit suffix, in any case and with common aliases, to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nm":
		return Nanometre, nil
	case "um", "µm":
		return Micrometre, nil
	case "mm":
		return Millimetre, nil
	case "mil", "mils", "thou":
		return Mil, nil
	case "in", "inch", "\"":
		return Inch, nil
	}
	return "", fmt.Errorf("unknown unit '%s'", s)
}

// FromMM converts millimetres to nanometres
func FromMM(mm float64) int {
	return To(mm, Millimetre)
}

// ToMM converts nanometres to millimetres
func ToMM(nm int) float64 {
	return From(nm, Millimetre)
}

// FromMils converts mils to nanometres
func FromMils(mils float64) int {
	return To(mils, Mil)
}

// ToMils converts nanometres to mils
func ToMils(nm int) float64 {
	return From(nm, Mil)
}

// To converts a value in unit u to nanometres, rounding to the nearest integer.
func To(value float64, u Unit) int {
	return int(math.Round(value * nmPerUnit[u]))
}

// From converts nanometres to a value in unit u.
func From(nm int, u Unit) float64 {
	factor, ok := nmPerUnit[u]
	if !ok {
		return math.NaN()
	}
	return float64(nm) / factor
}

// Format renders nanometres in unit u with the unit suffix, e.g. "0.6mm".
func Format(nm int, u Unit) string {
	prec, ok := displayPrecision[u]
	if !ok {
		u, prec = Nanometre, 0
	}
	s := strconv.FormatFloat(From(nm, u), 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s + string(u)
}

// FormatPoint renders a coordinate pair as "x, y" in unit u.
func FormatPoint(x, y int, u Unit) string {
	return Format(x, u) + ", " + Format(y, u)
}

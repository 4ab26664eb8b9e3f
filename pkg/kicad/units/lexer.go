package units

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// LengthLexer tokenizes lengths such as "0.6mm", "24 mil" or "1.5mm, -2mm"
var LengthLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t]+`},

	// Unit suffixes (case-insensitive); longer aliases first
	{Name: "Unit", Pattern: `(?i)(mils|mil|thou|inch|in|mm|nm|um|µm|")`},

	// Signed decimal numbers with optional exponent
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},

	// Coordinate separators
	{Name: "Comma", Pattern: `[,;]`},
})

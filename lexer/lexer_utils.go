package lexer

import (
	"strconv"
	"strings"
)

// isDigit/isAlpha/isAlphaNumeric are ASCII-only, matching the grammar's
// "ASCII digit" / "ASCII letter or _" scanning rules rather than the
// Unicode-aware unicode.IsLetter/IsDigit a general-purpose scanner might
// reach for.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// formatNumber computes the canonical literal text for a NUMBER token's
// lexeme: always a decimal point, no redundant trailing zeros beyond the
// one required digit after the point.
func formatNumber(lexeme string) string {
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return lexeme
	}
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

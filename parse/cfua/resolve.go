package cfua

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotNumeric = errors.New("not a numeric literal")

// resolveKeyword maps the reserved words to their values.
func resolveKeyword(s string) (Value, bool) {
	switch s {
	case "true":
		return Boolean(true), true
	case "false":
		return Boolean(false), true
	case "nan":
		return Float(math.NaN()), true
	case "inf":
		return Float(math.Inf(+1)), true
	case "-inf":
		return Float(math.Inf(-1)), true
	}
	return Value{}, false
}

// resolveLiteral turns the text of a scalar or array element into a value.
// Keywords win over numbers; a '.' selects a decimal float; otherwise a
// b/h/o marker after the optional sign selects the radix of an integer.
func resolveLiteral(s string) (Value, error) {
	if v, ok := resolveKeyword(s); ok {
		return v, nil
	}
	if strings.Contains(s, ".") {
		f, err := parseDecimalFloat(s)
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	}
	i, err := parseRadixInt(s)
	if err != nil {
		return Value{}, err
	}
	return Integer(i), nil
}

func parseDecimalFloat(s string) (float64, error) {
	body := strings.TrimPrefix(s, "-")
	whole, frac, ok := strings.Cut(body, ".")
	if !ok || !isDigits(whole, 10) || !isDigits(frac, 10) {
		return 0, errNotNumeric
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return f, nil
}

func parseRadixInt(s string) (int64, error) {
	sign := ""
	body := s
	if strings.HasPrefix(body, "-") {
		sign = "-"
		body = body[1:]
	}
	base := 10
	if body != "" {
		switch body[0] {
		case 'b':
			base = 2
		case 'h':
			base = 16
		case 'o':
			base = 8
		}
		if base != 10 {
			body = body[1:]
		}
	}
	if !isDigits(body, base) {
		return 0, errNotNumeric
	}
	return strconv.ParseInt(sign+body, base, 64)
}

// isDigits reports whether s is a non-empty run of digits valid in base.
func isDigits(s string, base int) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'a' && c <= 'f':
			d = int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = int(c-'A') + 10
		default:
			return false
		}
		if d >= base {
			return false
		}
	}
	return true
}

// formatFloat always produces text that resolves back to a Float.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, +1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func isNameStart(c rune) bool {
	return c >= 'a' && c <= 'z'
}

func isNameChar(c rune) bool {
	return isNameStart(c) || c == '-'
}

// validName reports whether s matches [a-z][a-z-]*.
func validName(s string) bool {
	for i, c := range s {
		if i == 0 && !isNameStart(c) {
			return false
		}
		if !isNameChar(c) {
			return false
		}
	}
	return s != ""
}

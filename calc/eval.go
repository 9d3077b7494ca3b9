package calc

import (
	"math"
	"strconv"
)

// ErrToken is the result text shown for any expression that cannot be evaluated.
const ErrToken = "Err"

// Evaluate interprets expr as exactly "number operator number" and returns the
// formatted result, or ErrToken.
//
// Whitespace may precede each of the three tokens. Nothing may follow the
// second number. Division by zero yields 0.
func Evaluate(expr string) string {
	s := scanner{src: expr}

	a, ok := s.number()
	if !ok {
		return ErrToken
	}
	op, ok := s.operator()
	if !ok {
		return ErrToken
	}
	b, ok := s.number()
	if !ok {
		return ErrToken
	}
	if !s.eof() {
		return ErrToken
	}

	var v float64
	switch op {
	case '+':
		v = a + b
	case '-':
		v = a - b
	case '*':
		v = a * b
	case '/':
		if b != 0 {
			v = a / b
		}
	default:
		return ErrToken
	}
	return FormatResult(v)
}

// FormatResult renders v in fixed notation with six fractional digits.
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

type scanner struct {
	src string
	i   int
}

func (s *scanner) eof() bool { return s.i >= len(s.src) }

func (s *scanner) skipSpace() {
	for s.i < len(s.src) && isSpace(s.src[s.i]) {
		s.i++
	}
}

// operator reads one non-whitespace byte. Multi-byte runes never match an
// operator, so reading a single byte is enough to reject them.
func (s *scanner) operator() (byte, bool) {
	s.skipSpace()
	if s.eof() {
		return 0, false
	}
	c := s.src[s.i]
	s.i++
	return c, true
}

func (s *scanner) number() (float64, bool) {
	s.skipSpace()
	end, ok := scanNumber(s.src, s.i)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s.src[s.i:end], 64)
	if err != nil {
		return 0, false
	}
	s.i = end
	return v, true
}

// scanNumber returns the end of the decimal literal starting at i:
// [+-]? (digits [. digits?]? | . digits) ([eE] [+-]? digits)?
//
// An exponent marker that is not followed by digits invalidates the literal.
func scanNumber(s string, i int) (int, bool) {
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mantissa := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k == j {
			return 0, false
		}
		i = k
	}
	return i, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

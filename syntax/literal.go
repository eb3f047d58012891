package syntax

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// decodeString returns the value of a single Python string literal as it
// appears in source, prefix and quotes included. Byte strings and f-strings
// are not plain text values and yield ok == false.
func decodeString(lit string) (string, bool) {
	i := strings.IndexAny(lit, `'"`)
	if i < 0 {
		return "", false
	}

	prefix := strings.ToLower(lit[:i])
	if strings.ContainsAny(prefix, "bf") {
		return "", false
	}

	body := lit[i:]

	quote := body[:1]
	if len(body) >= 6 && (strings.HasPrefix(body, `"""`) || strings.HasPrefix(body, `'''`)) {
		quote = body[:3]
	}

	if len(body) < 2*len(quote) || !strings.HasSuffix(body, quote) {
		return "", false
	}

	body = body[len(quote) : len(body)-len(quote)]

	if strings.Contains(prefix, "r") {
		return body, true
	}

	return unescape(body), true
}

// unescape interprets the backslash escapes of a non-raw Python string.
// Unknown escapes are kept verbatim, as Python does.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)

			continue
		}

		i++

		switch e := s[i]; e {
		case '\n':
			// line continuation
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		case '\\', '\'', '"':
			b.WriteByte(e)
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')

		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i
			for j < len(s) && j < i+3 && s[j] >= '0' && s[j] <= '7' {
				j++
			}

			v, _ := strconv.ParseUint(s[i:j], 8, 32)
			b.WriteRune(rune(v))

			i = j - 1

		case 'x', 'u', 'U':
			width := map[byte]int{'x': 2, 'u': 4, 'U': 8}[e]
			if i+width >= len(s) {
				b.WriteByte('\\')
				b.WriteByte(e)

				continue
			}

			v, err := strconv.ParseUint(s[i+1:i+1+width], 16, 32)
			if err != nil || !utf8.ValidRune(rune(v)) {
				b.WriteByte('\\')
				b.WriteByte(e)

				continue
			}

			b.WriteRune(rune(v))

			i += width

		default:
			b.WriteByte('\\')
			b.WriteByte(e)
		}
	}

	return b.String()
}

// canonicalInt renders an integer literal in base 10. Imaginary literals
// are returned in lower case.
func canonicalInt(lit string) string {
	s := strings.ToLower(strings.ReplaceAll(lit, "_", ""))

	if strings.HasSuffix(s, "j") {
		return s
	}

	if strings.HasSuffix(s, "l") {
		s = s[:len(s)-1]
	}

	if len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9' {
		s = strings.TrimLeft(s, "0")
		if s == "" {
			return "0"
		}
	}

	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return lit
	}

	return v.String()
}

// canonicalFloat renders a float literal the way Python's repr does.
func canonicalFloat(lit string) string {
	s := strings.ToLower(strings.ReplaceAll(lit, "_", ""))

	if strings.HasSuffix(s, "j") {
		return s
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !math.IsInf(f, 0) {
		return lit
	}

	return FormatFloat(f)
}

// FormatFloat formats f as Python's repr(float) would: the shortest
// representation that round-trips, positional when the decimal exponent is
// in [-4, 16), scientific with a signed two-digit exponent otherwise.
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)

	mant, exp, _ := strings.Cut(sci, "e")

	x, _ := strconv.Atoi(exp)
	if x >= -4 && x < 16 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.ContainsAny(s, ".") {
			s += ".0"
		}

		return s
	}

	sign := "+"
	if x < 0 {
		sign, x = "-", -x
	}

	return fmt.Sprintf("%se%s%02d", mant, sign, x)
}

// Quote returns s as a Python string literal, quoted the way repr(str)
// would quote it.
func Quote(s string) string {
	q := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteRune(q)

	for _, r := range s {
		switch {
		case r == q || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}

	b.WriteRune(q)

	return b.String()
}

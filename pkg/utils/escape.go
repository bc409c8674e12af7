package utils

import (
	"strconv"
	"strings"
)

// EscapeString escapes s for use inside a single-quoted ClickHouse string literal.
// Quotes and backslashes are backslash-escaped and the usual control characters are
// written as escape sequences. Any other non-printable byte is written as \xHH.
func EscapeString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\'':
			sb.WriteString(`\'`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			// multi-byte UTF-8 sequences pass through untouched
			if c < 0x20 || c == 0x7f {
				sb.WriteString(`\x`)
				if c < 0x10 {
					sb.WriteByte('0')
				}
				sb.WriteString(strconv.FormatUint(uint64(c), 16))
				continue
			}
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

// QuoteString returns s as a single-quoted, escaped ClickHouse string literal.
//
// Example:
//
//	QuoteString("it's") // 'it\'s'
func QuoteString(s string) string {
	return "'" + EscapeString(s) + "'"
}

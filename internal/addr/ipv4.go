package addr

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// IPv4From assembles an [IPv4] from its four octets, most significant first.
func IPv4From(a, b, c, d byte) IPv4 {
	return IPv4(binary.BigEndian.Uint32([]byte{a, b, c, d}))
}

// ParseIPv4 parses an IPv4 address literal.
//
// Besides the usual dot-decimal notation, the literal may be written in one of the legacy partial forms:
//   - a.b.c.d, each part is a single octet
//   - a.b.c, where c fills the low 16 bits
//   - a.b, where b fills the low 24 bits
//   - a, where a is the whole 32-bit value
//
// Each part is decimal by default, hexadecimal if prefixed with 0x, and octal if prefixed with 0 or 0o.
// A failure is always reported as a [*ParseError].
func ParseIPv4(s string) (IPv4, error) {
	if s == "" {
		return 0, newParseError(s, "", ErrSyntax)
	}

	parts := strings.Split(s, ".")
	if len(parts) > len(partWidths) {
		return 0, newParseError(s, "", ErrTooManyParts)
	}

	// The last part absorbs all the octets not taken by the preceding ones
	widths := partWidths[len(parts)-1]

	var ip uint32
	for i, p := range parts {
		n, err := parsePart(p, widths[i])
		if err != nil {
			return 0, newParseError(s, p, err)
		}
		ip = ip<<widths[i] | uint32(n)
	}
	return IPv4(ip), nil
}

// Bit widths of each part for the forms with one, two, three and four parts.
var partWidths = [][]int{
	{32},
	{8, 24},
	{8, 8, 16},
	{8, 8, 8, 8},
}

func parsePart(p string, bitSize int) (uint64, error) {
	digits, base := splitBase(p)
	if digits == "" {
		return 0, ErrSyntax
	}

	for _, r := range digits {
		if !isDigit(r, base) {
			return 0, ErrSyntax
		}
	}

	n, err := strconv.ParseUint(digits, base, bitSize)
	if err != nil {
		// Only a range error is possible with the digits already validated
		return 0, ErrRange
	}
	return n, nil
}

func splitBase(p string) (digits string, base int) {
	switch {
	case len(p) > 1 && p[0] == '0' && (p[1] == 'x' || p[1] == 'X'):
		return p[2:], 16
	case len(p) > 1 && p[0] == '0' && (p[1] == 'o' || p[1] == 'O'):
		return p[2:], 8
	case len(p) > 1 && p[0] == '0':
		return p[1:], 8
	default:
		return p, 10
	}
}

func isDigit(r rune, base int) bool {
	switch base {
	case 8:
		return r >= '0' && r <= '7'
	case 16:
		return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
	default:
		return r >= '0' && r <= '9'
	}
}

// IPv4 represents an IP version 4 address as a 32-bit unsigned integer.
type IPv4 uint32

// Octets splits the address into its four octets in network byte order.
func (ip IPv4) Octets() [4]byte {
	var o [4]byte
	binary.BigEndian.PutUint32(o[:], uint32(ip))
	return o
}

// String presents the address in dot-decimal notation.
func (ip IPv4) String() string {
	o := ip.Octets()
	return joinParts(uint32(o[0]), uint32(o[1]), uint32(o[2]), uint32(o[3]))
}

func (ip IPv4) MarshalText() ([]byte, error) {
	return []byte(ip.String()), nil
}

func (ip *IPv4) UnmarshalText(text []byte) error {
	parsed, err := ParseIPv4(string(text))
	if err != nil {
		return err
	}
	*ip = parsed
	return nil
}

func joinParts(parts ...uint32) string {
	var b strings.Builder
	for i, p := range parts {
		if i != 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(uint64(p), 10))
	}
	return b.String()
}

package addr

import (
	"iter"
	"slices"
	"strconv"
)

// Render presents the address in each of the supported [Formats].
func Render(ip IPv4, ops ...RenderOption) Record {
	r := renderer{input: ip.String()}
	for _, op := range ops {
		op(&r)
	}

	o := ip.Octets()
	a, b, c, d := uint32(o[0]), uint32(o[1]), uint32(o[2]), uint32(o[3])

	dotted := joinParts(a, b, c, d)
	decimal := strconv.FormatUint(uint64(ip), 10)

	return Record{
		{FormatOriginal, r.input},
		{Format32Bit, decimal},
		{FormatDotted, dotted},
		{FormatDecimal, decimal},
		{FormatHex, "0x" + strconv.FormatUint(uint64(ip), 16)},
		{FormatOctal, r.octal(uint32(ip))},
		{FormatPartial1, decimal},
		{FormatPartial2, joinParts(a, b<<16|c<<8|d)},
		{FormatPartial3, joinParts(a, b, c<<8|d)},
		{FormatPartial4, dotted},
	}
}

// WithInput records the literal the address was parsed from.
// Without it, the original input is taken to be the dot-decimal form.
func WithInput(input string) RenderOption {
	return func(r *renderer) {
		r.input = input
	}
}

func WithOctalStyle(s OctalStyle) RenderOption {
	return func(r *renderer) {
		r.octalStyle = s
	}
}

type RenderOption func(*renderer)

type renderer struct {
	input      string
	octalStyle OctalStyle
}

func (r *renderer) octal(n uint32) string {
	digits := strconv.FormatUint(uint64(n), 8)
	switch r.octalStyle {
	case OctalLegacy:
		if n == 0 {
			return digits
		}
		return "0" + digits
	default:
		return "0o" + digits
	}
}

// Field is a single rendered representation of an address.
type Field struct {
	Format Format
	Value  string
}

// Record holds the representations of an address, ordered as in [Formats].
type Record []Field

// Get looks up the representation in the specified format.
func (r Record) Get(f Format) (string, bool) {
	i := slices.IndexFunc(r, func(field Field) bool {
		return field.Format == f
	})
	if i == -1 {
		return "", false
	}
	return r[i].Value, true
}

// All iterates over the representations in order.
func (r Record) All() iter.Seq2[Format, string] {
	return func(yield func(Format, string) bool) {
		for _, field := range r {
			if !yield(field.Format, field.Value) {
				return
			}
		}
	}
}

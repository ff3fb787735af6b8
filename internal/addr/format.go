package addr

import (
	"errors"
	"slices"
	"strings"
)

const (
	FormatOriginal Format = iota + 1
	Format32Bit
	FormatDotted
	FormatDecimal
	FormatHex
	FormatOctal
	FormatPartial1
	FormatPartial2
	FormatPartial3
	FormatPartial4
)

const (
	formatMin = FormatOriginal
	formatMax = FormatPartial4
)

var formats = []string{
	FormatOriginal: "original_input",
	Format32Bit:    "32_bit_integer",
	FormatDotted:   "dotted_decimal",
	FormatDecimal:  "decimal",
	FormatHex:      "hex",
	FormatOctal:    "octal",
	FormatPartial1: "partial_1",
	FormatPartial2: "partial_2",
	FormatPartial3: "partial_3",
	FormatPartial4: "partial_4",
}

// Formats lists all supported formats in the order they appear in a [Record].
func Formats() []Format {
	all := make([]Format, 0, formatMax-formatMin+1)
	for f := formatMin; f <= formatMax; f++ {
		all = append(all, f)
	}
	return all
}

func ParseFormat(format string) (Format, error) {
	i := slices.IndexFunc(formats, func(s string) bool {
		return s != "" && strings.EqualFold(s, format)
	})
	if i == -1 {
		return 0, errors.New("unknown format")
	}
	return Format(i), nil
}

// Format names a textual representation of an address.
type Format int

func (f Format) String() string {
	if f >= formatMin && f <= formatMax {
		return formats[f]
	}
	panic("unknown format")
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	format, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = format
	return nil
}

const (
	// OctalModern prefixes octal numbers with 0o.
	OctalModern OctalStyle = iota

	// OctalLegacy prefixes octal numbers with a single 0, as understood by legacy address parsers.
	OctalLegacy
)

var octalStyles = []string{
	OctalModern: "0o",
	OctalLegacy: "legacy",
}

// OctalStyle selects how octal numbers are written.
type OctalStyle int

func (s OctalStyle) String() string {
	text, err := s.MarshalText()
	if err != nil {
		return ""
	}
	return string(text)
}

func (s OctalStyle) MarshalText() ([]byte, error) {
	if s < OctalModern || s > OctalLegacy {
		return nil, errors.New("unknown octal style")
	}
	return []byte(octalStyles[s]), nil
}

func (s *OctalStyle) UnmarshalText(text []byte) error {
	i := slices.IndexFunc(octalStyles, func(style string) bool {
		return strings.EqualFold(style, string(text))
	})
	if i == -1 {
		return errors.New("unknown octal style")
	}
	*s = OctalStyle(i)
	return nil
}

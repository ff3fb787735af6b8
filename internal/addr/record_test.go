package addr_test

import (
	"strconv"
	"strings"
	"testing"
	"testing/quick"

	"github.com/cerfical/ipconv/internal/addr"
	"github.com/stretchr/testify/suite"
)

func TestRecord(t *testing.T) {
	suite.Run(t, new(RecordTest))
}

type RecordTest struct {
	suite.Suite
}

func (t *RecordTest) TestRender() {
	tests := map[string]struct {
		input string
		want  map[addr.Format]string
	}{
		"renders a dot-decimal literal": {
			input: "192.168.1.1",
			want: map[addr.Format]string{
				addr.FormatOriginal: "192.168.1.1",
				addr.Format32Bit:    "3232235777",
				addr.FormatDotted:   "192.168.1.1",
				addr.FormatDecimal:  "3232235777",
				addr.FormatHex:      "0xc0a80101",
				addr.FormatOctal:    "0o30052000401",
				addr.FormatPartial1: "3232235777",
				addr.FormatPartial2: "192.11010305",
				addr.FormatPartial3: "192.168.257",
				addr.FormatPartial4: "192.168.1.1",
			},
		},

		"renders a two-part literal": {
			input: "192.201",
			want: map[addr.Format]string{
				addr.FormatOriginal: "192.201",
				addr.Format32Bit:    "3221225673",
				addr.FormatDotted:   "192.0.0.201",
				addr.FormatPartial2: "192.201",
				addr.FormatPartial3: "192.0.201",
			},
		},

		"renders zero": {
			input: "0",
			want: map[addr.Format]string{
				addr.Format32Bit:    "0",
				addr.FormatDotted:   "0.0.0.0",
				addr.FormatHex:      "0x0",
				addr.FormatOctal:    "0o0",
				addr.FormatPartial2: "0.0",
				addr.FormatPartial3: "0.0.0",
			},
		},

		"renders the largest address": {
			input: "4294967295",
			want: map[addr.Format]string{
				addr.Format32Bit:    "4294967295",
				addr.FormatDotted:   "255.255.255.255",
				addr.FormatHex:      "0xffffffff",
				addr.FormatOctal:    "0o37777777777",
				addr.FormatPartial2: "255.16777215",
				addr.FormatPartial3: "255.255.65535",
			},
		},

		"keeps the original input verbatim": {
			input: "0xC0.0250.257",
			want: map[addr.Format]string{
				addr.FormatOriginal: "0xC0.0250.257",
				addr.FormatDotted:   "192.168.1.1",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func() {
			ip, err := addr.ParseIPv4(test.input)
			t.Require().NoError(err)

			r := addr.Render(ip, addr.WithInput(test.input))
			for f, want := range test.want {
				got, ok := r.Get(f)
				t.Require().True(ok, f.String())
				t.Equal(want, got, f.String())
			}
		})
	}

	t.Run("lists every format in order", func() {
		var got []addr.Format
		for f := range addr.Render(0).All() {
			got = append(got, f)
		}
		t.Equal(addr.Formats(), got)
	})

	t.Run("uses dot-decimal notation as the default original input", func() {
		got, _ := addr.Render(addr.IPv4From(10, 0, 0, 1)).Get(addr.FormatOriginal)
		t.Equal("10.0.0.1", got)
	})

	t.Run("renders octal numbers in the legacy style", func() {
		r := addr.Render(addr.IPv4From(192, 168, 1, 1), addr.WithOctalStyle(addr.OctalLegacy))

		got, _ := r.Get(addr.FormatOctal)
		t.Equal("030052000401", got)
	})

	t.Run("renders zero in the legacy octal style as a single digit", func() {
		got, _ := addr.Render(0, addr.WithOctalStyle(addr.OctalLegacy)).Get(addr.FormatOctal)
		t.Equal("0", got)
	})
}

func (t *RecordTest) TestPartialForms() {
	t.Run("partial forms embed the low-order octets", func() {
		err := quick.Check(func(v uint32) bool {
			r := addr.Render(addr.IPv4(v))
			o := addr.IPv4(v).Octets()
			a, b, c, d := uint64(o[0]), uint64(o[1]), uint64(o[2]), uint64(o[3])

			p2, _ := r.Get(addr.FormatPartial2)
			p3, _ := r.Get(addr.FormatPartial3)
			p4, _ := r.Get(addr.FormatPartial4)
			dotted, _ := r.Get(addr.FormatDotted)

			return t.Equal(b<<16+c<<8+d, lastPart(t, p2)) &&
				t.Equal(c<<8+d, lastPart(t, p3)) &&
				t.Equal(strconv.FormatUint(a, 10), strings.Split(p2, ".")[0]) &&
				t.Equal(dotted, p4)
		}, nil)

		t.NoError(err)
	})

	t.Run("partial forms parse back to the same address", func() {
		err := quick.Check(func(v uint32) bool {
			r := addr.Render(addr.IPv4(v))
			for _, f := range []addr.Format{addr.FormatPartial1, addr.FormatPartial2, addr.FormatPartial3, addr.FormatPartial4} {
				s, _ := r.Get(f)

				got, err := addr.ParseIPv4(s)
				if !t.NoError(err) || !t.Equal(addr.IPv4(v), got) {
					return false
				}
			}
			return true
		}, nil)

		t.NoError(err)
	})

	t.Run("hexadecimal and octal forms parse back to the same address", func() {
		err := quick.Check(func(v uint32) bool {
			r := addr.Render(addr.IPv4(v), addr.WithOctalStyle(addr.OctalLegacy))
			hex, _ := r.Get(addr.FormatHex)
			oct, _ := r.Get(addr.FormatOctal)

			fromHex, err := addr.ParseIPv4(hex)
			if !t.NoError(err) {
				return false
			}

			fromOct, err := addr.ParseIPv4(oct)
			if !t.NoError(err) {
				return false
			}

			return t.Equal(addr.IPv4(v), fromHex) && t.Equal(addr.IPv4(v), fromOct)
		}, nil)

		t.NoError(err)
	})
}

func lastPart(t *RecordTest, s string) uint64 {
	parts := strings.Split(s, ".")
	n, err := strconv.ParseUint(parts[len(parts)-1], 10, 64)
	t.Require().NoError(err)
	return n
}

func (t *RecordTest) TestGet() {
	t.Run("reports a missing format", func() {
		_, ok := addr.Record{}.Get(addr.FormatHex)
		t.False(ok)
	})
}

package modulus

import (
	"strconv"
	"strings"
)

// Digits is a fixed-width vector of digit positions used as the operand of
// checksum arithmetic. Sort codes decompose into six positions (u0..u5) and
// account numbers into eight (a..h). Individual positions normally hold 0-9;
// weight vectors reuse the same type and may hold wider values such as 10.
type Digits []int

// ParseDigits decomposes a numeric string into one position per character.
// The string must be exactly width characters and contain only ASCII digits.
func ParseDigits(s string, width int) (Digits, error) {
	if len(s) != width {
		return nil, errWrongLength
	}
	d := make(Digits, width)
	for i := 0; i < width; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, errNotNumeric
		}
		d[i] = int(c - '0')
	}
	return d, nil
}

// Clone returns an independent copy. Sessions hand clones to rule evaluation
// so the caller-supplied digits stay recoverable between rules.
func (d Digits) Clone() Digits {
	out := make(Digits, len(d))
	copy(out, d)
	return out
}

// With returns a fresh vector with position pos replaced by val.
func (d Digits) With(pos, val int) Digits {
	out := d.Clone()
	out[pos] = val
	return out
}

// Overwrite returns a fresh vector whose positions are taken from lit, one
// character per position. Characters outside '0'-'9' become zero; lit is
// expected to be a trusted literal of the vector's width.
func (d Digits) Overwrite(lit string) Digits {
	out := make(Digits, len(d))
	for i := 0; i < len(out) && i < len(lit); i++ {
		if c := lit[i]; c >= '0' && c <= '9' {
			out[i] = int(c - '0')
		}
	}
	return out
}

// OverwriteList returns a fresh vector from a comma-separated literal list.
// The list form exists because a single position sometimes needs a value of
// 10 or more, which the per-character form cannot express.
func (d Digits) OverwriteList(lit string) Digits {
	parts := strings.Split(lit, ",")
	out := make(Digits, len(d))
	for i := 0; i < len(out) && i < len(parts); i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err == nil {
			out[i] = v
		}
	}
	return out
}

func (d Digits) String() string {
	var b strings.Builder
	for _, v := range d {
		if v > 9 {
			// fall back to the list form once a wide value appears
			return d.list()
		}
		b.WriteByte(byte('0' + v))
	}
	return b.String()
}

func (d Digits) list() string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// mustDigits builds a vector from a trusted literal, panicking on malformed
// input. Only used for package-level constants.
func mustDigits(lit string) Digits {
	d, err := ParseDigits(lit, len(lit))
	if err != nil {
		panic("modulus: bad digit literal " + lit)
	}
	return d
}

// mustList builds a vector from a trusted comma-separated literal.
func mustList(lit string) Digits {
	parts := strings.Split(lit, ",")
	d := make(Digits, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			panic("modulus: bad weight literal " + lit)
		}
		d[i] = v
	}
	return d
}

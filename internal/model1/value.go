package model1

import (
	"math"
	"strconv"
	"strings"

	"github.com/fvbommel/sortorder"
)

// Kind identifies the type carried by a Value.
type Kind int

const (
	// KindNull denotes a missing value.
	KindNull Kind = iota

	// KindString denotes a textual value.
	KindString

	// KindNumber denotes a numeric value.
	KindNumber
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "null"
	}
}

// Value is a single displayable cell value.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// Null returns an empty value.
func Null() Value {
	return Value{}
}

// Str returns a string value.
func Str(s string) Value {
	return Value{kind: KindString, str: s}
}

// Num returns a numeric value.
func Num(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Kind returns the value kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull returns true if the value is missing.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Number returns the numeric payload and whether the value is numeric.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// String returns the display text.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// As coerces the value to the given kind. Numeric strings become numbers;
// strings that do not parse, or parse to NaN, are kept as is.
func (v Value) As(k Kind) Value {
	if v.kind == k || v.kind == KindNull {
		return v
	}
	switch k {
	case KindNumber:
		s := strings.ReplaceAll(strings.TrimSpace(v.str), ",", "")
		if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(n) {
			return Num(n)
		}
		return v
	case KindString:
		return Str(v.String())
	}
	return v
}

// Compare orders two values. Null sorts before numbers, numbers before strings.
func Compare(a, b Value) int {
	return compare(a, b, false)
}

// CompareNatural is Compare with natural ordering for strings, so "file2"
// sorts before "file10".
func CompareNatural(a, b Value) int {
	return compare(a, b, true)
}

func compare(a, b Value, natural bool) int {
	if a.kind != b.kind {
		return rank(a.kind) - rank(b.kind)
	}

	switch a.kind {
	case KindNumber:
		// NaN sorts before every other number.
		an, bn := math.IsNaN(a.num), math.IsNaN(b.num)
		switch {
		case an && bn:
			return 0
		case an:
			return -1
		case bn:
			return 1
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case KindString:
		if a.str == b.str {
			return 0
		}
		if natural {
			switch {
			case sortorder.NaturalLess(a.str, b.str):
				return -1
			case sortorder.NaturalLess(b.str, a.str):
				return 1
			}
		}
		return strings.Compare(a.str, b.str)
	}

	return 0
}

func rank(k Kind) int {
	switch k {
	case KindNumber:
		return 1
	case KindString:
		return 2
	default:
		return 0
	}
}

package lookup

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Ratio is an accuracy figure kept as its numerator and denominator.
// A zero denominator leaves the ratio undefined.
type Ratio struct {
	Num int
	Den int
}

// Defined reports whether the denominator is non-zero.
func (r Ratio) Defined() bool {
	return r.Den != 0
}

// Value returns the ratio and whether it is defined.
func (r Ratio) Value() (float64, bool) {
	if r.Den == 0 {
		return 0, false
	}
	return float64(r.Num) / float64(r.Den), true
}

// String formats the ratio as a shortest round-trip decimal, always with a
// fractional part ("1.0", "0.75"), or "undefined".
func (r Ratio) String() string {
	v, ok := r.Value()
	if !ok {
		return "undefined"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// MarshalJSON encodes a defined ratio as a number and an undefined one as null.
func (r Ratio) MarshalJSON() ([]byte, error) {
	v, ok := r.Value()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

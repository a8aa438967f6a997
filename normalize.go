package plot

import (
	"math"
	"strconv"
	"strings"
)

// InvalidPolicy decides what Normalize does with values which are not
// numbers.
type InvalidPolicy int

const (
	// FailOnInvalid aborts normalization with a *ParseError.
	FailOnInvalid InvalidPolicy = iota

	// DropInvalid removes records containing an invalid value.
	DropInvalid
)

// ParseInvalidPolicy converts "fail" or "drop"; anything else is
// FailOnInvalid.
func ParseInvalidPolicy(s string) InvalidPolicy {
	if strings.EqualFold(s, "drop") {
		return DropInvalid
	}
	return FailOnInvalid
}

func (p InvalidPolicy) String() string {
	if p == DropInvalid {
		return "drop"
	}
	return "fail"
}

// Normalize returns a copy of df in which fields are numeric.
// Missing fields are a *SchemaError. Empty cells, NaN and infinities
// count as invalid and are handled according to policy.
func Normalize(df *DataFrame, policy InvalidPolicy, fields ...string) (*DataFrame, error) {
	if err := df.Require(fields...); err != nil {
		return nil, err
	}

	cols := make(map[string][]float64, len(fields))
	for _, f := range fields {
		cols[f] = make([]float64, df.N)
	}
	keep := make([]int, 0, df.N)

records:
	for i := 0; i < df.N; i++ {
		for _, f := range fields {
			text := df.String(i, f)
			v, ok := parseNumber(text)
			if !ok {
				if policy == DropInvalid {
					continue records
				}
				return nil, &ParseError{Frame: df.Name, Field: f, Row: i, Value: text}
			}
			cols[f][i] = v
		}
		keep = append(keep, i)
	}

	r := df.subset(df.Name, keep)
	r.dropped = df.dropped + df.N - len(keep)
	if r.numeric == nil {
		r.numeric = make(map[string][]float64, len(fields))
	}
	for f, col := range cols {
		nc := make([]float64, len(keep))
		for k, i := range keep {
			nc[k] = col[i]
		}
		r.numeric[f] = nc
	}
	return r, nil
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Package stat reduces the rows of a data frame to per group summaries.
package stat

import (
	"errors"
	"fmt"
	"strings"

	plot "github.com/vdobler/socialplot"
)

// ErrNotNumeric is returned when a value field has not been normalized.
var ErrNotNumeric = errors.New("field is not numeric")

// Key identifies a group by the values of one or more categorical fields.
type Key []string

func (k Key) String() string { return strings.Join(k, "/") }

// id is the comparable form of k.
func (k Key) id() string { return strings.Join(k, "\x1f") }

// Equal reports whether k and o consist of the same values.
func (k Key) Equal(o Key) bool {
	if len(k) != len(o) {
		return false
	}
	for i := range k {
		if k[i] != o[i] {
			return false
		}
	}
	return true
}

// Group is a set of records of a data frame sharing the same key.
type Group struct {
	Key  Key
	Rows []int // record indices in ascending order
}

// GroupBy partitions the records of df by the values of fields. Groups
// are returned in order of first occurrence. Every record ends up in
// exactly one group.
func GroupBy(df *plot.DataFrame, fields ...string) ([]Group, error) {
	if len(fields) == 0 {
		return nil, errors.New("stat: GroupBy needs at least one field")
	}
	if err := df.Require(fields...); err != nil {
		return nil, err
	}

	var groups []Group
	index := make(map[string]int)
	for i := 0; i < df.N; i++ {
		key := make(Key, len(fields))
		for j, f := range fields {
			key[j] = df.String(i, f)
		}
		g, ok := index[key.id()]
		if !ok {
			g = len(groups)
			index[key.id()] = g
			groups = append(groups, Group{Key: key})
		}
		groups[g].Rows = append(groups[g].Rows, i)
	}
	return groups, nil
}

// values extracts the numeric field of the rows of g.
func (g Group) values(df *plot.DataFrame, field string) []float64 {
	vs := make([]float64, len(g.Rows))
	for k, i := range g.Rows {
		vs[k] = df.Float(i, field)
	}
	return vs
}

func requireNumeric(df *plot.DataFrame, field string) error {
	if err := df.Require(field); err != nil {
		return err
	}
	if df.Type(field) != plot.Float {
		return fmt.Errorf("stat: %s in %s: %w", field, df.Name, ErrNotNumeric)
	}
	return nil
}

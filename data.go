package plot

import (
	"fmt"
	"math"
)

// DataFrame is an ordered list of records with named columns.
// A data frame is never modified after construction; Filter, Normalize
// and friends return new data frames.
type DataFrame struct {
	Name string
	N    int

	header  []string
	index   map[string]int
	records [][]string

	// numeric holds the float64 version of normalized columns.
	numeric map[string][]float64
	dropped int
}

// Row is a single record of a data frame keyed by column name.
type Row map[string]string

// FieldType represents the basic type of a column.
type FieldType uint

const (
	String FieldType = iota
	Float
)

func (t FieldType) String() string {
	switch t {
	case String:
		return "string"
	case Float:
		return "float"
	}
	return fmt.Sprintf("FieldType(%d)", uint(t))
}

// NewDataFrame constructs a data frame from a header and records.
// Each record must have exactly len(header) cells and column names
// must be unique.
func NewDataFrame(name string, header []string, records [][]string) (*DataFrame, error) {
	df := &DataFrame{
		Name:    name,
		N:       len(records),
		header:  append([]string(nil), header...),
		index:   make(map[string]int, len(header)),
		records: make([][]string, len(records)),
	}
	for i, h := range header {
		if _, dup := df.index[h]; dup {
			return nil, fmt.Errorf("duplicate column %q", h)
		}
		df.index[h] = i
	}
	for i, rec := range records {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("record %d has %d fields, want %d", i, len(rec), len(header))
		}
		df.records[i] = append([]string(nil), rec...)
	}
	return df, nil
}

// FromRows builds a data frame from rows. Columns are taken in the
// given order; a row lacking a column yields an empty cell.
func FromRows(name string, columns []string, rows []Row) *DataFrame {
	records := make([][]string, len(rows))
	for i, r := range rows {
		rec := make([]string, len(columns))
		for j, c := range columns {
			rec[j] = r[c]
		}
		records[i] = rec
	}
	df, err := NewDataFrame(name, columns, records)
	if err != nil {
		panic(err) // only possible with duplicate columns
	}
	return df
}

// FieldNames returns the column names in header order.
func (df *DataFrame) FieldNames() []string {
	return append([]string(nil), df.header...)
}

// Has reports whether df has a column named field.
func (df *DataFrame) Has(field string) bool {
	_, ok := df.index[field]
	return ok
}

// Type of the column field. Unknown columns report String.
func (df *DataFrame) Type(field string) FieldType {
	if _, ok := df.numeric[field]; ok {
		return Float
	}
	return String
}

// Require checks that all fields are present.
func (df *DataFrame) Require(fields ...string) error {
	missing := NewStringSet()
	for _, f := range fields {
		if !df.Has(f) {
			missing.Add(f)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Frame: df.Name, Missing: missing.Elements()}
	}
	return nil
}

// String returns the raw text of field in record i.
func (df *DataFrame) String(i int, field string) string {
	j, ok := df.index[field]
	if !ok {
		panic("no such field " + field + " in " + df.Name)
	}
	return df.records[i][j]
}

// Float returns the numeric value of field in record i or NaN if the
// field has not been normalized.
func (df *DataFrame) Float(i int, field string) float64 {
	col, ok := df.numeric[field]
	if !ok {
		return math.NaN()
	}
	return col[i]
}

// Floats returns a copy of the normalized column field, nil if field
// is not numeric.
func (df *DataFrame) Floats(field string) []float64 {
	col, ok := df.numeric[field]
	if !ok {
		return nil
	}
	return append([]float64(nil), col...)
}

// Strings returns a copy of the text column field.
func (df *DataFrame) Strings(field string) []string {
	j, ok := df.index[field]
	if !ok {
		return nil
	}
	col := make([]string, df.N)
	for i, rec := range df.records {
		col[i] = rec[j]
	}
	return col
}

// Dropped is the number of records removed during normalization.
func (df *DataFrame) Dropped() int { return df.dropped }

// Levels returns the distinct values of field in order of first
// occurrence.
func (df *DataFrame) Levels(field string) []string {
	pool := NewStringPool()
	for _, s := range df.Strings(field) {
		pool.Add(s)
	}
	return pool.Strings()
}

// MinMax determines minimum and maximum of the numeric column field
// together with their record indices. mini and maxi are -1 if the
// column is empty or not numeric.
func (df *DataFrame) MinMax(field string) (min, max float64, mini, maxi int) {
	min, max = math.Inf(+1), math.Inf(-1)
	mini, maxi = -1, -1
	for i, v := range df.numeric[field] {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min, mini = v, i
		}
		if v > max {
			max, maxi = v, i
		}
	}
	return min, max, mini, maxi
}

// Filter extracts all records where the text of field equals value.
// A missing field is a *SchemaError.
func (df *DataFrame) Filter(field, value string) (*DataFrame, error) {
	j, ok := df.index[field]
	if !ok {
		return nil, &SchemaError{Frame: df.Name, Missing: []string{field}}
	}
	keep := make([]int, 0, df.N)
	for i, rec := range df.records {
		if rec[j] == value {
			keep = append(keep, i)
		}
	}
	return df.subset(fmt.Sprintf("%s[%s=%s]", df.Name, field, value), keep), nil
}

// subset copies the records in keep (in that order) together with
// their numeric values.
func (df *DataFrame) subset(name string, keep []int) *DataFrame {
	r := &DataFrame{
		Name:    name,
		N:       len(keep),
		header:  df.header,
		index:   df.index,
		records: make([][]string, len(keep)),
		dropped: df.dropped,
	}
	for k, i := range keep {
		r.records[k] = df.records[i]
	}
	if len(df.numeric) > 0 {
		r.numeric = make(map[string][]float64, len(df.numeric))
		for f, col := range df.numeric {
			nc := make([]float64, len(keep))
			for k, i := range keep {
				nc[k] = col[i]
			}
			r.numeric[f] = nc
		}
	}
	return r
}

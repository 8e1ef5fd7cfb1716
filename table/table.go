package table

import (
	"encoding/csv"
	"math"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/katalvlaran/curvath/curve"
)

// Options configures CSV reading.
//
// Comma     – field delimiter (default ',').
// HasHeader – whether the first row names the columns (default true);
//
//	without a header, columns are named by their zero-based
//	index ("0", "1", ...).
type Options struct {
	Comma     rune
	HasHeader bool
}

// Option is a functional option for ReadCSV.
type Option func(*Options)

// WithComma overrides the field delimiter (e.g. ';' or '\t').
func WithComma(r rune) Option {
	return func(o *Options) { o.Comma = r }
}

// WithoutHeader treats the first row as data and names columns by index.
func WithoutHeader() Option {
	return func(o *Options) { o.HasHeader = false }
}

// DefaultOptions returns comma-delimited with a header row.
func DefaultOptions() Options {
	return Options{Comma: ',', HasHeader: true}
}

// Table is a set of equally long numeric columns; missing or non-numeric
// cells are stored as NaN.
type Table struct {
	headers []string
	index   map[string]int
	columns [][]float64
}

// ReadCSV loads path into a Table.
func ReadCSV(path string, opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "table: open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = o.Comma
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "table: parse %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("table: %s is empty", path)
	}

	var headers []string
	if o.HasHeader {
		headers = records[0]
		records = records[1:]
	} else {
		headers = make([]string, len(records[0]))
		for i := range headers {
			headers[i] = cast.ToString(i)
		}
	}
	if len(records) == 0 {
		return nil, errors.Errorf("table: %s has a header but no data rows", path)
	}

	t := &Table{
		headers: headers,
		index:   make(map[string]int, len(headers)),
		columns: make([][]float64, len(headers)),
	}
	for i, h := range headers {
		t.index[h] = i
		t.columns[i] = make([]float64, len(records))
	}

	for row, rec := range records {
		for col := range headers {
			v := math.NaN() // missing until proven numeric
			if col < len(rec) {
				if parsed, perr := cast.ToFloat64E(rec[col]); perr == nil {
					v = parsed
				}
			}
			t.columns[col][row] = v
		}
	}

	return t, nil
}

// Headers returns the column names in file order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)

	return out
}

// Rows reports the number of data rows.
func (t *Table) Rows() int {
	if len(t.columns) == 0 {
		return 0
	}

	return len(t.columns[0])
}

// Column returns a copy of the named column, NaNs included.
func (t *Table) Column(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, errors.Errorf("table: no column %q (have %v)", name, t.headers)
	}

	out := make([]float64, len(t.columns[i]))
	copy(out, t.columns[i])

	return out, nil
}

// Values returns the named column with all NaNs dropped — the form the
// stats layer consumes.
func (t *Table) Values(name string) ([]float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}

	out := col[:0]
	for _, v := range col {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}

	return out, nil
}

// XY pairs two columns into a curve: rows where either side is missing
// are dropped and the remaining points are sorted by x ascending. This is
// the cleaned, ordered input the simplification engine expects.
func (t *Table) XY(xName, yName string) (curve.Curve, error) {
	xs, err := t.Column(xName)
	if err != nil {
		return curve.Curve{}, err
	}
	ys, err := t.Column(yName)
	if err != nil {
		return curve.Curve{}, err
	}

	type pair struct{ x, y float64 }
	pairs := make([]pair, 0, len(xs))
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		pairs = append(pairs, pair{x: xs[i], y: ys[i]})
	}
	if len(pairs) == 0 {
		return curve.Curve{}, errors.Errorf("table: columns %q/%q have no complete rows", xName, yName)
	}

	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].x < pairs[b].x })

	x := make([]float64, len(pairs))
	y := make([]float64, len(pairs))
	for i, p := range pairs {
		x[i] = p.x
		y[i] = p.y
	}

	return curve.New(x, y)
}

package report

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/curvath/curve"
	"github.com/katalvlaran/curvath/ncc"
	"github.com/katalvlaran/curvath/simplify"
	"github.com/katalvlaran/curvath/stats"
)

// Sentinel errors returned by report builders.
var (
	// ErrNoData indicates an input with no usable values.
	ErrNoData = errors.New("report: no usable data")

	// ErrShortSeries indicates a scatter input with fewer than 2 points.
	ErrShortSeries = errors.New("report: scatter needs at least 2 complete points")
)

const (
	// SimplifyCutoff is the point count above which distribution reports
	// compress their series before embedding it.
	SimplifyCutoff = 100

	// DistributionTarget is the similarity the distribution formatter
	// demands from the compressed series.
	DistributionTarget = 0.998
)

// Metadata labels a report's axes.
type Metadata struct {
	XLabel string `json:"x_label" yaml:"x_label"`
	YLabel string `json:"y_label" yaml:"y_label"`
	XUnit  string `json:"x_unit,omitempty" yaml:"x_unit,omitempty"`
	YUnit  string `json:"y_unit,omitempty" yaml:"y_unit,omitempty"`
}

// SeriesStats bundles the per-series statistics of a box report.
type SeriesStats struct {
	Basic stats.BasicStats   `json:"basic" yaml:"basic"`
	Box   stats.BoxPlotStats `json:"box" yaml:"box"`
}

// BoxReport is the standardized box-plot payload: one named series per
// box, each with its statistics.
type BoxReport struct {
	Type   string                 `json:"type" yaml:"type"`
	Values map[string][]float64   `json:"values" yaml:"values"`
	Stats  map[string]SeriesStats `json:"statistics" yaml:"statistics"`
	Meta   Metadata               `json:"metadata" yaml:"metadata"`
}

// NewBoxReport builds a box payload from named series. Zero and NaN
// entries are dropped per series (they mark absent measurements in the
// source tables); series left empty after cleaning are omitted. At least
// one series must survive.
func NewBoxReport(values map[string][]float64, meta Metadata) (*BoxReport, error) {
	r := &BoxReport{
		Type:   "box",
		Values: make(map[string][]float64, len(values)),
		Stats:  make(map[string]SeriesStats, len(values)),
		Meta:   meta,
	}

	// Deterministic series order keeps error/output behavior stable.
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cleaned := make([]float64, 0, len(values[name]))
		for _, v := range values[name] {
			if v == 0 || math.IsNaN(v) {
				continue
			}
			cleaned = append(cleaned, v)
		}
		if len(cleaned) == 0 {
			continue
		}

		basic, err := stats.Basic(cleaned)
		if err != nil {
			return nil, err
		}
		box, err := stats.BoxPlot(cleaned)
		if err != nil {
			return nil, err
		}

		r.Values[name] = cleaned
		r.Stats[name] = SeriesStats{Basic: basic, Box: box}
	}
	if len(r.Values) == 0 {
		return nil, ErrNoData
	}

	return r, nil
}

// CorrelationStats summarize the x/y relationship of a scatter report.
type CorrelationStats struct {
	Pearson    float64          `json:"pearson" yaml:"pearson"`
	Spearman   float64          `json:"spearman" yaml:"spearman"`
	Regression stats.Regression `json:"linear_regression" yaml:"linear_regression"`
}

// ScatterReport is the standardized scatter payload.
type ScatterReport struct {
	Type        string           `json:"type" yaml:"type"`
	X           []float64        `json:"x" yaml:"x"`
	Y           []float64        `json:"y" yaml:"y"`
	XStats      stats.BasicStats `json:"x_statistics" yaml:"x_statistics"`
	YStats      stats.BasicStats `json:"y_statistics" yaml:"y_statistics"`
	Correlation CorrelationStats `json:"correlation" yaml:"correlation"`
	Meta        Metadata         `json:"metadata" yaml:"metadata"`
}

// NewScatterReport builds a scatter payload from paired samples. Rows
// with a NaN on either side are dropped; at least 2 complete pairs must
// remain for the correlation block.
func NewScatterReport(x, y []float64, meta Metadata) (*ScatterReport, error) {
	if len(x) != len(y) {
		return nil, stats.ErrLengthMismatch
	}

	cx := make([]float64, 0, len(x))
	cy := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		cx = append(cx, x[i])
		cy = append(cy, y[i])
	}
	if len(cx) < 2 {
		return nil, ErrShortSeries
	}

	xStats, err := stats.Basic(cx)
	if err != nil {
		return nil, err
	}
	yStats, err := stats.Basic(cy)
	if err != nil {
		return nil, err
	}
	pearson, err := stats.Correlation(cx, cy, stats.Pearson)
	if err != nil {
		return nil, err
	}
	spearman, err := stats.Correlation(cx, cy, stats.Spearman)
	if err != nil {
		return nil, err
	}
	reg, err := stats.LinearRegression(cx, cy)
	if err != nil {
		return nil, err
	}

	return &ScatterReport{
		Type:   "scatter",
		X:      cx,
		Y:      cy,
		XStats: xStats,
		YStats: yStats,
		Correlation: CorrelationStats{
			Pearson:    pearson,
			Spearman:   spearman,
			Regression: reg,
		},
		Meta: meta,
	}, nil
}

// DistributionReport is the standardized payload for a cumulative
// distribution curve, compressed when dense.
type DistributionReport struct {
	Type       string           `json:"type" yaml:"type"`
	X          []float64        `json:"x" yaml:"x"`
	Y          []float64        `json:"y" yaml:"y"`
	RawPoints  int              `json:"raw_points" yaml:"raw_points"`
	Points     int              `json:"points" yaml:"points"`
	Simplified bool             `json:"simplified" yaml:"simplified"`
	Fidelity   float64          `json:"fidelity" yaml:"fidelity"` // NCC vs the raw series
	YStats     stats.BasicStats `json:"y_statistics" yaml:"y_statistics"`
	Meta       Metadata         `json:"metadata" yaml:"metadata"`
}

// NewDistributionReport embeds c, compressing it first when it exceeds
// SimplifyCutoff points. The input is expected cleaned and x-sorted (see
// table.XY); it is never mutated.
func NewDistributionReport(c curve.Curve, meta Metadata) (*DistributionReport, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Len() == 0 {
		return nil, ErrNoData
	}

	out := c
	simplified := false
	fidelity := 1.0

	if c.Len() > SimplifyCutoff {
		s, err := simplify.NewSimplifier(simplify.WithTargetSimilarity(DistributionTarget))
		if err != nil {
			return nil, err
		}
		out, err = s.Simplify(c)
		if err != nil {
			return nil, err
		}
		fidelity, err = ncc.Score(c, out)
		if err != nil {
			return nil, err
		}
		simplified = true
	}

	yStats, err := stats.Basic(c.Y)
	if err != nil {
		return nil, err
	}

	// Copy out of the (possibly shared) curve so the payload owns its data.
	final := out.Clone()

	return &DistributionReport{
		Type:       "distribution",
		X:          final.X,
		Y:          final.Y,
		RawPoints:  c.Len(),
		Points:     final.Len(),
		Simplified: simplified,
		Fidelity:   fidelity,
		YStats:     yStats,
		Meta:       meta,
	}, nil
}

// EncodeJSON writes v to w as indented JSON.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// EncodeYAML writes v to w as YAML.
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

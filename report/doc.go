// Package report shapes analysed data into the standardized payloads the
// plotting side consumes: box, scatter and distribution reports, each
// carrying its own statistics, encodable as JSON or YAML.
//
// The distribution report is where the simplification engine plugs into
// the pipeline: series longer than SimplifyCutoff points are compressed
// with a DistributionTarget similarity of 0.998 before being embedded,
// and the payload records the achieved fidelity (NCC against the raw
// series) plus the raw/kept point counts. Short series are embedded
// verbatim with fidelity 1.
//
// Report builders validate their inputs and compute statistics via the
// stats package; they never mutate caller data.
package report

// Package stats provides the descriptive statistics used by the report
// layer: basic aggregates, quantile summaries, box-plot statistics,
// outlier detection, correlation and simple linear regression.
//
// It is a thin, validated layer over gonum's stat and floats packages:
// curvath does not re-derive textbook estimators, it standardizes their
// inputs (non-empty, equal-length, sorted where required) and their
// output shapes for serialization.
//
// Conventions:
//
//   - Std in BasicStats is the population standard deviation, matching
//     the similarity scorer's convention.
//   - Quantiles use linear interpolation between order statistics.
//   - Box-plot whiskers are Q1−1.5·IQR and Q3+1.5·IQR; values outside
//     them are reported as outliers.
//
// All functions are pure and never mutate their input slices.
package stats

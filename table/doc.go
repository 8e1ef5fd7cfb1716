// Package table ingests tabular CSV files into named numeric columns and
// hands clean curves to the rest of curvath.
//
// Parsing is deliberately forgiving at the cell level and strict at the
// structural level:
//
//   - Cells that cannot be read as a number (blank, text, sentinels like
//     "NA") become NaN — they mark missing data instead of aborting the
//     whole file.
//   - A missing header, an unknown column name or an empty file is a hard
//     error with the file path attached.
//
// XY pairs two columns into a curve.Curve that satisfies the upstream
// contract of the simplification engine: rows with a missing value on
// either side are dropped and the result is sorted by x ascending.
package table

package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/curvath/curve"
	"github.com/katalvlaran/curvath/ncc"
	"github.com/katalvlaran/curvath/report"
	"github.com/katalvlaran/curvath/simplify"
	"github.com/katalvlaran/curvath/table"
)

// simplifyResult is the CLI payload for the simplify subcommand.
type simplifyResult struct {
	Tolerance float64   `json:"tolerance" yaml:"tolerance"`
	Fidelity  float64   `json:"fidelity" yaml:"fidelity"`
	RawPoints int       `json:"raw_points" yaml:"raw_points"`
	Points    int       `json:"points" yaml:"points"`
	X         []float64 `json:"x" yaml:"x"`
	Y         []float64 `json:"y" yaml:"y"`
}

func newSimplifyCmd() *cobra.Command {
	var (
		xCol, yCol string
		tolerance  float64
		target     float64
		format     string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "simplify <file.csv>",
		Short: "Reduce a dense curve to its key points",
		Long: `Reads two columns from a CSV file, drops incomplete rows, sorts by x
and runs the adaptive curve simplifier. Without --tolerance the
tolerance is tuned so the simplified curve keeps the target similarity
against the original.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := table.ReadCSV(args[0])
			if err != nil {
				return err
			}
			c, err := tab.XY(xCol, yCol)
			if err != nil {
				return err
			}

			var out curve.Curve
			var usedTol float64
			if tolerance > 0 {
				usedTol = tolerance
				out, err = simplify.Simplify(c, tolerance)
			} else {
				var s *simplify.Simplifier
				s, err = simplify.NewSimplifier(simplify.WithTargetSimilarity(target))
				if err != nil {
					return err
				}
				out, err = s.Simplify(c)
				if err == nil {
					usedTol, _ = s.ResolvedTolerance()
				}
			}
			if err != nil {
				return err
			}

			fidelity, err := ncc.Score(c, out)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"raw":       c.Len(),
				"kept":      out.Len(),
				"tolerance": usedTol,
				"fidelity":  fidelity,
			}).Info("curve simplified")

			w, closeFn, err := openOutput(outPath)
			if err != nil {
				return err
			}
			defer closeFn()

			result := simplifyResult{
				Tolerance: usedTol,
				Fidelity:  fidelity,
				RawPoints: c.Len(),
				Points:    out.Len(),
				X:         out.X,
				Y:         out.Y,
			}

			return writeResult(w, format, xCol, yCol, result)
		},
	}

	cmd.Flags().StringVar(&xCol, "x", "", "name of the x column (required)")
	cmd.Flags().StringVar(&yCol, "y", "", "name of the y column (required)")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "fixed tolerance; 0 tunes it adaptively")
	cmd.Flags().Float64Var(&target, "target", simplify.DefaultTargetSimilarity, "target similarity for the adaptive search")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json, yaml or csv")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

// openOutput returns stdout or the requested file plus a close func.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "create %s", path)
	}

	return f, func() { _ = f.Close() }, nil
}

// writeResult encodes the payload in the requested format.
func writeResult(w io.Writer, format, xCol, yCol string, res simplifyResult) error {
	switch format {
	case "json":
		return report.EncodeJSON(w, res)
	case "yaml":
		return report.EncodeYAML(w, res)
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{xCol, yCol}); err != nil {
			return err
		}
		for i := range res.X {
			rec := []string{
				strconv.FormatFloat(res.X[i], 'g', -1, 64),
				strconv.FormatFloat(res.Y[i], 'g', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()

		return cw.Error()
	default:
		return errors.Errorf("unknown format %q (want json, yaml or csv)", format)
	}
}

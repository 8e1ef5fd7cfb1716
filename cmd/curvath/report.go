package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/curvath/report"
	"github.com/katalvlaran/curvath/table"
)

func newReportCmd() *cobra.Command {
	var (
		xCol, yCol     string
		xLabel, yLabel string
		xUnit, yUnit   string
		format         string
		outPath        string
	)

	cmd := &cobra.Command{
		Use:   "report <file.csv>",
		Short: "Emit a standardized distribution report payload",
		Long: `Reads a cumulative distribution from a CSV file and emits the
standardized distribution payload the plotting side consumes. Series
above the cutoff are compressed at the distribution target similarity
and the achieved fidelity is recorded in the payload.`,
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

			meta := report.Metadata{XLabel: xLabel, YLabel: yLabel, XUnit: xUnit, YUnit: yUnit}
			if meta.XLabel == "" {
				meta.XLabel = xCol
			}
			if meta.YLabel == "" {
				meta.YLabel = yCol
			}

			r, err := report.NewDistributionReport(c, meta)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"raw":        r.RawPoints,
				"kept":       r.Points,
				"simplified": r.Simplified,
				"fidelity":   r.Fidelity,
			}).Info("distribution report built")

			w, closeFn, err := openOutput(outPath)
			if err != nil {
				return err
			}
			defer closeFn()

			switch format {
			case "json":
				return report.EncodeJSON(w, r)
			case "yaml":
				return report.EncodeYAML(w, r)
			default:
				return errors.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&xCol, "x", "", "name of the x column (required)")
	cmd.Flags().StringVar(&yCol, "y", "", "name of the y column (required)")
	cmd.Flags().StringVar(&xLabel, "x-label", "", "x axis label (default: column name)")
	cmd.Flags().StringVar(&yLabel, "y-label", "", "y axis label (default: column name)")
	cmd.Flags().StringVar(&xUnit, "x-unit", "", "x axis unit")
	cmd.Flags().StringVar(&yUnit, "y-unit", "", "y axis unit")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

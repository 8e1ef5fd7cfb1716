package main

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/curvath/report"
	"github.com/katalvlaran/curvath/stats"
	"github.com/katalvlaran/curvath/table"
)

// columnSummary is the CLI payload for the stats subcommand.
type columnSummary struct {
	Column    string             `json:"column" yaml:"column"`
	Basic     stats.BasicStats   `json:"basic" yaml:"basic"`
	Quantiles map[string]float64 `json:"quantiles" yaml:"quantiles"` // "p25", "p50", ...
	Box       stats.BoxPlotStats `json:"box" yaml:"box"`
}

func newStatsCmd() *cobra.Command {
	var (
		col     string
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "stats <file.csv>",
		Short: "Summarize one numeric column",
		Long: `Reads a column from a CSV file, drops missing values and prints its
descriptive statistics: basic aggregates, quartiles and box-plot stats.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := table.ReadCSV(args[0])
			if err != nil {
				return err
			}
			values, err := tab.Values(col)
			if err != nil {
				return err
			}

			basic, quantiles, err := stats.Summary(values, nil)
			if err != nil {
				return err
			}
			box, err := stats.BoxPlot(values)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{"column": col, "count": basic.Count}).Debug("column summarized")

			w, closeFn, err := openOutput(outPath)
			if err != nil {
				return err
			}
			defer closeFn()

			named := make(map[string]float64, len(quantiles))
			for p, q := range quantiles {
				named[fmt.Sprintf("p%g", p*100)] = q
			}

			payload := columnSummary{Column: col, Basic: basic, Quantiles: named, Box: box}
			switch format {
			case "json":
				return report.EncodeJSON(w, payload)
			case "yaml":
				return report.EncodeYAML(w, payload)
			default:
				return errors.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&col, "col", "", "name of the column (required)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("col")

	return cmd
}

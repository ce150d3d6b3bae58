package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sreekona1935/medical-insurance-costs/pkg/report"
)

var (
	includeInteraction bool
	outputDir          string
	writePlot          bool
	histogramBins      int
)

var prepareCmd = &cobra.Command{
	Use:   "prepare <csv>",
	Short: "Clean the dataset and write features, target and cleaned table",
	Long: `The prepare command removes duplicate rows, normalizes sex/smoker/region,
derives smoker_flag and log_charges, one-hot encodes region (baseline dropped)
and writes features.csv, target.csv and cleaned.csv into the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPreparer()
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}
		interaction := p.Config().IncludeInteraction
		if cmd.Flags().Changed("interaction") {
			interaction = includeInteraction
		}

		X, y, tbl, err := p.BuildXY(args[0], interaction)
		if err != nil {
			return err
		}
		log.Info().
			Int("rows", tbl.Len()).
			Int("features", len(X.Columns)).
			Msg("dataset prepared")

		paths, err := report.WriteAll(outputDir, X, y, tbl)
		if err != nil {
			return fmt.Errorf("error writing outputs: %w", err)
		}
		if writePlot {
			hist := filepath.Join(outputDir, report.HistogramFile)
			if err := report.TargetHistogram(y, histogramBins, hist); err != nil {
				return err
			}
			paths = append(paths, hist)
		}
		for _, path := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

func init() {
	prepareCmd.Flags().BoolVar(&includeInteraction, "interaction", false, "Add the bmi_smoker interaction feature")
	prepareCmd.Flags().StringVarP(&outputDir, "out", "o", ".", "Directory to write outputs into")
	prepareCmd.Flags().BoolVar(&writePlot, "plot", false, "Also save a histogram of log_charges")
	prepareCmd.Flags().IntVar(&histogramBins, "bins", 20, "Number of histogram bins")
}

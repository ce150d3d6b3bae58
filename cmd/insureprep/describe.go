package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sreekona1935/medical-insurance-costs/pkg/dataprep"
	"github.com/sreekona1935/medical-insurance-costs/pkg/stats"
)

var describeCmd = &cobra.Command{
	Use:   "describe <csv>",
	Short: "Print summary statistics of the cleaned dataset",
	Long: `The describe command prepares the dataset the same way as prepare and prints
per-column statistics of the cleaned table, followed by the correlation of
each feature with log_charges. bmi_smoker is included when --interaction is
set or the config enables include_interaction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPreparer()
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}
		interaction := p.Config().IncludeInteraction
		if cmd.Flags().Changed("interaction") {
			interaction = describeInteraction
		}

		X, y, tbl, err := p.BuildXY(args[0], interaction)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "rows: %d\n\n", tbl.Len())
		if err := printSummaries(out, stats.DescribeTable(tbl)); err != nil {
			return err
		}
		fmt.Fprintln(out)
		return printCorrelations(out, X, y)
	},
}

var describeInteraction bool

func init() {
	describeCmd.Flags().BoolVar(&describeInteraction, "interaction", false, "Add the bmi_smoker interaction feature")
}

func printSummaries(w io.Writer, sums []stats.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "column\tcount\tmean\tstd\tmin\t25%\t50%\t75%\tmax\t")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
			s.Name, s.Count, s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max)
	}
	return tw.Flush()
}

func printCorrelations(w io.Writer, X *dataprep.FeatureMatrix, y []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "feature\tcorr(log_charges)")
	for _, name := range X.Columns {
		col, _ := X.Col(name)
		fmt.Fprintf(tw, "%s\t%.4f\n", name, stats.Correlation(col, y))
	}
	return tw.Flush()
}

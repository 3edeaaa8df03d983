package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"showcase/adapters/chart"
	"showcase/adapters/sentiment"
	"showcase/adapters/tabular"
	"showcase/app"
	"showcase/domain/calculator"
	"showcase/domain/series"
	"showcase/internal/config"
	"showcase/internal/errors"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(errors.UserMessage(err)))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "showcase",
		Short:         "Multi-Function App from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newCalcCmd(),
		newTextCmd(),
		newDescribeCmd(),
		newChartCmd(),
		newProgressCmd(),
	)
	return rootCmd
}

// newService builds the page service without an activity log
func newService() (*app.ShowcaseService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.NewShowcaseService(cfg, sentiment.NewAnalyzer(), nil), nil
}

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc [a] [operation] [b]",
		Short: "Add, subtract, multiply or divide two numbers",
		Long: `Apply one of the four calculator operations to two numbers.

The operation is a name (Add, Subtract, Multiply, Divide) or a symbol (+ - x /).

Example: showcase calc 7 / 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := calculator.ParseOperand(args[0])
			if err != nil {
				return err
			}
			op, err := calculator.ParseOperation(args[1])
			if err != nil {
				return err
			}
			b, err := calculator.ParseOperand(args[2])
			if err != nil {
				return err
			}

			svc, err := newService()
			if err != nil {
				return err
			}
			result, err := svc.Calculate(cmd.Context(), a, b, op)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(result.Display()))
			return nil
		},
	}
}

func newTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text [words...]",
		Short: "Sentiment and word statistics for text",
		Long: `Report polarity, subjectivity, word count and the most frequent words.

Text comes from the arguments, or from standard input when none are given.

Example: echo "what a wonderful day" | showcase text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, "failed to read standard input")
				}
				text = string(data)
			}

			svc, err := newService()
			if err != nil {
				return err
			}
			report, ok := svc.AnalyzeText(cmd.Context(), text)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), helpStyle.Render("No text to analyze."))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("📝 Text Analysis"))
			fmt.Fprintln(out, metric("Sentiment Polarity", fmt.Sprintf("%.2f", report.Polarity)))
			fmt.Fprintln(out, metric("Sentiment Subjectivity", fmt.Sprintf("%.2f", report.Subjectivity)))
			fmt.Fprintln(out, metric("Word Count", fmt.Sprintf("%d", report.WordCount)))

			rows := make([][]string, len(report.TopWords))
			for i, w := range report.TopWords {
				rows[i] = []string{w.Word, fmt.Sprintf("%d", w.Count)}
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, titleStyle.Render("Word Statistics"))
			fmt.Fprintln(out, renderTable([]string{"Word", "Count"}, rows))
			return nil
		},
	}
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [file]",
		Short: "Preview and summarize a CSV or XLSX file",
		Long: `Print the first rows, summary statistics and missing value counts of a table.

Example: showcase describe data.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.InvalidInput(fmt.Sprintf("cannot open %s", args[0]))
			}
			defer f.Close()

			svc, err := newService()
			if err != nil {
				return err
			}
			summary, err := svc.AnalyzeFile(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}

func printSummary(out io.Writer, summary *tabular.Summary) {
	fmt.Fprintln(out, titleStyle.Render("Data Preview"))
	preview := make([][]string, 0, summary.Preview.NumRows())
	for _, row := range summary.Preview.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cell.Raw
			if cell.Missing {
				cells[i] = "NaN"
			}
		}
		preview = append(preview, cells)
	}
	fmt.Fprintln(out, renderTable(summary.Preview.Headers, preview))

	fmt.Fprintln(out, titleStyle.Render("Data Statistics"))
	switch summary.Describe.Kind {
	case tabular.KindNumeric:
		rows := make([][]string, len(summary.Describe.Numeric))
		for i, col := range summary.Describe.Numeric {
			rows[i] = []string{col.Column, fmt.Sprintf("%d", col.Count),
				formatStat(col.Mean), formatStat(col.Std), formatStat(col.Min),
				formatStat(col.Q25), formatStat(col.Q50), formatStat(col.Q75), formatStat(col.Max)}
		}
		fmt.Fprintln(out, renderTable([]string{"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}, rows))
	default:
		rows := make([][]string, len(summary.Describe.Text))
		for i, col := range summary.Describe.Text {
			rows[i] = []string{col.Column, fmt.Sprintf("%d", col.Count), fmt.Sprintf("%d", col.Unique), col.Top, fmt.Sprintf("%d", col.Freq)}
		}
		fmt.Fprintln(out, renderTable([]string{"column", "count", "unique", "top", "freq"}, rows))
	}

	fmt.Fprintln(out, titleStyle.Render("Missing Values"))
	nulls := make([][]string, len(summary.NullCounts))
	for i, n := range summary.NullCounts {
		nulls[i] = []string{n.Column, fmt.Sprintf("%d", n.Count)}
	}
	fmt.Fprintln(out, renderTable([]string{"column", "missing"}, nulls))
}

func formatStat(v *float64) string {
	if v == nil {
		return "NaN"
	}
	return fmt.Sprintf("%.6f", *v)
}

func newChartCmd() *cobra.Command {
	var style string
	var out string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render a random walk chart to an SVG or PNG file",
		Long: `Generate a fresh 30 day random walk and draw it.

The image format follows the output file extension (.svg or .png).

Example: showcase chart --style Scatter --out walk.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chartStyle, err := series.ParseStyle(style)
			if err != nil {
				return err
			}
			format, err := chart.ParseFormat(strings.TrimPrefix(filepath.Ext(out), "."))
			if err != nil {
				return err
			}

			svc, err := newService()
			if err != nil {
				return err
			}
			figure, err := svc.Chart(cmd.Context(), chartStyle)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return errors.Wrapf(err, "failed to create %s", out)
			}
			defer f.Close()
			if err := figure.Render(f, format); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("%s written to %s", figure.Title, out)))
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", string(series.Line), "Chart style: Line, Bar or Scatter")
	cmd.Flags().StringVar(&out, "out", "chart.svg", "Output file (.svg or .png)")

	return cmd
}

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Run the progress bar demo in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return runProgress(cmd.Context(), svc.ProgressDemo())
		},
	}
}

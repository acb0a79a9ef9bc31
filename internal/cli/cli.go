package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/avstrong/diamond/internal/app"
	"github.com/avstrong/diamond/internal/config"
	"github.com/avstrong/diamond/internal/logger"
	"github.com/avstrong/diamond/internal/pricing"
)

const Version = "0.3.0"

// NewRootCmd builds the diamond command tree. Without a subcommand it serves
// the HTTP API.
func NewRootCmd() *cobra.Command {
	var envFile string

	serve := func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		l, err := app.NewLogger(cfg)
		if err != nil {
			return err
		}

		return app.Run(l, cfg)
	}

	root := &cobra.Command{
		Use:           "diamond",
		Short:         "Apartmán Diamond booking service",
		Long:          `Seasonal price quotes, reservation e-mail drafts and gallery views for Apartmán Diamond.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE:  serve,
		},
		newQuoteCmd(&envFile),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "diamond v%s\n", Version)
			},
		},
	)

	return root
}

func newQuoteCmd(envFile *string) *cobra.Command {
	var form pricing.Form

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a stay",
		Long:  `Price a stay night by night and print the total, the average nightly rate and the discount.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			calc, err := app.NewCalculator(logger.Discard(), cfg)
			if err != nil {
				return err
			}

			printQuote(cmd.OutOrStdout(), calc.QuoteForm(form))

			return nil
		},
	}

	cmd.Flags().StringVar(&form.CheckIn, "checkin", "", "arrival date, YYYY-MM-DD")
	cmd.Flags().StringVar(&form.CheckOut, "checkout", "", "departure date, YYYY-MM-DD")
	cmd.Flags().StringVar(&form.Guests, "guests", "2", "number of guests, 1-4")

	return cmd
}

func printQuote(w io.Writer, res pricing.Result) {
	view := pricing.Render(res)

	quote, ok := res.Quote()
	if !ok {
		fmt.Fprintln(w, view.Total)

		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Season", "Nights", "Amount"})

	for _, entry := range quote.Breakdown {
		t.AppendRow(table.Row{entry.Season, entry.Nights, pricing.FormatPrice(float64(entry.Amount))})
	}

	t.AppendFooter(table.Row{"Total", quote.Nights, view.Total})
	t.Render()

	fmt.Fprintln(w, view.PerNight)

	if view.Discount != "" {
		fmt.Fprintln(w, view.Discount)
	}

	fmt.Fprintln(w, view.ReserveURL)
}

func Execute() error {
	return NewRootCmd().Execute() //nolint:wrapcheck
}

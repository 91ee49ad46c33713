package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"little-lemon/cmd/bootstrap"
	"little-lemon/cmd/bootstrap/components"
	"little-lemon/internal/domain/booking"
	"little-lemon/internal/pkg/clock"
	"little-lemon/internal/pkg/config"
	"little-lemon/internal/usecase/queries"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newTimesCmd() *cobra.Command {
	var (
		date   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "times",
		Short: "Print the bookable times for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				q   queries.BookingQueries
				cfg config.Config
				clk clock.Clock
			)
			app := fx.New(
				fx.NopLogger,
				bootstrap.ConfigModule,
				bootstrap.LoggerModule,
				bootstrap.DBModule,
				components.PersistenceModule,
				fx.Provide(clock.NewRealClock, queries.NewBookingQueries),
				fx.Populate(&q, &cfg, &clk),
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			if err := app.Start(ctx); err != nil {
				return err
			}
			defer func() { _ = app.Stop(context.Background()) }()

			if date == "" {
				loc, err := cfg.Booking.LoadLocation()
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v, using UTC\n", err)
				}
				date = booking.FormatDate(clock.Today(clk, loc))
			}
			view, err := q.Availability(ctx, date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}
			if len(view.Times) == 0 {
				fmt.Fprintf(out, "%s: no times available\n", view.Date)
				return nil
			}
			fmt.Fprintf(out, "%s:\n", view.Date)
			for _, t := range view.Times {
				fmt.Fprintf(out, "  %s\n", t)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

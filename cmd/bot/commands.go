package main

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/diegoclair/fractal-rotation-bot/internal/database"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func newPostCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "post",
		Short: "Post today's announcement to the webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			services, err := a.services(ctx, time.Now, false)
			if err != nil {
				a.log.Error("failed to start", zap.Error(err))
				return err
			}

			if err := services.Announcer.Announce(ctx); err != nil {
				a.log.Error("failed to announce daily fractals", zap.Error(err))
				return err
			}

			return nil
		},
	}
}

func newPreviewCmd(a *app) *cobra.Command {
	var (
		day    string
		noJoke bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the announcement without posting it",
		RunE: func(cmd *cobra.Command, args []string) error {
			clock := time.Now
			if day != "" {
				pinned, err := time.ParseInLocation(dateLayout, day, time.Local)
				if err != nil {
					return errors.Wrapf(err, "invalid --date %q, use YYYY-MM-DD", day)
				}
				clock = func() time.Time { return pinned }
			}

			services, err := a.services(cmd.Context(), clock, noJoke)
			if err != nil {
				return err
			}

			msg, err := services.Announcer.Preview(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "date", "", "day to preview (YYYY-MM-DD), defaults to today")
	cmd.Flags().BoolVar(&noJoke, "no-joke", false, "do not fetch a joke")

	return cmd
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Import the JSON reference tables into the SQLite database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ref, err := a.jsonRepo().Load(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to load json reference data")
			}

			db, err := a.openDatabase()
			if err != nil {
				return err
			}

			if err := database.NewReferenceStore(db).Save(ctx, ref); err != nil {
				return err
			}

			a.log.Info("reference data seeded",
				zap.String("path", a.cfg.DatabasePath),
				zap.Int("fractals", len(ref.Fractals)),
				zap.Int("instabilities", len(ref.Instabilities)),
			)
			return nil
		},
	}
}

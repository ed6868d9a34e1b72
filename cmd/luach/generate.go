package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/zapponejosh/luach-api/internal/calendar"
	"github.com/zapponejosh/luach-api/internal/database"
	"github.com/zapponejosh/luach-api/internal/hebdate"
)

// GenerateStats tracks generate statistics.
type GenerateStats struct {
	Days   int
	Israel int
	Stored int
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		fromStr string
		toStr   string
		dbPath  string
		both    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Resolve a span of days into the SQLite day cache",
		Long: `Generate resolves every day from --from through --to and upserts it into
the day cache read by the API server. Existing rows are replaced, so the
command can be rerun after changing cycle definitions.

All rows are written in a single transaction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseSpan(fromStr, toStr)
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = a.cfg.DatabasePath
			}
			if dbPath == "" {
				return errors.New("--db or DATABASE_PATH is required")
			}

			schedules := []bool{a.resolver.Options().InIsrael}
			if both {
				schedules = []bool{false, true}
			}

			stats, err := generate(cmd.Context(), a, dbPath, from, to, schedules, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, "=== Generate Summary ===")
			fmt.Fprintf(out, "Span:             %s to %s\n", from, to)
			fmt.Fprintf(out, "Days written:     %d\n", stats.Days)
			fmt.Fprintf(out, "Israel rows:      %d\n", stats.Israel)
			fmt.Fprintf(out, "Rows in cache:    %d\n", stats.Stored)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "Last day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dbPath, "db", "", "Path to SQLite database (default from DATABASE_PATH)")
	cmd.Flags().BoolVar(&both, "both", false, "Write the diaspora and Israel schedules")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// parseSpan parses an inclusive span of YYYY-MM-DD days.
func parseSpan(fromStr, toStr string) (hebdate.EpochDay, hebdate.EpochDay, error) {
	from, err := calendar.ParseDateString(fromStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --from %q, use YYYY-MM-DD", fromStr)
	}
	to, err := calendar.ParseDateString(toStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --to %q, use YYYY-MM-DD", toStr)
	}
	if to < from {
		return 0, 0, fmt.Errorf("%w: %s to %s", calendar.ErrInvalidRange, from, to)
	}
	return from, to, nil
}

func generate(ctx context.Context, a *app, dbPath string, from, to hebdate.EpochDay, schedules []bool, progress io.Writer) (GenerateStats, error) {
	var stats GenerateStats
	startTime := time.Now()

	a.log.Info("opening database", slog.String("path", dbPath))
	db, err := database.Open(database.DefaultConfig(dbPath), a.log)
	if err != nil {
		return stats, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return stats, fmt.Errorf("run migrations: %w", err)
	}
	a.log.Info("migrations complete", slog.Int("applied", migrated))

	total := int64(to-from+1) * int64(len(schedules))
	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("generating"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	err = db.WithTx(ctx, func(tx *database.Tx) error {
		for _, israel := range schedules {
			r := a.resolver.WithIsrael(israel)
			for e := from; e <= to; e++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				info, err := r.Resolve(e)
				if err != nil {
					return err
				}
				rec, err := r.Record(info)
				if err != nil {
					return err
				}
				if err := tx.UpsertDay(ctx, rec); err != nil {
					return fmt.Errorf("store %s: %w", e, err)
				}
				stats.Days++
				if israel {
					stats.Israel++
				}
				_ = bar.Add(1)
			}
		}
		return nil
	})
	_ = bar.Finish()
	if err != nil {
		return stats, fmt.Errorf("generate days: %w", err)
	}

	dayStats, err := db.GetStats(ctx)
	if err != nil {
		return stats, fmt.Errorf("get stats: %w", err)
	}
	stats.Stored = dayStats.TotalDays

	a.log.Info("generate complete",
		slog.Int("days", stats.Days),
		slog.Int("stored", stats.Stored),
		slog.Duration("elapsed", time.Since(startTime)),
	)
	return stats, nil
}

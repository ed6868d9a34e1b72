package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/luach-api/internal/calendar"
	"github.com/zapponejosh/luach-api/internal/config"
	"github.com/zapponejosh/luach-api/internal/daf"
	"github.com/zapponejosh/luach-api/internal/hebdate"
	"github.com/zapponejosh/luach-api/internal/i18n"
	"github.com/zapponejosh/luach-api/internal/logger"
)

// app holds what every subcommand needs. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	resolver *calendar.Resolver

	israel bool
	lang   string
	asJSON bool
	cycles string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "luach",
		Short: "Hebrew calendar tools",
		Long: `Luach computes Hebrew dates, holidays, weekly Torah portions and
daily study pages, and maintains the day cache used by the API server.

Configuration is read from the environment (and a .env file if present):
IN_ISRAEL, MODERN_HOLIDAYS, WALLED_CITY, CYCLES_FILE, DATABASE_PATH,
TIMEZONE, LOG_LEVEL and LOG_FORMAT.

Examples:
  # Today's date, holiday, parsha and daf
  luach day

  # A specific day with Hebrew names
  luach day 2024-04-23 --lang he

  # Key dates of a Hebrew year
  luach year 5785

  # Two weeks of Daf Yomi
  luach daf bavli 2024-10-03 --days 14

  # Start a cycle overrides file from the built-in tables
  luach cycles yerushalmi > cycles.yaml

  # Fill the day cache for a year, both schedules
  luach generate --from 2024-10-03 --to 2025-09-22 --both`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&a.israel, "israel", false, "Use the Israel schedule (default from IN_ISRAEL)")
	pf.StringVar(&a.lang, "lang", "en", "Language of names (en, he)")
	pf.BoolVar(&a.asJSON, "json", false, "Print JSON instead of text")
	pf.StringVar(&a.cycles, "cycles", "", "YAML file of study cycle overrides (default from CYCLES_FILE)")

	root.AddCommand(
		newDayCmd(a),
		newYearCmd(a),
		newDafCmd(a),
		newGenerateCmd(a),
		newCheckCmd(a),
		newCyclesCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	if _, ok := i18n.ParseTag(a.lang); !ok {
		return fmt.Errorf("unsupported language %q", a.lang)
	}

	opts := cfg.HolidayOptions()
	if cmd.Flags().Changed("israel") {
		opts.InIsrael = a.israel
	}

	dafs := daf.DefaultRegistry()
	path := a.cycles
	if path == "" {
		path = cfg.CyclesFile
	}
	if path != "" {
		n, err := dafs.LoadInto(path)
		if err != nil {
			return fmt.Errorf("load cycles: %w", err)
		}
		a.log.Debug("loaded study cycles", slog.String("path", path), slog.Int("count", n))
	}

	a.resolver = calendar.NewResolver(opts, dafs)
	return nil
}

func (a *app) catalog() i18n.Catalog {
	tag, _ := i18n.ParseTag(a.lang)
	return i18n.For(tag)
}

// day parses an optional YYYY-MM-DD argument, defaulting to today in the
// configured time zone.
func (a *app) day(args []string) (hebdate.EpochDay, error) {
	if len(args) == 0 || args[0] == "" {
		return calendar.Today(time.Now(), a.cfg.Location()), nil
	}
	e, err := calendar.ParseDateString(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid date %q, use YYYY-MM-DD", args[0])
	}
	return e, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/zmanim-sheet/internal/daemon"
	"github.com/username/zmanim-sheet/internal/render"
	"github.com/username/zmanim-sheet/internal/zmanim"
	"github.com/username/zmanim-sheet/pkg/dateutil"
	"go.uber.org/zap"
)

func weekCmd() *cobra.Command {
	var dateStr string
	var format string
	var lang string
	var save bool

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the sheet for a week",
		Long:  "Print the sheet for the week containing --date (default: the coming week) followed by the significant days of the next month.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp()
			if err != nil {
				return err
			}

			if format == "" {
				format = a.cfg.Output.Format
			}
			if lang == "" {
				lang = a.cfg.Output.Language
			}
			language, err := render.ParseLanguage(lang)
			if err != nil {
				return err
			}

			var date time.Time
			if dateStr == "" {
				date = dateutil.NextSunday(dateutil.Today(a.zone))
			} else {
				date, err = dateutil.ParseDate(dateStr, a.zone)
				if err != nil {
					return fmt.Errorf("invalid date: %w", err)
				}
			}

			s, err := a.generator.ForDate(date)
			if err != nil {
				return fmt.Errorf("failed to generate sheet: %w", err)
			}

			out, err := render.Render(s, format, language)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)

			if save {
				if err := a.archive.Save(s); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved to %s\n", a.archive.Path(s.Start()))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Any date in the week (YYYY-MM-DD, DD.MM.YYYY or YYYY/MM/DD)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: table, json or ics (default from config)")
	cmd.Flags().StringVar(&lang, "lang", "", "Label language: he or en (default from config)")
	cmd.Flags().BoolVar(&save, "save", false, "Also store the sheet in the archive")

	return cmd
}

func classifyCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Show how a date is classified",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp()
			if err != nil {
				return err
			}

			date := dateutil.Today(a.zone)
			if dateStr != "" {
				date, err = dateutil.ParseDate(dateStr, a.zone)
				if err != nil {
					return fmt.Errorf("invalid date: %w", err)
				}
			}

			hd, err := a.cal.HebrewDate(date)
			if err != nil {
				return fmt.Errorf("failed to convert date: %w", err)
			}
			day, named, err := a.cal.SignificantDay(date)
			if err != nil {
				return fmt.Errorf("failed to look up significant day: %w", err)
			}
			roshChodesh, err := a.cal.IsRoshChodesh(date)
			if err != nil {
				return fmt.Errorf("failed to look up rosh chodesh: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", dateutil.FormatDate(date), date.Weekday())
			fmt.Fprintf(out, "  Hebrew date:    %d %s %d\n", hd.Day, hd.Month.DisplayName(), hd.Year)
			if named {
				fmt.Fprintf(out, "  Significant:    %s\n", day.Title())
			}
			if roshChodesh {
				fmt.Fprintln(out, "  Rosh Chodesh:   yes")
			}

			class, err := a.builder.Classifier().Classify(date)
			switch {
			case errors.Is(err, zmanim.ErrPrecondition):
				fmt.Fprintln(out, "  Classification: n/a (Erev Shabbos and Shabbos have fixed schedules)")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "  Classification: %s\n", class)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date to classify (default: today)")

	return cmd
}

func upcomingCmd() *cobra.Command {
	var fromStr string

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List significant days and Rosh Chodesh in the next 30 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp()
			if err != nil {
				return err
			}

			from := dateutil.Today(a.zone)
			if fromStr != "" {
				from, err = dateutil.ParseDate(fromStr, a.zone)
				if err != nil {
					return fmt.Errorf("invalid from date: %w", err)
				}
			}

			entries, err := a.scanner.Upcoming(from)
			if err != nil {
				return fmt.Errorf("failed to scan upcoming days: %w", err)
			}

			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No significant days in the %d days from %s\n", zmanim.Horizon, dateutil.FormatDate(from))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Upcoming(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "First date to scan (default: today)")

	return cmd
}

func daemonCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Publish the coming week's sheet on a schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp()
			if err != nil {
				return err
			}

			language, err := render.ParseLanguage(a.cfg.Output.Language)
			if err != nil {
				return err
			}

			d, err := daemon.NewDaemon(a.generator, a.archive, daemon.Options{
				Schedule:   a.cfg.Daemon.GetSchedule(),
				Zone:       a.zone,
				OutputFile: a.cfg.Output.File,
				Format:     a.cfg.Output.Format,
				Language:   language,
			}, logger)
			if err != nil {
				return err
			}

			if once {
				return d.RunOnce()
			}

			logger.Info("Starting daemon",
				zap.String("schedule", a.cfg.Daemon.GetSchedule()),
				zap.String("output_file", a.cfg.Output.File),
				zap.String("archive_dir", a.cfg.Output.ArchiveDir))

			return d.Start()
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Publish once and exit")

	return cmd
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/zmanim-sheet/internal/astro"
	"github.com/username/zmanim-sheet/internal/calendar"
	"github.com/username/zmanim-sheet/internal/config"
	"github.com/username/zmanim-sheet/internal/sheet"
	"github.com/username/zmanim-sheet/internal/zmanim"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "zmanim-sheet",
		Short: "Weekly zmanim sheet generator",
		Long:  "Compute the week's prayer times for a configured location from the Hebrew calendar and solar events",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Daemon.LogFile != "" {
				logger, err = initFileLogger(cfg.Daemon.LogFile, cfg.Daemon.LogLevel)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ., $HOME/.zmanim-sheet, /etc/zmanim-sheet)")

	rootCmd.AddCommand(weekCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(upcomingCmd())
	rootCmd.AddCommand(daemonCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the wired components shared by the commands
type app struct {
	cfg       *config.Config
	zone      *time.Location
	cal       calendar.Calendar
	builder   *zmanim.Builder
	scanner   *zmanim.Scanner
	generator *sheet.Generator
	archive   *sheet.Archive
}

func initializeApp() (*app, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	sun, err := astro.NewSunProvider(cfg.Location, cfg.Zmanim.Settings(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize solar provider: %w", err)
	}

	// Initialize calendar, with local overrides when configured
	var cal calendar.Calendar = calendar.NewHebrewCalendar(logger)
	if cfg.Calendar.OverridesFile != "" {
		compositeCal := calendar.NewCompositeCalendar(cal, calendar.NewFileCalendar(cfg.Calendar.OverridesFile, logger), logger)
		if err := compositeCal.LoadOverrides(); err != nil {
			logger.Warn("Failed to load calendar overrides, continuing without them",
				zap.String("file", cfg.Calendar.OverridesFile),
				zap.Error(err))
		}
		cal = compositeCal
	}

	builder := zmanim.NewBuilder(cal, sun, logger)
	scanner := zmanim.NewScanner(cal, logger)

	logger.Debug("Components initialized",
		zap.String("location", cfg.Location.Name),
		zap.Float64("latitude", cfg.Location.Latitude),
		zap.Float64("longitude", cfg.Location.Longitude),
		zap.String("timezone", cfg.Location.TimeZone))

	return &app{
		cfg:       cfg,
		zone:      sun.Zone(),
		cal:       cal,
		builder:   builder,
		scanner:   scanner,
		generator: sheet.NewGenerator(cfg.Location, sun.Zone(), zmanim.NewAssembler(builder, logger), scanner, logger),
		archive:   sheet.NewArchive(cfg.Output.ArchiveDir, logger),
	}, nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,   // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     90,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}

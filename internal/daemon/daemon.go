package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/username/zmanim-sheet/internal/render"
	"github.com/username/zmanim-sheet/internal/sheet"
	"github.com/username/zmanim-sheet/pkg/dateutil"
	"go.uber.org/zap"
)

// ErrPublishInProgress is returned when a publish is requested while another one is running
var ErrPublishInProgress = errors.New("publish already in progress")

// Options configures what the daemon publishes and when
type Options struct {
	Schedule   string // Cron expression, e.g. "0 20 * * 4"
	Zone       *time.Location
	OutputFile string
	Format     string
	Language   render.Language
}

// Daemon publishes the coming week's sheet on a cron schedule
type Daemon struct {
	generator *sheet.Generator
	archive   *sheet.Archive
	opts      Options
	logger    *zap.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	scheduler *cron.Cron
	entryID   cron.EntryID
	lastWeek  string    // Track last published week to avoid duplicates
	lastRun   time.Time // Track last successful run time
	mu        sync.Mutex
	running   bool // Set while a publish is in progress
	now       func() time.Time
}

// NewDaemon creates a new daemon instance
func NewDaemon(generator *sheet.Generator, archive *sheet.Archive, opts Options, logger *zap.Logger) (*Daemon, error) {
	if opts.Zone == nil {
		opts.Zone = time.UTC
	}

	scheduler := cron.New(cron.WithLocation(opts.Zone))
	ctx, cancel := context.WithCancel(context.Background())

	d := &Daemon{
		generator: generator,
		archive:   archive,
		opts:      opts,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		scheduler: scheduler,
		now:       time.Now,
	}

	id, err := scheduler.AddFunc(opts.Schedule, d.runScheduled)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to parse schedule %q: %w", opts.Schedule, err)
	}
	d.entryID = id

	return d, nil
}

// Start runs the daemon until Stop is called or the process is signalled.
// A week that has not been archived yet is published immediately.
func (d *Daemon) Start() error {
	d.logger.Info("Daemon started",
		zap.String("schedule", d.opts.Schedule),
		zap.String("timezone", d.opts.Zone.String()))

	week := sheet.NextSunday(d.now().In(d.opts.Zone))
	if !d.archive.Exists(week) {
		d.logger.Info("Coming week not published yet, publishing now",
			zap.String("week", dateutil.FormatDate(week)))
		if err := d.publish(); err != nil {
			d.logger.Error("Initial publish failed", zap.Error(err))
		}
	}

	d.scheduler.Start()
	d.logger.Info("Next publish scheduled", zap.Time("next_run", d.NextRun()))

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-d.ctx.Done():
		d.logger.Info("Daemon stopped")
	case sig := <-sigChan:
		d.logger.Info("Received signal, shutting down",
			zap.String("signal", sig.String()))
		d.Stop()
	}

	// Wait for a publish in progress
	<-d.scheduler.Stop().Done()
	return nil
}

// Stop stops the daemon
func (d *Daemon) Stop() {
	d.cancel()
}

// RunOnce publishes the coming week's sheet immediately
func (d *Daemon) RunOnce() error {
	d.logger.Info("Manual publish triggered")
	return d.publish()
}

// NextRun returns the next scheduled publish time
func (d *Daemon) NextRun() time.Time {
	entry := d.scheduler.Entry(d.entryID)
	if !entry.Next.IsZero() {
		return entry.Next
	}
	return entry.Schedule.Next(d.now().In(d.opts.Zone))
}

// GetStatus returns daemon status
func (d *Daemon) GetStatus() map[string]interface{} {
	next := d.NextRun()

	d.mu.Lock()
	defer d.mu.Unlock()

	return map[string]interface{}{
		"schedule":    d.opts.Schedule,
		"publishing":  d.running,
		"last_week":   d.lastWeek,
		"last_run":    d.lastRun,
		"next_run":    next,
		"output_file": d.opts.OutputFile,
	}
}

func (d *Daemon) runScheduled() {
	d.logger.Info("Starting scheduled publish", zap.Time("time", d.now()))
	if err := d.publish(); err != nil {
		d.logger.Error("Scheduled publish failed", zap.Error(err))
		return
	}
	d.logger.Info("Next publish scheduled", zap.Time("next_run", d.NextRun()))
}

// publish generates, renders and archives the coming week's sheet.
// The running flag is set under the mutex so that overlapping runs cannot write the same week twice.
func (d *Daemon) publish() error {
	now := d.now().In(d.opts.Zone)
	week := dateutil.FormatDate(sheet.NextSunday(now))

	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		d.logger.Warn("Publish already running, skipping concurrent execution")
		return ErrPublishInProgress
	}
	if d.lastWeek == week {
		lastRun := d.lastRun
		d.mu.Unlock()
		d.logger.Info("Week already published, skipping",
			zap.String("week", week),
			zap.Time("last_run", lastRun))
		return nil
	}
	d.running = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.running = false
		d.mu.Unlock()
	}()

	s, err := d.generator.Next(now)
	if err != nil {
		return fmt.Errorf("failed to generate sheet: %w", err)
	}

	out, err := render.Render(s, d.opts.Format, d.opts.Language)
	if err != nil {
		return fmt.Errorf("failed to render sheet: %w", err)
	}

	if d.opts.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(d.opts.OutputFile), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(d.opts.OutputFile, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}

	if err := d.archive.Save(s); err != nil {
		return fmt.Errorf("failed to archive sheet: %w", err)
	}

	finished := d.now()
	d.mu.Lock()
	d.lastWeek = week
	d.lastRun = finished
	d.mu.Unlock()

	d.logger.Info("Sheet published",
		zap.String("week", week),
		zap.String("output_file", d.opts.OutputFile),
		zap.Int("upcoming", len(s.Upcoming)))

	return nil
}

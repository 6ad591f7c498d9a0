package daemon

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leetboo/leetboo/internal/api"
	"github.com/leetboo/leetboo/internal/app/entitlement"
	"github.com/leetboo/leetboo/internal/app/habit"
	"github.com/leetboo/leetboo/internal/app/notify"
	"github.com/leetboo/leetboo/internal/infra/metrics"
	"github.com/leetboo/leetboo/internal/infra/store"
)

// Daemon is the core LeetBoo runtime. It wires together all services.
type Daemon struct {
	Config       Config
	DB           *store.DB
	Engine       *habit.Engine
	Scheduler    notify.Scheduler
	Planner      *notify.Planner
	Entitlements entitlement.Service
	Server       *api.Server
	cancel       context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	dir := cfg.Storage.Dir
	if dir == "" {
		dir = leetbooHome()
	}
	db, err := store.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	engine, err := habit.New(db, habit.SystemClock{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init engine: %w", err)
	}

	ent := entitlement.NewStatic(cfg.Subscription.Entitled)
	sched := notify.NewMemoryScheduler()
	planner := notify.NewPlanner(sched, engine, ent)

	// Banner confirmations silence the type's remaining reminders for
	// the rest of the day.
	engine.SetSuppressor(planner.SuppressForToday)

	// Keep the coin gauge fresh for any consumer-side mutation path.
	engine.Subscribe(func() {
		metrics.CurrentCoins.Set(float64(engine.Summarize().CurrentCoins))
	})

	srv := api.NewServer(engine, planner, sched, ent)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:       cfg,
		DB:           db,
		Engine:       engine,
		Scheduler:    sched,
		Planner:      planner,
		Entitlements: ent,
		Server:       srv,
	}, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	// Initial day refresh + reminder schedule, then keep refreshing on a
	// ticker — the daemon analog of app-foreground activation.
	d.refresh()
	go d.refreshLoop(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("LeetBoo serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// refresh runs the app-open pair and rebuilds the reminder schedule.
func (d *Daemon) refresh() {
	d.Engine.RefreshDay()
	if err := d.Planner.Rebuild(); err != nil {
		log.Printf("[daemon] rebuild reminders: %v", err)
	}
}

// refreshLoop re-evaluates resets, dismissals, and banners so the engine
// notices day and week rollovers while running.
func (d *Daemon) refreshLoop(ctx context.Context) {
	interval, err := time.ParseDuration(d.Config.Reminders.RefreshInterval)
	if err != nil || interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Engine.RefreshDay()
		}
	}
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}

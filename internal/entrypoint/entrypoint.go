// Package entrypoint wires the storage core together. Desktop frontends
// embed App and drive sessions themselves; Run starts the core headless
// with the maintenance queue and, in demo mode, a seeded account whose
// due scanner keeps posting notifications.
package entrypoint

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/techhome/techhome/internal/auth"
	"github.com/techhome/techhome/internal/config"
	"github.com/techhome/techhome/internal/database/alarms"
	"github.com/techhome/techhome/internal/database/audit"
	"github.com/techhome/techhome/internal/database/devices"
	"github.com/techhome/techhome/internal/database/lists"
	"github.com/techhome/techhome/internal/database/notes"
	"github.com/techhome/techhome/internal/database/notifications"
	"github.com/techhome/techhome/internal/database/reminders"
	"github.com/techhome/techhome/internal/database/renames"
	"github.com/techhome/techhome/internal/database/settings"
	"github.com/techhome/techhome/internal/database/timers"
	"github.com/techhome/techhome/internal/demo"
	"github.com/techhome/techhome/internal/export"
	"github.com/techhome/techhome/internal/scheduler"
	"github.com/techhome/techhome/internal/tasks"
	"github.com/techhome/techhome/internal/userdb"
)

// App holds every service a frontend needs.
type App struct {
	Config *config.Config
	Users  *userdb.Manager
	Auth   *auth.Service

	Audit         *audit.Repository
	Devices       *devices.Repository
	Renames       *renames.Repository
	Lists         *lists.Repository
	Notes         *notes.Repository
	Reminders     *reminders.Repository
	Alarms        *alarms.Repository
	Timers        *timers.Repository
	Notifications *notifications.Repository
	Settings      *settings.Repository

	Exporter *export.Exporter

	// Tasks is nil when the maintenance queue is disabled.
	Tasks *tasks.Client
}

// NewApp wires all services from the configuration.
func NewApp(cfg *config.Config) (*App, error) {
	mgr := userdb.NewManager(cfg.Database.DataDir)

	app := &App{
		Config:        cfg,
		Users:         mgr,
		Auth:          auth.NewService(mgr, cfg.Auth),
		Audit:         audit.NewRepository(mgr),
		Devices:       devices.NewRepository(mgr),
		Renames:       renames.NewRepository(mgr),
		Lists:         lists.NewRepository(mgr),
		Notes:         notes.NewRepository(mgr),
		Reminders:     reminders.NewRepository(mgr),
		Alarms:        alarms.NewRepository(mgr),
		Timers:        timers.NewRepository(mgr),
		Notifications: notifications.NewRepository(mgr, cfg.Notifications.Max),
		Settings:      settings.NewRepository(mgr),
	}

	exportDir := cfg.Database.ExportDir
	if exportDir == "" {
		exportDir = filepath.Join(cfg.Database.DataDir, "exports")
	}
	app.Exporter = export.NewExporter(exportDir, export.Stores{
		Devices:       app.Devices,
		Renames:       app.Renames,
		Lists:         app.Lists,
		Notes:         app.Notes,
		Reminders:     app.Reminders,
		Alarms:        app.Alarms,
		Timers:        app.Timers,
		Notifications: app.Notifications,
		Settings:      app.Settings,
	})

	if cfg.Tasks.Enabled {
		client, err := tasks.NewClient(cfg.Database.DataDir, tasks.Config{
			Workers:           cfg.Tasks.Workers,
			ActionRetention:   cfg.Tasks.ActionRetention,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		})
		if err != nil {
			return nil, err
		}
		client.Register(
			tasks.NewTrimActionsQueue(app.Audit),
			tasks.NewSweepNotificationsQueue(app.Notifications),
		)
		app.Tasks = client
	}

	return app, nil
}

// NewDueScanner creates a due scanner bound to one user's session.
func (a *App) NewDueScanner(username string) *scheduler.DueScanner {
	return scheduler.NewDueScanner(username, a.Alarms, a.Reminders, a.Timers, a.Notifications)
}

// ScheduleMaintenance enqueues the periodic cleanup tasks for a user.
// Frontends call this once per login.
func (a *App) ScheduleMaintenance(ctx context.Context, username string) error {
	if a.Tasks == nil {
		return nil
	}
	retentionDays := int(a.Config.Tasks.ActionRetention / (24 * time.Hour))
	_, err := a.Tasks.Add(
		tasks.TrimActionsTask{Username: username, RetentionDays: retentionDays},
		tasks.SweepNotificationsTask{Username: username},
	).Ctx(ctx).Save()
	return err
}

// Close releases the task queue resources.
func (a *App) Close() {
	if a.Tasks != nil {
		if err := a.Tasks.Close(); err != nil {
			log.Printf("Error closing task client: %v", err)
		}
	}
}

// Run starts the core and blocks until SIGINT or SIGTERM.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting TechHome v%s", version)

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	var taskCancel context.CancelFunc
	if app.Tasks != nil {
		var taskCtx context.Context
		taskCtx, taskCancel = context.WithCancel(context.Background())
		defer taskCancel()
		go app.Tasks.Start(taskCtx)
	}

	var scanner *scheduler.DueScanner
	if cfg.Demo.Enabled {
		log.Printf("Demo mode enabled, seeding account '%s'", cfg.Demo.Username)
		if err := demo.Seed(demo.Stores{
			Auth:      app.Auth,
			Audit:     app.Audit,
			Devices:   app.Devices,
			Lists:     app.Lists,
			Notes:     app.Notes,
			Reminders: app.Reminders,
			Alarms:    app.Alarms,
			Timers:    app.Timers,
			Settings:  app.Settings,
		}, cfg.Demo.Username, cfg.Demo.Password); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}

		if err := app.ScheduleMaintenance(context.Background(), cfg.Demo.Username); err != nil {
			log.Printf("Failed to schedule maintenance: %v", err)
		}

		if cfg.Scheduler.Enabled {
			scanner = app.NewDueScanner(cfg.Demo.Username)
			if err := scanner.Start(context.Background(), cfg.Scheduler.Schedule); err != nil {
				log.Fatalf("Failed to start due scanner: %v", err)
			}
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	log.Printf("Shutting down, waiting up to %v", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if scanner != nil {
		scanner.Stop()
	}
	if app.Tasks != nil {
		app.Tasks.Stop(ctx)
		taskCancel()
	}

	log.Println("Exiting")
}

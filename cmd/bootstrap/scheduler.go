package bootstrap

import (
	"context"
	"log/slog"

	"coworking-admin/internal/pkg/config"
	"coworking-admin/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(
		StartScheduler,
	),
)

// StartScheduler warms both panels on startup and keeps their derived
// status fresh on the configured cron spec.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, panels *usecase.Panels, log *slog.Logger) error {
	runner := cron.New()

	refresh := func(name string, panel *usecase.Panel) func() {
		return func() {
			if err := panel.RefreshResources(context.Background()); err != nil {
				log.Error("scheduled status refresh failed", "panel", name, "error", err)
			}
		}
	}

	if _, err := runner.AddFunc(cfg.Scheduler.StatusRefresh, refresh("desks", panels.Desks)); err != nil {
		return err
	}
	if _, err := runner.AddFunc(cfg.Scheduler.StatusRefresh, refresh("stands", panels.Stands)); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ctx := context.Background()
				if err := panels.Desks.Load(ctx); err != nil {
					log.Error("initial desk load failed", "error", err)
				}
				if err := panels.Stands.Load(ctx); err != nil {
					log.Error("initial stand load failed", "error", err)
				}
			}()
			runner.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-runner.Stop().Done():
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		},
	})
	return nil
}

package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"todo-backend/domain/repositories"
	"todo-backend/pkg/logger"
)

// StatsReporter periodically logs entity counts as an operational
// heartbeat. Purely observational: it never mutates the store.
type StatsReporter struct {
	scheduler *gocron.Scheduler
	users     repositories.UserRepository
	lists     repositories.ListRepository
	tasks     repositories.TaskRepository
}

func NewStatsReporter(users repositories.UserRepository, lists repositories.ListRepository, tasks repositories.TaskRepository) *StatsReporter {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	return &StatsReporter{
		scheduler: s,
		users:     users,
		lists:     lists,
		tasks:     tasks,
	}
}

func (r *StatsReporter) Start(interval time.Duration) error {
	if interval <= 0 {
		logger.Info("Stats reporter disabled")
		return nil
	}

	if _, err := r.scheduler.Every(interval).Do(r.report); err != nil {
		return err
	}

	r.scheduler.StartAsync()
	logger.Info("Stats reporter started", "interval", interval.String())
	return nil
}

func (r *StatsReporter) Stop() {
	r.scheduler.Stop()
}

func (r *StatsReporter) report() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users, err := r.users.Count(ctx)
	if err != nil {
		logger.Warn("Stats: user count failed", "error", err)
		return
	}
	lists, err := r.lists.Count(ctx)
	if err != nil {
		logger.Warn("Stats: list count failed", "error", err)
		return
	}
	tasks, err := r.tasks.Count(ctx)
	if err != nil {
		logger.Warn("Stats: task count failed", "error", err)
		return
	}

	logger.Info("Entity stats", "users", users, "lists", lists, "tasks", tasks)
}

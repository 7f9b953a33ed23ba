package jobs

import (
	"context"
	"time"

	"rentdesk/services/logger"

	"github.com/robfig/cron/v3"
)

const (
	// RentReminderSpec runs at 09:00 on the 1st and 10th of every month.
	RentReminderSpec = "0 9 1,10 * *"
	KeepAliveSpec    = "@every 5m"
	jobTimeout       = 2 * time.Minute
)

// RentReminder notifies tenants with rent still due for a month.
type RentReminder interface {
	Run(ctx context.Context, now time.Time) (int, error)
}

// InitCronJobs registers the jobs and starts the scheduler. keepAlive may
// be nil.
func InitCronJobs(c *cron.Cron, reminder RentReminder, keepAlive *KeepAlive, log logger.Logger) error {
	_, err := c.AddFunc(RentReminderSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		now := time.Now()
		log.Info("running rent reminders at %v", now)
		if _, err := reminder.Run(ctx, now); err != nil {
			log.Error("rent reminders failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	if keepAlive != nil {
		if _, err := c.AddFunc(KeepAliveSpec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			keepAlive.Ping(ctx)
		}); err != nil {
			return err
		}
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}

package services

import (
	"rentdesk/repository"
	"rentdesk/services/logger"
	"rentdesk/services/metrics"
	"rentdesk/services/notification"
)

// ServiceOptions carries the shared dependencies of the domain services.
// Locker, Logger and Notifier fall back to working defaults when nil.
type ServiceOptions struct {
	Store    *repository.Store
	Locker   *KeyedLocker
	Logger   logger.Logger
	Notifier notification.Notifier
	Metrics  *metrics.Metrics
}

func (o ServiceOptions) withDefaults() ServiceOptions {
	if o.Locker == nil {
		o.Locker = NewKeyedLocker()
	}
	if o.Logger == nil {
		o.Logger = logger.NewNop()
	}
	if o.Notifier == nil {
		o.Notifier = notification.Nop{}
	}
	return o
}

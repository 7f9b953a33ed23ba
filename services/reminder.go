package services

import (
	"context"
	"fmt"
	"time"

	"rentdesk/constants"
	"rentdesk/repository"
	"rentdesk/services/logger"
	"rentdesk/services/notification"
)

// DueReminder pushes a rent-due message to every tenant whose payment for
// the month is missing or not fully paid.
type DueReminder struct {
	store    *repository.Store
	notifier notification.Notifier
	logger   logger.Logger
}

func NewDueReminder(opts ServiceOptions) *DueReminder {
	opts = opts.withDefaults()
	return &DueReminder{
		store:    opts.Store,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}
}

// Run sends reminders for the billing month containing now and returns the
// number of tenants notified.
func (r *DueReminder) Run(ctx context.Context, now time.Time) (int, error) {
	month := now.Format(constants.BillingMonthLayout)
	rooms, err := r.store.ListRooms(ctx, repository.RoomFilter{Status: constants.RoomStatusOccupied})
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, room := range rooms {
		if room.TenantID == nil {
			continue
		}
		payment, err := r.store.FindPayment(ctx, *room.TenantID, room.ID, month)
		if err != nil {
			return sent, err
		}
		var text string
		switch {
		case payment == nil:
			text = fmt.Sprintf("Rent of %d for room %s is due for %s", room.Rent, room.RoomNumber, month)
		case payment.Status != constants.PaymentStatusPaid:
			text = fmt.Sprintf("%d of %d is still due for room %s in %s",
				payment.RentAmount-payment.PaidAmount, payment.RentAmount, room.RoomNumber, month)
		default:
			continue
		}
		msg := notification.NewMessageBuilder("rent_due").WithRoom(room.ID).WithMonth(month).WithText(text).Build()
		if err := r.notifier.NotifyUser(*room.TenantID, msg); err != nil {
			r.logger.Error("rent reminder for tenant %d: %v", *room.TenantID, err)
			continue
		}
		sent++
	}
	r.logger.Info("rent reminders for %s sent to %d tenants", month, sent)
	return sent, nil
}

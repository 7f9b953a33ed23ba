package services

import (
	"context"
	"time"

	"rentdesk/builders"
	"rentdesk/constants"
	"rentdesk/errors"
	"rentdesk/models"
	"rentdesk/repository"
	"rentdesk/services/logger"
	"rentdesk/services/metrics"
	"rentdesk/services/notification"
	"rentdesk/validator"
)

// PaymentInput is a payment for one billing month. Empty Mode means Cash and
// a zero Date means now.
type PaymentInput struct {
	TenantID   uint
	RoomID     uint
	Month      string
	PaidAmount int64
	Mode       string
	Date       time.Time
}

// PaymentUpdate holds optional amendments; rent and month never change.
type PaymentUpdate struct {
	PaidAmount *int64
	Mode       *string
	Date       *time.Time
}

// PaymentFilter narrows the admin payment listing.
type PaymentFilter struct {
	BuildingID uint
	TenantID   uint
	RoomID     uint
	Month      string
	Status     string
}

type TenantSummary struct {
	TotalRent   int64           `json:"totalRent"`
	TotalPaid   int64           `json:"totalPaid"`
	DueAmount   int64           `json:"dueAmount"`
	LastPayment *models.Payment `json:"lastPayment"`
}

// PaymentLedger records monthly rent payments.
type PaymentLedger struct {
	store    *repository.Store
	locks    *KeyedLocker
	logger   logger.Logger
	notifier notification.Notifier
	metrics  *metrics.Metrics
}

func NewPaymentLedger(opts ServiceOptions) *PaymentLedger {
	opts = opts.withDefaults()
	return &PaymentLedger{
		store:    opts.Store,
		locks:    opts.Locker,
		logger:   opts.Logger,
		notifier: opts.Notifier,
		metrics:  opts.Metrics,
	}
}

func (l *PaymentLedger) AddPayment(ctx context.Context, in PaymentInput) (*models.Payment, error) {
	if err := validator.ValidateMonth(in.Month); err != nil {
		return nil, err
	}
	if err := validator.ValidateAmount(in.PaidAmount); err != nil {
		return nil, err
	}
	if in.Mode != "" {
		if err := validator.ValidatePaymentMode(in.Mode); err != nil {
			return nil, err
		}
	}

	unlock, err := l.locks.Lock(ctx, RoomKey(in.RoomID), TenantKey(in.TenantID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	var payment *models.Payment
	err = l.store.Transaction(ctx, func(tx *repository.Store) error {
		room, err := tx.GetRoomForUpdate(ctx, in.RoomID)
		if err != nil {
			return err
		}
		if room.TenantID == nil || *room.TenantID != in.TenantID {
			return errors.ErrNotAssigned
		}
		existing, err := tx.FindPayment(ctx, in.TenantID, in.RoomID, in.Month)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrDuplicateBillingPeriod
		}

		payment = builders.NewPaymentBuilder().
			ForTenant(in.TenantID).
			ForRoom(room).
			WithMonth(in.Month).
			WithPaidAmount(in.PaidAmount).
			WithMode(in.Mode).
			WithDate(in.Date).
			Build()
		if err := checkPaidAmount(payment.PaidAmount, payment.RentAmount); err != nil {
			return err
		}
		return tx.CreatePayment(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	l.metrics.RecordPayment("create", payment.Status, payment.PaidAmount)
	l.logger.Info("payment %d recorded for tenant %d room %d month %s: %d/%d %s",
		payment.ID, payment.TenantID, payment.RoomID, payment.Month, payment.PaidAmount, payment.RentAmount, payment.Status)
	l.notify(payment, "payment_recorded")
	return l.store.GetPayment(ctx, payment.ID)
}

func (l *PaymentLedger) UpdatePayment(ctx context.Context, paymentID uint, in PaymentUpdate) (*models.Payment, error) {
	if in.PaidAmount != nil {
		if err := validator.ValidateAmount(*in.PaidAmount); err != nil {
			return nil, err
		}
	}
	if in.Mode != nil && *in.Mode != "" {
		if err := validator.ValidatePaymentMode(*in.Mode); err != nil {
			return nil, err
		}
	}

	unlock, err := l.locks.Lock(ctx, PaymentKey(paymentID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	var payment *models.Payment
	err = l.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		payment, err = tx.GetPaymentForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if in.PaidAmount != nil {
			if err := checkPaidAmount(*in.PaidAmount, payment.RentAmount); err != nil {
				return err
			}
			payment.PaidAmount = *in.PaidAmount
		}
		if in.Mode != nil && *in.Mode != "" {
			payment.PaymentMode = *in.Mode
		}
		if in.Date != nil && !in.Date.IsZero() {
			payment.PaymentDate = *in.Date
		}
		return tx.SavePayment(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	l.metrics.RecordPayment("update", payment.Status, payment.PaidAmount)
	l.logger.Info("payment %d updated: %d/%d %s", payment.ID, payment.PaidAmount, payment.RentAmount, payment.Status)
	l.notify(payment, "payment_updated")
	return l.store.GetPayment(ctx, payment.ID)
}

func (l *PaymentLedger) GetPayment(ctx context.Context, paymentID uint) (*models.Payment, error) {
	return l.store.GetPayment(ctx, paymentID)
}

// ListForTenant returns the tenant's payments, most recent month first.
func (l *PaymentLedger) ListForTenant(ctx context.Context, tenantID uint) ([]models.Payment, error) {
	payments, err := l.store.ListPayments(ctx, repository.PaymentFilter{TenantID: tenantID})
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = make([]models.Payment, 0)
	}
	return payments, nil
}

func (l *PaymentLedger) ListPayments(ctx context.Context, f PaymentFilter) ([]models.Payment, error) {
	if f.Month != "" {
		if err := validator.ValidateMonth(f.Month); err != nil {
			return nil, err
		}
	}
	if f.Status != "" && !constants.IsPaymentStatus(f.Status) {
		return nil, errors.Validation(errors.ErrCodeInvalidFormat, "status must be DUE, PARTIAL or PAID")
	}
	payments, err := l.store.ListPayments(ctx, repository.PaymentFilter{
		TenantID:   f.TenantID,
		RoomID:     f.RoomID,
		BuildingID: f.BuildingID,
		Month:      f.Month,
		Status:     f.Status,
	})
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = make([]models.Payment, 0)
	}
	return payments, nil
}

func (l *PaymentLedger) ComputeTenantSummary(ctx context.Context, tenantID uint) (*TenantSummary, error) {
	payments, err := l.ListForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return SummarizePayments(payments), nil
}

// SummarizePayments totals payments ordered most recent month first.
func SummarizePayments(payments []models.Payment) *TenantSummary {
	summary := &TenantSummary{}
	for i := range payments {
		summary.TotalRent += payments[i].RentAmount
		summary.TotalPaid += payments[i].PaidAmount
		if summary.LastPayment == nil || payments[i].Month > summary.LastPayment.Month {
			p := payments[i]
			summary.LastPayment = &p
		}
	}
	if due := summary.TotalRent - summary.TotalPaid; due > 0 {
		summary.DueAmount = due
	}
	return summary
}

func checkPaidAmount(paid, rent int64) error {
	if paid > rent {
		return errors.Validation(errors.ErrCodeOverpayment, "paid amount exceeds the rent for this month")
	}
	return nil
}

func (l *PaymentLedger) notify(p *models.Payment, kind string) {
	msg := notification.NewMessageBuilder(kind).ForPayment(p).Build()
	if err := l.notifier.NotifyUser(p.TenantID, msg); err != nil {
		l.logger.Error("notify tenant %d about payment %d: %v", p.TenantID, p.ID, err)
	}
}

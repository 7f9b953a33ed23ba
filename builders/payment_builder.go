package builders

import (
	"time"

	"rentdesk/constants"
	"rentdesk/models"
)

// PaymentBuilder assembles a payment for a billing month. Rent and building
// are copied from the room at build time.
type PaymentBuilder struct {
	payment *models.Payment
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		payment: &models.Payment{PaymentMode: constants.PaymentModeCash},
	}
}

func (b *PaymentBuilder) ForTenant(tenantID uint) *PaymentBuilder {
	b.payment.TenantID = tenantID
	return b
}

// ForRoom snapshots the room's id, building and rent.
func (b *PaymentBuilder) ForRoom(room *models.Room) *PaymentBuilder {
	b.payment.RoomID = room.ID
	b.payment.BuildingID = room.BuildingID
	b.payment.RentAmount = room.Rent
	return b
}

func (b *PaymentBuilder) WithMonth(month string) *PaymentBuilder {
	b.payment.Month = month
	return b
}

func (b *PaymentBuilder) WithPaidAmount(amount int64) *PaymentBuilder {
	b.payment.PaidAmount = amount
	return b
}

// WithMode keeps the Cash default when mode is empty.
func (b *PaymentBuilder) WithMode(mode string) *PaymentBuilder {
	if mode != "" {
		b.payment.PaymentMode = mode
	}
	return b
}

// WithDate keeps the current time when date is zero.
func (b *PaymentBuilder) WithDate(date time.Time) *PaymentBuilder {
	b.payment.PaymentDate = date
	return b
}

func (b *PaymentBuilder) Build() *models.Payment {
	if b.payment.PaymentDate.IsZero() {
		b.payment.PaymentDate = time.Now()
	}
	b.payment.Status = models.DerivePaymentStatus(b.payment.PaidAmount, b.payment.RentAmount)
	return b.payment
}

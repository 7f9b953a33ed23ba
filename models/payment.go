package models

import (
	"time"

	"rentdesk/constants"

	"gorm.io/gorm"
)

type Payment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TenantID    uint      `json:"tenantId" gorm:"not null;uniqueIndex:idx_payments_period,priority:1"`
	RoomID      uint      `json:"roomId" gorm:"not null;uniqueIndex:idx_payments_period,priority:2;index"`
	BuildingID  uint      `json:"buildingId" gorm:"not null;index"`
	Month       string    `json:"month" gorm:"size:7;not null;uniqueIndex:idx_payments_period,priority:3"`
	RentAmount  int64     `json:"rentAmount" gorm:"not null"`
	PaidAmount  int64     `json:"paidAmount" gorm:"not null;default:0"`
	PaymentMode string    `json:"paymentMode" gorm:"size:32;not null"`
	PaymentDate time.Time `json:"paymentDate"`
	// Status is recomputed from PaidAmount and RentAmount in BeforeSave.
	Status    string    `json:"status" gorm:"size:16;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Tenant    *User     `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	Room      *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Building  *Building `json:"building,omitempty" gorm:"foreignKey:BuildingID"`
}

// DerivePaymentStatus maps amounts to DUE, PARTIAL or PAID.
func DerivePaymentStatus(paid, rent int64) string {
	switch {
	case paid <= 0:
		return constants.PaymentStatusDue
	case paid < rent:
		return constants.PaymentStatusPartial
	default:
		return constants.PaymentStatusPaid
	}
}

func (p *Payment) BeforeSave(tx *gorm.DB) error {
	p.Status = DerivePaymentStatus(p.PaidAmount, p.RentAmount)
	return nil
}

// All lists the models in migration order.
func All() []interface{} {
	return []interface{}{&User{}, &Building{}, &Room{}, &Payment{}}
}

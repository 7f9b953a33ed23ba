package repository

import (
	"context"

	"rentdesk/errors"
	"rentdesk/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// unscoped lets a payment preload the room and building it was billed
// against after they have been deleted.
func unscoped(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

// PaymentFilter narrows ListPayments; zero values are ignored.
type PaymentFilter struct {
	TenantID   uint
	RoomID     uint
	BuildingID uint
	Month      string
	Status     string
}

func (s *Store) CreatePayment(ctx context.Context, p *models.Payment) error {
	err := s.withCtx(ctx).Omit(clause.Associations).Create(p).Error
	if err = translate(err, nil); errors.CodeOf(err) == errors.ErrCodeDBDuplicate {
		return errors.ErrDuplicateBillingPeriod
	}
	return err
}

// SavePayment writes every column; the BeforeSave hook recomputes status.
func (s *Store) SavePayment(ctx context.Context, p *models.Payment) error {
	return translate(s.withCtx(ctx).Omit(clause.Associations).Save(p).Error, nil)
}

func (s *Store) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	var p models.Payment
	err := s.withCtx(ctx).Preload("Tenant").Preload("Room", unscoped).Preload("Building", unscoped).First(&p, id).Error
	if err != nil {
		return nil, translate(err, errors.ErrPaymentNotFound)
	}
	return &p, nil
}

func (s *Store) GetPaymentForUpdate(ctx context.Context, id uint) (*models.Payment, error) {
	var p models.Payment
	if err := s.forUpdate(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err, errors.ErrPaymentNotFound)
	}
	return &p, nil
}

// FindPayment returns the payment for the billing period, or nil.
func (s *Store) FindPayment(ctx context.Context, tenantID, roomID uint, month string) (*models.Payment, error) {
	var p models.Payment
	err := s.withCtx(ctx).
		Where("tenant_id = ? AND room_id = ? AND month = ?", tenantID, roomID, month).
		First(&p).Error
	found, err := firstOrNil(err)
	if !found {
		return nil, err
	}
	return &p, nil
}

// ListPayments returns matching payments, most recent month first.
func (s *Store) ListPayments(ctx context.Context, f PaymentFilter) ([]models.Payment, error) {
	tx := s.withCtx(ctx).Preload("Tenant").Preload("Room", unscoped).Preload("Building", unscoped)
	if f.TenantID != 0 {
		tx = tx.Where("tenant_id = ?", f.TenantID)
	}
	if f.RoomID != 0 {
		tx = tx.Where("room_id = ?", f.RoomID)
	}
	if f.BuildingID != 0 {
		tx = tx.Where("building_id = ?", f.BuildingID)
	}
	if f.Month != "" {
		tx = tx.Where("month = ?", f.Month)
	}
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	var payments []models.Payment
	if err := tx.Order("month DESC, id DESC").Find(&payments).Error; err != nil {
		return nil, translate(err, nil)
	}
	return payments, nil
}

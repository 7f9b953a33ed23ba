package repository

import (
	"context"

	"rentdesk/errors"
	"rentdesk/models"

	"gorm.io/gorm/clause"
)

func (s *Store) CreateBuilding(ctx context.Context, b *models.Building) error {
	return translate(s.withCtx(ctx).Omit(clause.Associations).Create(b).Error, nil)
}

func (s *Store) SaveBuilding(ctx context.Context, b *models.Building) error {
	return translate(s.withCtx(ctx).Omit(clause.Associations).Save(b).Error, nil)
}

func (s *Store) GetBuilding(ctx context.Context, id uint) (*models.Building, error) {
	var b models.Building
	if err := s.withCtx(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err, errors.ErrBuildingNotFound)
	}
	return &b, nil
}

func (s *Store) GetBuildingForUpdate(ctx context.Context, id uint) (*models.Building, error) {
	var b models.Building
	if err := s.forUpdate(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err, errors.ErrBuildingNotFound)
	}
	return &b, nil
}

func (s *Store) ListBuildings(ctx context.Context) ([]models.Building, error) {
	var buildings []models.Building
	if err := s.withCtx(ctx).Order("id").Find(&buildings).Error; err != nil {
		return nil, translate(err, nil)
	}
	return buildings, nil
}

func (s *Store) CountBuildings(ctx context.Context) (int64, error) {
	var n int64
	err := s.withCtx(ctx).Model(&models.Building{}).Count(&n).Error
	return n, translate(err, nil)
}

func (s *Store) DeleteBuilding(ctx context.Context, id uint) error {
	res := s.withCtx(ctx).Delete(&models.Building{}, id)
	if res.Error != nil {
		return translate(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return errors.ErrBuildingNotFound
	}
	return nil
}

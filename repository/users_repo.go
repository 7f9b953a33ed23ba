package repository

import (
	"context"
	"strings"

	"rentdesk/errors"
	"rentdesk/models"

	"gorm.io/gorm/clause"
)

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	err := s.withCtx(ctx).Omit(clause.Associations).Create(u).Error
	if err = translate(err, nil); errors.CodeOf(err) == errors.ErrCodeDBDuplicate {
		return errors.ErrEmailExists
	}
	return err
}

// SaveUser writes profile columns only; the assigned room is owned by rooms.
func (s *Store) SaveUser(ctx context.Context, u *models.User) error {
	err := s.withCtx(ctx).Omit(clause.Associations).Save(u).Error
	if err = translate(err, nil); errors.CodeOf(err) == errors.ErrCodeDBDuplicate {
		return errors.ErrEmailExists
	}
	return err
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.withCtx(ctx).Preload("AssignedRoom").First(&u, id).Error; err != nil {
		return nil, translate(err, errors.ErrUserNotFound)
	}
	return &u, nil
}

func (s *Store) GetUserForUpdate(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.forUpdate(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err, errors.ErrUserNotFound)
	}
	return &u, nil
}

// UserByEmail returns nil when no user has that email.
func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.withCtx(ctx).Where("email = ?", strings.ToLower(email)).First(&u).Error
	found, err := firstOrNil(err)
	if !found {
		return nil, err
	}
	return &u, nil
}

func (s *Store) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	var users []models.User
	err := s.withCtx(ctx).Preload("AssignedRoom.Building").
		Where("role = ?", role).Order("name, id").Find(&users).Error
	if err != nil {
		return nil, translate(err, nil)
	}
	return users, nil
}

func (s *Store) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := s.withCtx(ctx).Model(&models.User{}).Where("role = ?", role).Count(&n).Error
	return n, translate(err, nil)
}

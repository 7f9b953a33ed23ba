package repository

import (
	"context"

	"rentdesk/errors"
	"rentdesk/models"

	"gorm.io/gorm/clause"
)

// RoomFilter narrows ListRooms; zero values are ignored.
type RoomFilter struct {
	BuildingID uint
	Status     string
}

// RoomStatusCount is one row of the rooms grouped by building and status.
type RoomStatusCount struct {
	BuildingID uint
	Status     string
	Count      int64
}

func (s *Store) CreateRoom(ctx context.Context, r *models.Room) error {
	return translate(s.withCtx(ctx).Omit(clause.Associations).Create(r).Error, nil)
}

// SaveRoom writes every column; the BeforeSave hook recomputes status.
func (s *Store) SaveRoom(ctx context.Context, r *models.Room) error {
	return translate(s.withCtx(ctx).Omit(clause.Associations).Save(r).Error, nil)
}

func (s *Store) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	var r models.Room
	if err := s.withCtx(ctx).Preload("Building").Preload("Tenant").First(&r, id).Error; err != nil {
		return nil, translate(err, errors.ErrRoomNotFound)
	}
	return &r, nil
}

func (s *Store) GetRoomForUpdate(ctx context.Context, id uint) (*models.Room, error) {
	var r models.Room
	if err := s.forUpdate(ctx).First(&r, id).Error; err != nil {
		return nil, translate(err, errors.ErrRoomNotFound)
	}
	return &r, nil
}

// RoomByNumber returns nil when the building has no room with that number.
func (s *Store) RoomByNumber(ctx context.Context, buildingID uint, number string) (*models.Room, error) {
	var r models.Room
	err := s.withCtx(ctx).Where("building_id = ? AND room_number = ?", buildingID, number).First(&r).Error
	found, err := firstOrNil(err)
	if !found {
		return nil, err
	}
	return &r, nil
}

// RoomByTenant returns the room currently held by tenantID, or nil.
func (s *Store) RoomByTenant(ctx context.Context, tenantID uint) (*models.Room, error) {
	var r models.Room
	err := s.withCtx(ctx).Preload("Building").Where("tenant_id = ?", tenantID).First(&r).Error
	found, err := firstOrNil(err)
	if !found {
		return nil, err
	}
	return &r, nil
}

func (s *Store) ListRooms(ctx context.Context, f RoomFilter) ([]models.Room, error) {
	tx := s.withCtx(ctx).Preload("Building").Preload("Tenant")
	if f.BuildingID != 0 {
		tx = tx.Where("building_id = ?", f.BuildingID)
	}
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	var rooms []models.Room
	if err := tx.Order("building_id, room_number").Find(&rooms).Error; err != nil {
		return nil, translate(err, nil)
	}
	return rooms, nil
}

func (s *Store) CountRoomsInBuilding(ctx context.Context, buildingID uint) (int64, error) {
	var n int64
	err := s.withCtx(ctx).Model(&models.Room{}).Where("building_id = ?", buildingID).Count(&n).Error
	return n, translate(err, nil)
}

// CountRoomsByStatus groups every room by building and status in one query.
func (s *Store) CountRoomsByStatus(ctx context.Context) ([]RoomStatusCount, error) {
	var rows []RoomStatusCount
	err := s.withCtx(ctx).Model(&models.Room{}).
		Select("building_id, status, count(*) AS count").
		Group("building_id, status").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, nil)
	}
	return rows, nil
}

func (s *Store) DeleteRoom(ctx context.Context, id uint) error {
	res := s.withCtx(ctx).Delete(&models.Room{}, id)
	if res.Error != nil {
		return translate(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return errors.ErrRoomNotFound
	}
	return nil
}

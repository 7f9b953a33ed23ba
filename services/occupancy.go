package services

import (
	"context"
	"strings"
	"time"

	"rentdesk/constants"
	"rentdesk/errors"
	"rentdesk/models"
	"rentdesk/repository"
	"rentdesk/services/logger"
	"rentdesk/services/metrics"
	"rentdesk/validator"
)

// RoomInput holds the fields of a new room.
type RoomInput struct {
	BuildingID uint
	RoomNumber string
	Floor      string
	Rent       int64
	Deposit    int64
	Furniture  []string
}

// RoomUpdate holds optional room changes; nil fields are left untouched.
type RoomUpdate struct {
	RoomNumber *string
	Floor      *string
	Rent       *int64
	Deposit    *int64
	Furniture  []string
}

// OccupancyManager owns the room lifecycle and tenant assignment.
type OccupancyManager struct {
	store   *repository.Store
	locks   *KeyedLocker
	logger  logger.Logger
	metrics *metrics.Metrics
}

func NewOccupancyManager(opts ServiceOptions) *OccupancyManager {
	opts = opts.withDefaults()
	return &OccupancyManager{
		store:   opts.Store,
		locks:   opts.Locker,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
}

func (m *OccupancyManager) CreateRoom(ctx context.Context, in RoomInput) (*models.Room, error) {
	room := &models.Room{
		BuildingID: in.BuildingID,
		RoomNumber: strings.TrimSpace(in.RoomNumber),
		Floor:      strings.TrimSpace(in.Floor),
		Rent:       in.Rent,
		Deposit:    in.Deposit,
		Furniture:  models.Furniture(in.Furniture),
	}
	if err := validator.ValidateRoom(room); err != nil {
		return nil, err
	}

	err := m.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.GetBuilding(ctx, room.BuildingID); err != nil {
			return err
		}
		existing, err := tx.RoomByNumber(ctx, room.BuildingID, room.RoomNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrDuplicateRoomNumber
		}
		return duplicateRoomNumber(tx.CreateRoom(ctx, room))
	})
	if err != nil {
		return nil, err
	}
	m.logger.Info("room %d (%s) created in building %d", room.ID, room.RoomNumber, room.BuildingID)
	return room, nil
}

func (m *OccupancyManager) UpdateRoom(ctx context.Context, roomID uint, in RoomUpdate) (*models.Room, error) {
	unlock, err := m.locks.Lock(ctx, RoomKey(roomID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	var room *models.Room
	err = m.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		room, err = tx.GetRoomForUpdate(ctx, roomID)
		if err != nil {
			return err
		}
		if in.RoomNumber != nil {
			number := strings.TrimSpace(*in.RoomNumber)
			if number != room.RoomNumber {
				existing, err := tx.RoomByNumber(ctx, room.BuildingID, number)
				if err != nil {
					return err
				}
				if existing != nil {
					return errors.ErrDuplicateRoomNumber
				}
			}
			room.RoomNumber = number
		}
		if in.Floor != nil {
			room.Floor = strings.TrimSpace(*in.Floor)
		}
		if in.Rent != nil {
			room.Rent = *in.Rent
		}
		if in.Deposit != nil {
			room.Deposit = *in.Deposit
		}
		if in.Furniture != nil {
			room.Furniture = models.Furniture(in.Furniture)
		}
		if err := validator.ValidateRoom(room); err != nil {
			return err
		}
		return duplicateRoomNumber(tx.SaveRoom(ctx, room))
	})
	if err != nil {
		return nil, err
	}
	return m.store.GetRoom(ctx, roomID)
}

// AssignTenant moves an Available room to Occupied for tenantID.
func (m *OccupancyManager) AssignTenant(ctx context.Context, roomID, tenantID uint, occupiedFrom time.Time) (*models.Room, error) {
	unlock, err := m.locks.Lock(ctx, RoomKey(roomID), TenantKey(tenantID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	if occupiedFrom.IsZero() {
		occupiedFrom = time.Now()
	}
	occupiedFrom = occupiedFrom.UTC().Truncate(24 * time.Hour)

	err = m.store.Transaction(ctx, func(tx *repository.Store) error {
		room, err := tx.GetRoomForUpdate(ctx, roomID)
		if err != nil {
			return err
		}
		if room.DeriveStatus() != constants.RoomStatusAvailable {
			return errors.ErrInvalidState
		}
		tenant, err := tx.GetUserForUpdate(ctx, tenantID)
		if err != nil {
			return err
		}
		if !tenant.IsTenant() {
			return errors.Validation(errors.ErrCodeInvalidRole, "user is not a tenant")
		}
		held, err := tx.RoomByTenant(ctx, tenantID)
		if err != nil {
			return err
		}
		if held != nil && held.ID != room.ID {
			return errors.ErrAlreadyAssigned
		}

		room.TenantID = &tenant.ID
		room.OccupiedFrom = &occupiedFrom
		err = tx.SaveRoom(ctx, room)
		if errors.CodeOf(err) == errors.ErrCodeDBDuplicate {
			return errors.ErrAlreadyAssigned
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	m.metrics.RecordOccupancy("assign")
	m.logger.Info("tenant %d assigned to room %d", tenantID, roomID)
	return m.store.GetRoom(ctx, roomID)
}

// ReleaseTenant clears the tenant of an Occupied room. Payments are kept.
func (m *OccupancyManager) ReleaseTenant(ctx context.Context, roomID uint, toMaintenance bool) (*models.Room, error) {
	unlock, err := m.locks.Lock(ctx, RoomKey(roomID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	current, err := m.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if current.TenantID == nil {
		return nil, errors.ErrNotOccupied
	}
	// room:<id> sorts before tenant:<id>, so taking the tenant key second
	// keeps the global order.
	unlockTenant, err := m.locks.Lock(ctx, TenantKey(*current.TenantID))
	if err != nil {
		return nil, err
	}
	defer unlockTenant()

	var tenantID uint
	err = m.store.Transaction(ctx, func(tx *repository.Store) error {
		room, err := tx.GetRoomForUpdate(ctx, roomID)
		if err != nil {
			return err
		}
		if room.TenantID == nil {
			return errors.ErrNotOccupied
		}
		tenantID = *room.TenantID
		room.TenantID = nil
		room.OccupiedFrom = nil
		room.Maintenance = toMaintenance
		return tx.SaveRoom(ctx, room)
	})
	if err != nil {
		return nil, err
	}
	m.metrics.RecordOccupancy("release")
	m.logger.Info("tenant %d released from room %d (maintenance=%t)", tenantID, roomID, toMaintenance)
	return m.store.GetRoom(ctx, roomID)
}

// SetMaintenance toggles Available and Maintenance. Occupied rooms are
// rejected.
func (m *OccupancyManager) SetMaintenance(ctx context.Context, roomID uint, on bool) (*models.Room, error) {
	unlock, err := m.locks.Lock(ctx, RoomKey(roomID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	err = m.store.Transaction(ctx, func(tx *repository.Store) error {
		room, err := tx.GetRoomForUpdate(ctx, roomID)
		if err != nil {
			return err
		}
		if room.IsOccupied() {
			return errors.ErrInvalidState
		}
		if room.Maintenance == on {
			return nil
		}
		room.Maintenance = on
		return tx.SaveRoom(ctx, room)
	})
	if err != nil {
		return nil, err
	}
	m.metrics.RecordOccupancy("maintenance")
	return m.store.GetRoom(ctx, roomID)
}

func (m *OccupancyManager) DeleteRoom(ctx context.Context, roomID uint) error {
	unlock, err := m.locks.Lock(ctx, RoomKey(roomID))
	if err != nil {
		return err
	}
	defer unlock()

	return m.store.Transaction(ctx, func(tx *repository.Store) error {
		room, err := tx.GetRoomForUpdate(ctx, roomID)
		if err != nil {
			return err
		}
		if room.IsOccupied() {
			return errors.ErrRoomOccupied
		}
		return tx.DeleteRoom(ctx, roomID)
	})
}

func (m *OccupancyManager) GetRoom(ctx context.Context, roomID uint) (*models.Room, error) {
	return m.store.GetRoom(ctx, roomID)
}

// ListRooms filters by building and status; zero values match everything.
func (m *OccupancyManager) ListRooms(ctx context.Context, buildingID uint, status string) ([]models.Room, error) {
	if status != "" && !constants.IsRoomStatus(status) {
		return nil, errors.Validation(errors.ErrCodeInvalidFormat, "status must be Available, Occupied or Maintenance")
	}
	return m.store.ListRooms(ctx, repository.RoomFilter{BuildingID: buildingID, Status: status})
}

func (m *OccupancyManager) ListAvailableRooms(ctx context.Context, buildingID uint) ([]models.Room, error) {
	return m.ListRooms(ctx, buildingID, constants.RoomStatusAvailable)
}

// RoomForTenant returns the room held by tenantID, or nil.
func (m *OccupancyManager) RoomForTenant(ctx context.Context, tenantID uint) (*models.Room, error) {
	return m.store.RoomByTenant(ctx, tenantID)
}

func duplicateRoomNumber(err error) error {
	if errors.CodeOf(err) == errors.ErrCodeDBDuplicate {
		return errors.ErrDuplicateRoomNumber
	}
	return err
}

package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"rentdesk/constants"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type Room struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	BuildingID   uint       `json:"buildingId" gorm:"not null;uniqueIndex:idx_rooms_building_number,priority:1,where:deleted_at IS NULL"`
	RoomNumber   string     `json:"roomNumber" gorm:"size:32;not null;uniqueIndex:idx_rooms_building_number,priority:2,where:deleted_at IS NULL"`
	Floor        string     `json:"floor,omitempty" gorm:"size:16"`
	Rent         int64      `json:"rent" gorm:"not null"`
	Deposit      int64      `json:"deposit" gorm:"not null;default:0"`
	Furniture    Furniture  `json:"furniture"`
	Maintenance  bool       `json:"-" gorm:"not null;default:false"`
	TenantID     *uint      `json:"tenantId,omitempty" gorm:"uniqueIndex"`
	OccupiedFrom *time.Time `json:"occupiedFrom,omitempty"`
	// Status is recomputed from TenantID and Maintenance in BeforeSave.
	Status    string    `json:"status" gorm:"size:16;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	// Deleted rooms stay in the table so payments keep their reference.
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Building  *Building      `json:"building,omitempty" gorm:"foreignKey:BuildingID"`
	Tenant    *User          `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}

// DeriveStatus computes the room status from the authoritative fields.
func (r *Room) DeriveStatus() string {
	switch {
	case r.TenantID != nil:
		return constants.RoomStatusOccupied
	case r.Maintenance:
		return constants.RoomStatusMaintenance
	default:
		return constants.RoomStatusAvailable
	}
}

func (r *Room) IsOccupied() bool {
	return r.TenantID != nil
}

// CheckOccupancy verifies that tenant and occupiedFrom are set together and
// that an occupied room is not flagged for maintenance.
func (r *Room) CheckOccupancy() error {
	if (r.TenantID == nil) != (r.OccupiedFrom == nil) {
		return fmt.Errorf("room %d: tenant and occupiedFrom must be set together", r.ID)
	}
	if r.TenantID != nil && r.Maintenance {
		return fmt.Errorf("room %d: occupied room cannot be under maintenance", r.ID)
	}
	return nil
}

func (r *Room) BeforeSave(tx *gorm.DB) error {
	if err := r.CheckOccupancy(); err != nil {
		return err
	}
	r.Status = r.DeriveStatus()
	return nil
}

// Furniture is stored as a native text[] on postgres and as the same array
// literal in a text column elsewhere.
type Furniture []string

func (Furniture) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func (f Furniture) Value() (driver.Value, error) {
	if f == nil {
		return "{}", nil
	}
	return pq.StringArray(f).Value()
}

func (f *Furniture) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*f = Furniture(arr)
	return nil
}

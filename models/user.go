package models

import (
	"time"

	"rentdesk/constants"
)

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name             string    `gorm:"size:128;not null" json:"name"`
	Email            string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	ContactNumber    string    `gorm:"size:20" json:"contactNumber"`
	CurrentAddress   string    `json:"currentAddress"`
	PermanentAddress string    `json:"permanentAddress"`
	Role             string    `gorm:"size:16;not null;default:Tenant;index" json:"role"`
	// AssignedRoom is read through rooms.tenant_id; it is never written from
	// the user side.
	AssignedRoom *Room `gorm:"foreignKey:TenantID" json:"assignedRoom,omitempty"`
}

func (u *User) IsTenant() bool {
	return u.Role == constants.RoleTenant
}

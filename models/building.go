package models

import (
	"time"

	"gorm.io/gorm"
)

type Building struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"size:128;not null"`
	Address       string         `json:"address" gorm:"not null"`
	ContactEmail  string         `json:"contactEmail" gorm:"size:128"`
	ContactNumber string         `json:"contactNumber" gorm:"size:20"`
	Image         string         `json:"image,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	Rooms         []Room         `json:"rooms,omitempty" gorm:"foreignKey:BuildingID"`
}

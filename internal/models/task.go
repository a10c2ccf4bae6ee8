package models

import (
	"time"

	"gorm.io/gorm"
)

type Task struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Description string         `gorm:"type:varchar(255);not null" json:"task"`
	Completed   bool           `gorm:"not null;default:false" json:"completed"`
	OwnerID     uint64         `gorm:"not null" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

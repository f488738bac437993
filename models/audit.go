package models

import "time"

// Audit holds the creation/update trail shared by the menu tables.
// created_by_id and created_at are written on insert only.
type Audit struct {
	CreatedByID uint      `gorm:"column:created_by_id;not null;<-:create" json:"created_by_id"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;<-:create;autoCreateTime:false" json:"created_at"`
	UpdatedByID *uint     `gorm:"column:updated_by_id" json:"updated_by_id,omitempty"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false" json:"updated_at"`
}

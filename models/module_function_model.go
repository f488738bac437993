package models

import "time"

// ModuleFunction represents the module_functions table.
// Owned by a module and removed with it.
type ModuleFunction struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	ModuleID  uint      `gorm:"column:module_id;not null;index" json:"module_id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Code      *string   `gorm:"column:code;size:100" json:"code,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName returns the database table name for ModuleFunction model.
func (ModuleFunction) TableName() string {
	return "module_functions"
}

package models

// Module represents the modules table: one navigable page of the menu.
// The parent group is referenced by id only, so a serialized module never
// embeds its group.
type Module struct {
	ID              uint             `gorm:"primaryKey;column:id" json:"id"`
	Name            string           `gorm:"column:name;size:255;not null" json:"name"`
	URL             string           `gorm:"column:url;size:255;not null" json:"url"`
	Icon            *string          `gorm:"column:icon;size:255" json:"icon,omitempty"`
	Description     *string          `gorm:"column:description;type:text" json:"description,omitempty"`
	ModuleGroupID   uint             `gorm:"column:module_group_id;not null;index" json:"module_group_id"`
	ModuleFunctions []ModuleFunction `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"module_functions,omitempty"`
	Audit
}

// TableName returns the database table name for Module model.
func (Module) TableName() string {
	return "modules"
}

// Clone returns a deep copy of the module and its functions.
func (m Module) Clone() Module {
	out := m
	out.Icon = cloneString(m.Icon)
	out.Description = cloneString(m.Description)
	out.UpdatedByID = cloneUint(m.UpdatedByID)
	if m.ModuleFunctions != nil {
		out.ModuleFunctions = append([]ModuleFunction(nil), m.ModuleFunctions...)
	}
	return out
}

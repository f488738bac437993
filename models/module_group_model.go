package models

// ModuleGroup represents the module_groups table.
// A named menu category that exclusively owns its modules: deleting the group
// deletes every module in it.
type ModuleGroup struct {
	ID          uint     `gorm:"primaryKey;column:id" json:"id"`
	Name        string   `gorm:"column:group_name;size:255;not null" json:"name" validate:"notblank"`
	Description *string  `gorm:"column:description;type:text" json:"description,omitempty"`
	Icon        string   `gorm:"column:icon;size:255;not null" json:"icon"`
	URL         string   `gorm:"column:url;size:255;not null" json:"url"`
	Modules     []Module `gorm:"foreignKey:ModuleGroupID;constraint:OnDelete:CASCADE" json:"modules"`
	Audit
}

// TableName returns the database table name for ModuleGroup model.
func (ModuleGroup) TableName() string {
	return "module_groups"
}

// ValidationMessages maps "Field.tag" to the message reported for that failure.
func (ModuleGroup) ValidationMessages() map[string]string {
	return map[string]string{
		"Name.notblank": "Group name is mandatory",
	}
}

// Clone returns a deep copy suitable for modify-then-save.
func (g ModuleGroup) Clone() ModuleGroup {
	out := g
	out.Description = cloneString(g.Description)
	out.UpdatedByID = cloneUint(g.UpdatedByID)
	if g.Modules != nil {
		out.Modules = make([]Module, len(g.Modules))
		for i, m := range g.Modules {
			out.Modules[i] = m.Clone()
		}
	}
	return out
}

// ModuleGroupSummary is a group without its modules, plus how many it owns.
type ModuleGroupSummary struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Icon        string  `json:"icon"`
	URL         string  `json:"url"`
	ModuleCount int64   `json:"module_count"`
	Audit
}

// Summary returns the group's summary with the given module count.
func (g ModuleGroup) Summary(moduleCount int64) ModuleGroupSummary {
	return ModuleGroupSummary{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Icon:        g.Icon,
		URL:         g.URL,
		ModuleCount: moduleCount,
		Audit:       g.Audit,
	}
}

package models

// User is the minimal view of the LMS users table needed for audit references.
type User struct {
	ID       uint    `gorm:"primaryKey;column:id" json:"id"`
	Username string  `gorm:"column:username;size:100;not null;unique" json:"username"`
	Email    *string `gorm:"column:email;size:255" json:"email,omitempty"`
}

// TableName returns the database table name for User model.
func (User) TableName() string {
	return "users"
}

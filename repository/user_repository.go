package repository

import (
	"lmsmodules/config"
	"lmsmodules/models"

	"gorm.io/gorm"
)

// UserRepository reads and seeds the users referenced by audit columns.
type UserRepository interface {
	GetByID(tx *gorm.DB, id uint) (*models.User, error)
	FirstOrCreate(tx *gorm.DB, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository() UserRepository {
	return NewUserRepositoryWithDB(config.DB)
}

// NewUserRepositoryWithDB creates a user repository over db.
func NewUserRepositoryWithDB(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx == nil {
		return r.db
	}
	return tx
}

func (r *userRepository) GetByID(tx *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := r.conn(tx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FirstOrCreate loads the user with the same username, inserting it when missing.
func (r *userRepository) FirstOrCreate(tx *gorm.DB, user *models.User) error {
	return r.conn(tx).Where("username = ?", user.Username).FirstOrCreate(user).Error
}

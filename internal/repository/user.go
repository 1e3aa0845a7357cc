package repository

import (
	"github.com/formforge/formforge/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id string) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	SaveUser(u *user.User) error
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) GetUserByID(id string) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

package repository

import (
	"github.com/improvemycity/portal-go/models"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	SaveUser(user *models.User) error
	DeleteUser(id uint) error
	ListUsersByRole(roles ...models.UserRole) ([]models.User, error)
	ListStaffByCategory(categoryID uint, role models.UserRole) ([]models.User, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var u models.User
	if err := r.db.Preload("SelectedCategory").First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByEmail(email string) (models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) SaveUser(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

func (r *DBUserRepo) ListUsersByRole(roles ...models.UserRole) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("role IN ?", roles).
		Preload("SelectedCategory").
		Order("created_at desc").
		Find(&users).Error
	return users, err
}

// ListStaffByCategory returns staff of one role whose selected category
// matches, regardless of approval state; callers filter on approval.
func (r *DBUserRepo) ListStaffByCategory(categoryID uint, role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("role = ? AND selected_category_id = ?", role, categoryID).
		Preload("SelectedCategory").
		Order("created_at desc").
		Find(&users).Error
	return users, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}

package repository

import (
	"github.com/improvemycity/portal-go/models"
	"gorm.io/gorm"
)

type CategoryRepo interface {
	CreateCategory(category *models.Category) error
	GetCategoryByID(id uint) (models.Category, error)
	ListCategories() ([]models.Category, error)
	SaveCategory(category *models.Category) error
	DeleteCategory(id uint) error
	IsReferenced(id uint) (bool, error)
	WithTx(tx *gorm.DB) CategoryRepo
}

type DBCategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *DBCategoryRepo {
	return &DBCategoryRepo{db: db}
}

func (r *DBCategoryRepo) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *DBCategoryRepo) GetCategoryByID(id uint) (models.Category, error) {
	var cat models.Category
	if err := r.db.First(&cat, id).Error; err != nil {
		return cat, err
	}
	return cat, nil
}

func (r *DBCategoryRepo) ListCategories() ([]models.Category, error) {
	var cats []models.Category
	err := r.db.Order("name asc").Find(&cats).Error
	return cats, err
}

func (r *DBCategoryRepo) SaveCategory(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *DBCategoryRepo) DeleteCategory(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// IsReferenced reports whether any complaint, subcategory, or staff
// member still points at the category. Deletes are forbidden while it
// does.
func (r *DBCategoryRepo) IsReferenced(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Complaint{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := r.db.Model(&models.SubCategory{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := r.db.Model(&models.User{}).Where("selected_category_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DBCategoryRepo) WithTx(tx *gorm.DB) CategoryRepo {
	if tx == nil {
		return r
	}
	return &DBCategoryRepo{db: tx}
}

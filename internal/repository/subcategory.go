package repository

import (
	"github.com/improvemycity/portal-go/models"
	"gorm.io/gorm"
)

type SubCategoryRepo interface {
	CreateSubCategory(sub *models.SubCategory) error
	GetSubCategoryByID(id uint) (models.SubCategory, error)
	ListSubCategoriesByCategory(categoryID uint) ([]models.SubCategory, error)
	SaveSubCategory(sub *models.SubCategory) error
	DeleteSubCategory(id uint) error
	IsSubCategoryReferenced(id uint) (bool, error)
	WithTx(tx *gorm.DB) SubCategoryRepo
}

type DBSubCategoryRepo struct {
	db *gorm.DB
}

func NewSubCategoryRepo(db *gorm.DB) *DBSubCategoryRepo {
	return &DBSubCategoryRepo{db: db}
}

func (r *DBSubCategoryRepo) CreateSubCategory(sub *models.SubCategory) error {
	return r.db.Create(sub).Error
}

func (r *DBSubCategoryRepo) GetSubCategoryByID(id uint) (models.SubCategory, error) {
	var sub models.SubCategory
	if err := r.db.Preload("Category").First(&sub, id).Error; err != nil {
		return sub, err
	}
	return sub, nil
}

func (r *DBSubCategoryRepo) ListSubCategoriesByCategory(categoryID uint) ([]models.SubCategory, error) {
	var subs []models.SubCategory
	err := r.db.Where("category_id = ?", categoryID).Order("name asc").Find(&subs).Error
	return subs, err
}

func (r *DBSubCategoryRepo) SaveSubCategory(sub *models.SubCategory) error {
	return r.db.Save(sub).Error
}

func (r *DBSubCategoryRepo) DeleteSubCategory(id uint) error {
	return r.db.Delete(&models.SubCategory{}, id).Error
}

func (r *DBSubCategoryRepo) IsSubCategoryReferenced(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Complaint{}).Where("sub_category_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *DBSubCategoryRepo) WithTx(tx *gorm.DB) SubCategoryRepo {
	if tx == nil {
		return r
	}
	return &DBSubCategoryRepo{db: tx}
}

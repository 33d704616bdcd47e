package repository

import (
	"errors"

	"github.com/improvemycity/portal-go/models"
	"gorm.io/gorm"
)

type ReviewRepo interface {
	CreateReview(review *models.Review) error
	ListReviews() ([]models.Review, error)
	HasReviewByUser(userID uint) (bool, error)
	WithTx(tx *gorm.DB) ReviewRepo
}

type DBReviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) *DBReviewRepo {
	return &DBReviewRepo{db: db}
}

func (r *DBReviewRepo) CreateReview(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *DBReviewRepo) ListReviews() ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("User").Order("created_at desc").Find(&reviews).Error
	return reviews, err
}

func (r *DBReviewRepo) HasReviewByUser(userID uint) (bool, error) {
	var review models.Review
	err := r.db.Where("user_id = ?", userID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *DBReviewRepo) WithTx(tx *gorm.DB) ReviewRepo {
	if tx == nil {
		return r
	}
	return &DBReviewRepo{db: tx}
}

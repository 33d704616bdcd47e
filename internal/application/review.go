package application

import (
	"fmt"

	"github.com/improvemycity/portal-go/dto"
	"github.com/improvemycity/portal-go/internal/repository"
	"github.com/improvemycity/portal-go/models"
)

type ReviewService struct {
	Repos *repository.Repos
}

func NewReviewService(repos *repository.Repos) *ReviewService {
	return &ReviewService{Repos: repos}
}

func (s *ReviewService) ListReviews() ([]models.Review, error) {
	return s.Repos.Review.ListReviews()
}

// CreateReview accepts one review per phone-verified user.
func (s *ReviewService) CreateReview(userID uint, input dto.CreateReviewDTO) (models.Review, error) {
	usr, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	if !usr.PhoneVerified {
		return models.Review{}, fmt.Errorf("%w: phone verification required", ErrForbidden)
	}

	exists, err := s.Repos.Review.HasReviewByUser(userID)
	if err != nil {
		return models.Review{}, err
	}
	if exists {
		return models.Review{}, ErrAlreadyReviewed
	}

	review := models.Review{
		UserID:  userID,
		Title:   input.Title,
		Comment: input.Comment,
		Rating:  input.Rating,
	}
	if err := s.Repos.Review.CreateReview(&review); err != nil {
		return models.Review{}, err
	}
	return review, nil
}

package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/improvemycity/portal-go/dto"
	"github.com/improvemycity/portal-go/internal/api/middleware"
	"github.com/improvemycity/portal-go/internal/otp"
	"github.com/improvemycity/portal-go/internal/repository"
	"github.com/improvemycity/portal-go/models"
	"github.com/improvemycity/portal-go/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	Repos    *repository.Repos
	otpStore otp.Store
}

func NewUserService(repos *repository.Repos, otpStore otp.Store) *UserService {
	return &UserService{
		Repos:    repos,
		otpStore: otpStore,
	}
}

// Register creates an account. Staff roles may self-register but start
// unapproved and category-less; admin accounts are never created here.
func (s *UserService) Register(input dto.RegisterDTO) (models.User, error) {
	_, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}
	if err == nil {
		return models.User{}, ErrEmailTaken
	}

	role := input.Role
	switch role {
	case "":
		role = models.UserRoleCitizen
	case models.UserRoleCitizen, models.UserRoleEmployee, models.UserRoleSubEmployee:
	default:
		return models.User{}, fmt.Errorf("%w: role %q cannot be self-registered", ErrValidation, input.Role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	usr := models.User{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Password:       string(hashed),
		Role:           role,
		ApprovalStatus: models.ApprovalUnselected,
	}
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return models.User{}, err
	}
	return usr, nil
}

func (s *UserService) Login(email, password string) (models.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Name, usr.Role, 24*time.Hour)
	if err != nil {
		return models.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) GetProfile(userID uint) (models.User, error) {
	usr, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return models.User{}, err
	}
	return usr, nil
}

func (s *UserService) UpdateProfile(userID uint, input dto.UpdateProfileDTO) (models.User, error) {
	usr, err := s.GetProfile(userID)
	if err != nil {
		return models.User{}, err
	}

	if input.Name != nil {
		usr.Name = *input.Name
	}
	if input.Phone != nil {
		// A changed number has to be verified again.
		if *input.Phone != usr.Phone {
			usr.PhoneVerified = false
		}
		usr.Phone = *input.Phone
	}

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return models.User{}, err
	}
	return usr, nil
}

// SendOTP issues a verification code for the user's phone. Actual SMS
// dispatch is out of scope; the code is logged for the operator.
func (s *UserService) SendOTP(ctx context.Context, userID uint) error {
	usr, err := s.GetProfile(userID)
	if err != nil {
		return err
	}
	if usr.Phone == "" {
		return fmt.Errorf("%w: no phone number on profile", ErrValidation)
	}

	code, err := s.otpStore.Issue(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: otp store: %v", ErrUpstream, err)
	}

	log.Printf("otp: code %s issued for user %d (phone %s)", code, userID, usr.Phone)
	return nil
}

func (s *UserService) VerifyOTP(ctx context.Context, userID uint, code string) error {
	if err := s.otpStore.Verify(ctx, userID, code); err != nil {
		switch {
		case errors.Is(err, otp.ErrCodeMismatch), errors.Is(err, otp.ErrCodeExpired):
			return fmt.Errorf("%w: %v", ErrValidation, err)
		default:
			return fmt.Errorf("%w: otp store: %v", ErrUpstream, err)
		}
	}

	usr, err := s.GetProfile(userID)
	if err != nil {
		return err
	}
	usr.PhoneVerified = true
	return s.Repos.User.SaveUser(&usr)
}

// UpdateProfilePic stores the already-uploaded object URL.
func (s *UserService) UpdateProfilePic(userID uint, url string) (models.User, error) {
	usr, err := s.GetProfile(userID)
	if err != nil {
		return models.User{}, err
	}
	usr.ProfilePicURL = url
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return models.User{}, err
	}
	return usr, nil
}

// ListCitizens returns the citizen accounts for the admin dashboard.
func (s *UserService) ListCitizens() ([]models.User, error) {
	return s.Repos.User.ListUsersByRole(models.UserRoleCitizen)
}

// RemoveUser deletes an account. Complaints keep a dangling user
// reference; reads tolerate it.
func (s *UserService) RemoveUser(adminID, userID uint) error {
	usr, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return err
	}
	if usr.Role == models.UserRoleAdmin {
		return fmt.Errorf("%w: admin accounts cannot be deleted", ErrForbidden)
	}
	if err := s.Repos.User.DeleteUser(userID); err != nil {
		return err
	}
	utils.LogAuditWithConsole(adminID, "delete", "user", fmt.Sprint(userID), usr.Email, s.Repos.Audit)
	return nil
}

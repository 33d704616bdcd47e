package application

import (
	"errors"
	"fmt"

	"github.com/improvemycity/portal-go/internal/repository"
	"github.com/improvemycity/portal-go/models"
	"github.com/improvemycity/portal-go/pkg/utils"
	"gorm.io/gorm"
)

// StaffService owns the category-approval state machine:
//
//	unselected --choose--> pending --approve--> approved
//	pending --reject--> rejected (terminal until a re-selection)
//	approved --disapprove--> pending (category retained)
//
// Employees are approved by admins; sub-employees by the approved
// employee of their category.
type StaffService struct {
	Repos *repository.Repos
}

func NewStaffService(repos *repository.Repos) *StaffService {
	return &StaffService{Repos: repos}
}

func (s *StaffService) getStaff(id uint) (models.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return models.User{}, err
	}
	if !usr.IsStaff() {
		return models.User{}, fmt.Errorf("%w: user %d is not staff", ErrValidation, id)
	}
	return usr, nil
}

// ChooseCategory moves a staff member into pending for the chosen
// category. Re-selection is allowed while pending or after rejection,
// never once approved.
func (s *StaffService) ChooseCategory(userID, categoryID uint) (models.User, error) {
	usr, err := s.getStaff(userID)
	if err != nil {
		return models.User{}, err
	}
	if usr.ApprovalStatus == models.ApprovalApproved {
		return models.User{}, fmt.Errorf("%w: category is locked while approved", ErrConflict)
	}

	if _, err := s.Repos.Category.GetCategoryByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
		}
		return models.User{}, err
	}

	usr.SelectedCategoryID = &categoryID
	usr.SelectedCategory = nil
	usr.ApprovalStatus = models.ApprovalPending
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return models.User{}, err
	}
	return s.Repos.User.GetUserByID(usr.ID)
}

// ListStaff returns every employee and sub-employee with category and
// approval state, for the admin dashboard.
func (s *StaffService) ListStaff() ([]models.User, error) {
	return s.Repos.User.ListUsersByRole(models.UserRoleEmployee, models.UserRoleSubEmployee)
}

// approve moves pending -> approved.
func (s *StaffService) approve(actorID uint, target models.User) (models.User, error) {
	if target.ApprovalStatus != models.ApprovalPending {
		return models.User{}, fmt.Errorf("%w: %s staff cannot be approved", ErrConflict, target.ApprovalStatus)
	}
	target.ApprovalStatus = models.ApprovalApproved
	if err := s.Repos.User.SaveUser(&target); err != nil {
		return models.User{}, err
	}
	utils.LogAuditWithConsole(actorID, "approve", "staff", fmt.Sprint(target.ID), string(target.Role), s.Repos.Audit)
	return target, nil
}

// reject moves pending -> rejected. The record is kept; the staffer
// may re-enter the cycle by choosing a category again.
func (s *StaffService) reject(actorID uint, target models.User) (models.User, error) {
	if target.ApprovalStatus != models.ApprovalPending {
		return models.User{}, fmt.Errorf("%w: %s staff cannot be rejected", ErrConflict, target.ApprovalStatus)
	}
	target.ApprovalStatus = models.ApprovalRejected
	if err := s.Repos.User.SaveUser(&target); err != nil {
		return models.User{}, err
	}
	utils.LogAuditWithConsole(actorID, "reject", "staff", fmt.Sprint(target.ID), string(target.Role), s.Repos.Audit)
	return target, nil
}

// disapprove moves approved -> pending, retaining the category.
// In-progress complaints assigned to the staffer stay assigned; they
// simply cannot act again until re-approved.
func (s *StaffService) disapprove(actorID uint, target models.User) (models.User, error) {
	if target.ApprovalStatus != models.ApprovalApproved {
		return models.User{}, fmt.Errorf("%w: %s staff cannot be disapproved", ErrConflict, target.ApprovalStatus)
	}
	target.ApprovalStatus = models.ApprovalPending
	if err := s.Repos.User.SaveUser(&target); err != nil {
		return models.User{}, err
	}
	utils.LogAuditWithConsole(actorID, "disapprove", "staff", fmt.Sprint(target.ID), string(target.Role), s.Repos.Audit)
	return target, nil
}

// --- Admin-driven transitions for employees ---

func (s *StaffService) ApproveEmployee(adminID, staffID uint) (models.User, error) {
	target, err := s.getStaff(staffID)
	if err != nil {
		return models.User{}, err
	}
	return s.approve(adminID, target)
}

func (s *StaffService) RejectEmployee(adminID, staffID uint) (models.User, error) {
	target, err := s.getStaff(staffID)
	if err != nil {
		return models.User{}, err
	}
	return s.reject(adminID, target)
}

func (s *StaffService) DisapproveEmployee(adminID, staffID uint) (models.User, error) {
	target, err := s.getStaff(staffID)
	if err != nil {
		return models.User{}, err
	}
	return s.disapprove(adminID, target)
}

// --- Employee-driven transitions for sub-employees of their category ---

// requireCategoryEmployee checks that the actor is an approved employee
// and that the target is a sub-employee of the same category.
func (s *StaffService) requireCategoryEmployee(employeeID, subID uint) (models.User, models.User, error) {
	employee, err := s.getStaff(employeeID)
	if err != nil {
		return models.User{}, models.User{}, err
	}
	if employee.Role != models.UserRoleEmployee {
		return models.User{}, models.User{}, fmt.Errorf("%w: employee role required", ErrForbidden)
	}
	if !employee.IsApproved() {
		return models.User{}, models.User{}, ErrNotApproved
	}

	target, err := s.getStaff(subID)
	if err != nil {
		return models.User{}, models.User{}, err
	}
	if target.Role != models.UserRoleSubEmployee {
		return models.User{}, models.User{}, fmt.Errorf("%w: target is not a sub-employee", ErrValidation)
	}
	if target.SelectedCategoryID == nil || *target.SelectedCategoryID != *employee.SelectedCategoryID {
		return models.User{}, models.User{}, ErrCategoryMismatch
	}
	return employee, target, nil
}

// ListSubEmployees returns the sub-employees of the employee's
// category, any approval state.
func (s *StaffService) ListSubEmployees(employeeID uint) ([]models.User, error) {
	employee, err := s.getStaff(employeeID)
	if err != nil {
		return nil, err
	}
	if employee.Role != models.UserRoleEmployee {
		return nil, fmt.Errorf("%w: employee role required", ErrForbidden)
	}
	if !employee.IsApproved() {
		return nil, ErrNotApproved
	}
	return s.Repos.User.ListStaffByCategory(*employee.SelectedCategoryID, models.UserRoleSubEmployee)
}

func (s *StaffService) ApproveSubEmployee(employeeID, subID uint) (models.User, error) {
	_, target, err := s.requireCategoryEmployee(employeeID, subID)
	if err != nil {
		return models.User{}, err
	}
	return s.approve(employeeID, target)
}

func (s *StaffService) DisapproveSubEmployee(employeeID, subID uint) (models.User, error) {
	_, target, err := s.requireCategoryEmployee(employeeID, subID)
	if err != nil {
		return models.User{}, err
	}
	return s.disapprove(employeeID, target)
}

func (s *StaffService) RejectSubEmployee(employeeID, subID uint) (models.User, error) {
	_, target, err := s.requireCategoryEmployee(employeeID, subID)
	if err != nil {
		return models.User{}, err
	}
	return s.reject(employeeID, target)
}

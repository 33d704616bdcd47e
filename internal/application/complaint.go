package application

import (
	"errors"
	"fmt"

	"github.com/improvemycity/portal-go/dto"
	"github.com/improvemycity/portal-go/internal/events"
	"github.com/improvemycity/portal-go/internal/repository"
	"github.com/improvemycity/portal-go/models"
	"github.com/improvemycity/portal-go/pkg/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ComplaintService owns the complaint lifecycle: creation, the
// category-scoped pool, assignment, and resolution. Every transition
// re-reads the acting staff member so approval revocation applies on
// the next action, and every transition is a compare-and-set at the
// repository so concurrent actors get exactly one winner.
type ComplaintService struct {
	Repos *repository.Repos
	hub   *events.Hub
}

func NewComplaintService(repos *repository.Repos, hub *events.Hub) *ComplaintService {
	return &ComplaintService{Repos: repos, hub: hub}
}

// Create validates and files a new complaint. The invariant that no
// complaint exists without photos, location, category, subcategory and
// problem text is enforced here, server-side, regardless of what the
// client already checked.
func (s *ComplaintService) Create(userID uint, input dto.CreateComplaintDTO) (models.Complaint, error) {
	if input.Problem == "" {
		return models.Complaint{}, fmt.Errorf("%w: problem is required", ErrValidation)
	}
	if len(input.Images) == 0 {
		return models.Complaint{}, fmt.Errorf("%w: at least one image is required", ErrValidation)
	}
	if input.Latitude == nil || input.Longitude == nil {
		return models.Complaint{}, fmt.Errorf("%w: location is required", ErrValidation)
	}
	lat, lng := *input.Latitude, *input.Longitude
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return models.Complaint{}, fmt.Errorf("%w: location out of range", ErrValidation)
	}

	if _, err := s.Repos.Category.GetCategoryByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Complaint{}, fmt.Errorf("%w: category %d", ErrNotFound, input.CategoryID)
		}
		return models.Complaint{}, err
	}
	sub, err := s.Repos.SubCategory.GetSubCategoryByID(input.SubCategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Complaint{}, fmt.Errorf("%w: subcategory %d", ErrNotFound, input.SubCategoryID)
		}
		return models.Complaint{}, err
	}
	if sub.CategoryID != input.CategoryID {
		return models.Complaint{}, fmt.Errorf("%w: subcategory does not belong to category", ErrValidation)
	}

	description := input.Description
	if description == "" {
		description = sub.Description
	}

	complaint := models.Complaint{
		UserID:        userID,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		Problem:       input.Problem,
		Description:   description,
		Images:        datatypes.NewJSONSlice(input.Images),
		Latitude:      lat,
		Longitude:     lng,
		Status:        models.ComplaintStatusPending,
	}
	if err := s.Repos.Complaint.CreateComplaint(&complaint); err != nil {
		return models.Complaint{}, err
	}

	s.hub.Publish(events.Event{
		Type:        events.EventComplaintCreated,
		ComplaintID: complaint.ID,
		CategoryID:  complaint.CategoryID,
		Status:      complaint.Status,
	})
	return complaint, nil
}

// ListMine returns the caller's own complaints, newest first.
func (s *ComplaintService) ListMine(userID uint) ([]models.Complaint, error) {
	return s.Repos.Complaint.ListComplaintsByUser(userID)
}

// requireApprovedStaff loads the acting user and checks they are an
// approved staff member with a category.
func (s *ComplaintService) requireApprovedStaff(userID uint) (models.User, error) {
	usr, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return models.User{}, err
	}
	if !usr.IsStaff() {
		return models.User{}, fmt.Errorf("%w: staff role required", ErrForbidden)
	}
	if !usr.IsApproved() {
		return models.User{}, ErrNotApproved
	}
	return usr, nil
}

// CategoryForStaff resolves the category an approved staff member
// works, for callers outside the service such as the event feed.
func (s *ComplaintService) CategoryForStaff(staffID uint) (uint, error) {
	staff, err := s.requireApprovedStaff(staffID)
	if err != nil {
		return 0, err
	}
	return *staff.SelectedCategoryID, nil
}

// ListForStaff returns the complaint pool for the staff member's
// approved category, newest first.
func (s *ComplaintService) ListForStaff(staffID uint) ([]models.Complaint, error) {
	staff, err := s.requireApprovedStaff(staffID)
	if err != nil {
		return nil, err
	}
	return s.Repos.Complaint.ListComplaintsByCategory(*staff.SelectedCategoryID)
}

// Summary returns per-status counts for the staff member's category.
func (s *ComplaintService) Summary(staffID uint) (models.ComplaintSummary, error) {
	staff, err := s.requireApprovedStaff(staffID)
	if err != nil {
		return models.ComplaintSummary{}, err
	}
	return s.Repos.Complaint.CountByCategory(*staff.SelectedCategoryID)
}

// Assign hands a complaint to a sub-employee. Caller must be an
// approved employee of the complaint's category; the target must be an
// approved sub-employee of the same category; the complaint must still
// be unassigned. The final claim is a compare-and-set so a concurrent
// assign yields exactly one winner.
func (s *ComplaintService) Assign(employeeID uint, input dto.AssignComplaintDTO) (models.Complaint, error) {
	employee, err := s.requireApprovedStaff(employeeID)
	if err != nil {
		return models.Complaint{}, err
	}
	if employee.Role != models.UserRoleEmployee {
		return models.Complaint{}, fmt.Errorf("%w: only employees assign complaints", ErrForbidden)
	}

	complaint, err := s.Repos.Complaint.GetComplaintByID(input.ComplaintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Complaint{}, fmt.Errorf("%w: complaint %d", ErrNotFound, input.ComplaintID)
		}
		return models.Complaint{}, err
	}
	if complaint.CategoryID != *employee.SelectedCategoryID {
		return models.Complaint{}, ErrCategoryMismatch
	}
	if complaint.AssignedEmployeeID != nil {
		return models.Complaint{}, ErrAlreadyAssigned
	}

	target, err := s.Repos.User.GetUserByID(input.SubEmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Complaint{}, fmt.Errorf("%w: sub-employee %d", ErrNotFound, input.SubEmployeeID)
		}
		return models.Complaint{}, err
	}
	if target.Role != models.UserRoleSubEmployee {
		return models.Complaint{}, fmt.Errorf("%w: target is not a sub-employee", ErrValidation)
	}
	if !target.IsApproved() {
		return models.Complaint{}, ErrNotApproved
	}
	if *target.SelectedCategoryID != complaint.CategoryID {
		return models.Complaint{}, ErrCategoryMismatch
	}

	ok, err := s.Repos.Complaint.AssignIfUnassigned(complaint.ID, target.ID)
	if err != nil {
		return models.Complaint{}, err
	}
	if !ok {
		// Lost the race against another employee.
		return models.Complaint{}, ErrAlreadyAssigned
	}

	utils.LogAuditWithConsole(employeeID, "assign", "complaint", fmt.Sprint(complaint.ID),
		fmt.Sprintf("assigned to sub-employee %d", target.ID), s.Repos.Audit)
	s.hub.Publish(events.Event{
		Type:        events.EventComplaintAssigned,
		ComplaintID: complaint.ID,
		CategoryID:  complaint.CategoryID,
		Status:      models.ComplaintStatusInProgress,
	})

	return s.Repos.Complaint.GetComplaintByID(complaint.ID)
}

// Resolve marks a complaint Resolved. Allowed for the assigned
// sub-employee or any approved staff member of the complaint's
// category. Resolved is terminal; a second resolve is a conflict.
func (s *ComplaintService) Resolve(actorID, complaintID uint) (models.Complaint, error) {
	actor, err := s.requireApprovedStaff(actorID)
	if err != nil {
		return models.Complaint{}, err
	}

	complaint, err := s.Repos.Complaint.GetComplaintByID(complaintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Complaint{}, fmt.Errorf("%w: complaint %d", ErrNotFound, complaintID)
		}
		return models.Complaint{}, err
	}
	if complaint.Status == models.ComplaintStatusResolved {
		return models.Complaint{}, ErrAlreadyResolved
	}
	if complaint.CategoryID != *actor.SelectedCategoryID {
		return models.Complaint{}, ErrCategoryMismatch
	}
	assigned := complaint.AssignedEmployeeID != nil && *complaint.AssignedEmployeeID == actor.ID
	if actor.Role == models.UserRoleSubEmployee && !assigned {
		return models.Complaint{}, fmt.Errorf("%w: complaint is assigned to someone else", ErrForbidden)
	}

	ok, err := s.Repos.Complaint.ResolveIfUnresolved(complaint.ID)
	if err != nil {
		return models.Complaint{}, err
	}
	if !ok {
		return models.Complaint{}, ErrAlreadyResolved
	}

	utils.LogAuditWithConsole(actorID, "resolve", "complaint", fmt.Sprint(complaint.ID), "", s.Repos.Audit)
	s.hub.Publish(events.Event{
		Type:        events.EventComplaintResolved,
		ComplaintID: complaint.ID,
		CategoryID:  complaint.CategoryID,
		Status:      models.ComplaintStatusResolved,
	})

	return s.Repos.Complaint.GetComplaintByID(complaint.ID)
}

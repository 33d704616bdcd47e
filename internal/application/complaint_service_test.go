package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/improvemycity/portal-go/dto"
	"github.com/improvemycity/portal-go/internal/events"
	"github.com/improvemycity/portal-go/internal/repository"
	"github.com/improvemycity/portal-go/internal/repository/mock"
	"github.com/improvemycity/portal-go/models"
	"github.com/improvemycity/portal-go/pkg/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
type complaintMocks struct {
	user      *mock.MockUserRepo
	category  *mock.MockCategoryRepo
	sub       *mock.MockSubCategoryRepo
	complaint *mock.MockComplaintRepo
}

func setupComplaintServiceMocks(t *testing.T) (*ComplaintService, *events.Hub, complaintMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := complaintMocks{
		user:      mock.NewMockUserRepo(ctrl),
		category:  mock.NewMockCategoryRepo(ctrl),
		sub:       mock.NewMockSubCategoryRepo(ctrl),
		complaint: mock.NewMockComplaintRepo(ctrl),
	}
	repos := &repository.Repos{
		User:        m.user,
		Category:    m.category,
		SubCategory: m.sub,
		Complaint:   m.complaint,
		Audit:       mock.NewMockAuditRepo(ctrl),
	}

	oldAudit := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(uint, string, string, string, string, repository.AuditRepo) {}
	t.Cleanup(func() { utils.LogAuditWithConsole = oldAudit })

	hub := events.NewHub()
	svc := NewComplaintService(repos, hub)
	return svc, hub, m
}

func ptrUint(v uint) *uint        { return &v }
func ptrFloat(v float64) *float64 { return &v }

func approvedStaff(id, categoryID uint, role models.UserRole) models.User {
	return models.User{
		ID:                 id,
		Role:               role,
		SelectedCategoryID: ptrUint(categoryID),
		ApprovalStatus:     models.ApprovalApproved,
	}
}

func validCreateInput() dto.CreateComplaintDTO {
	return dto.CreateComplaintDTO{
		CategoryID:    1,
		SubCategoryID: 2,
		Problem:       "Streetlight out on Elm St",
		Images:        []string{"http://cdn/img1.jpg"},
		Latitude:      ptrFloat(40.7),
		Longitude:     ptrFloat(-74.0),
	}
}

// --------------------- Create ---------------------
func TestCreateComplaint_Success(t *testing.T) {
	svc, hub, m := setupComplaintServiceMocks(t)

	m.category.EXPECT().GetCategoryByID(uint(1)).Return(models.Category{ID: 1}, nil)
	m.sub.EXPECT().GetSubCategoryByID(uint(2)).Return(models.SubCategory{ID: 2, CategoryID: 1, Description: "Lamp outage"}, nil)
	m.complaint.EXPECT().CreateComplaint(gomock.Any()).DoAndReturn(func(c *models.Complaint) error {
		c.ID = 10
		return nil
	})

	ch, cancel := hub.Subscribe(1)
	defer cancel()

	c, err := svc.Create(7, validCreateInput())
	assert.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusPending, c.Status)
	assert.Nil(t, c.AssignedEmployeeID)
	// description falls back to the subcategory's
	assert.Equal(t, "Lamp outage", c.Description)

	select {
	case ev := <-ch:
		assert.Equal(t, events.EventComplaintCreated, ev.Type)
		assert.Equal(t, uint(10), ev.ComplaintID)
	default:
		t.Fatal("expected a created event on the hub")
	}
}

func TestCreateComplaint_MissingImages(t *testing.T) {
	svc, _, _ := setupComplaintServiceMocks(t)

	input := validCreateInput()
	input.Images = nil

	_, err := svc.Create(7, input)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateComplaint_LocationOutOfRange(t *testing.T) {
	svc, _, _ := setupComplaintServiceMocks(t)

	input := validCreateInput()
	input.Latitude = ptrFloat(123.4)

	_, err := svc.Create(7, input)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateComplaint_SubCategoryWrongParent(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	m.category.EXPECT().GetCategoryByID(uint(1)).Return(models.Category{ID: 1}, nil)
	m.sub.EXPECT().GetSubCategoryByID(uint(2)).Return(models.SubCategory{ID: 2, CategoryID: 99}, nil)

	_, err := svc.Create(7, validCreateInput())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateComplaint_CategoryNotFound(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	m.category.EXPECT().GetCategoryByID(uint(1)).Return(models.Category{}, gorm.ErrRecordNotFound)

	_, err := svc.Create(7, validCreateInput())
	assert.ErrorIs(t, err, ErrNotFound)
}

// --------------------- ListForStaff ---------------------
func TestListForStaff_Success(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(3)).Return(approvedStaff(3, 1, models.UserRoleEmployee), nil)
	m.complaint.EXPECT().ListComplaintsByCategory(uint(1)).Return([]models.Complaint{{ID: 10}}, nil)

	list, err := svc.ListForStaff(3)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListForStaff_NotApproved(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	staff := approvedStaff(3, 1, models.UserRoleEmployee)
	staff.ApprovalStatus = models.ApprovalPending
	m.user.EXPECT().GetUserByID(uint(3)).Return(staff, nil)

	_, err := svc.ListForStaff(3)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListForStaff_CitizenForbidden(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(3)).Return(models.User{ID: 3, Role: models.UserRoleCitizen}, nil)

	_, err := svc.ListForStaff(3)
	assert.ErrorIs(t, err, ErrForbidden)
}

// DisapprovedStaffLosesAccess: approval is re-read per action, so a
// staffer disapproved after login is rejected on the next call.
func TestListForStaff_DisapprovedStaffLosesAccess(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	staff := approvedStaff(3, 1, models.UserRoleEmployee)
	first := m.user.EXPECT().GetUserByID(uint(3)).Return(staff, nil)
	m.complaint.EXPECT().ListComplaintsByCategory(uint(1)).Return(nil, nil)

	demoted := staff
	demoted.ApprovalStatus = models.ApprovalPending
	m.user.EXPECT().GetUserByID(uint(3)).Return(demoted, nil).After(first)

	_, err := svc.ListForStaff(3)
	assert.NoError(t, err)

	_, err = svc.ListForStaff(3)
	assert.ErrorIs(t, err, ErrNotApproved)
}

// --------------------- Assign ---------------------
func assignInput() dto.AssignComplaintDTO {
	return dto.AssignComplaintDTO{ComplaintID: 10, SubEmployeeID: 5}
}

func TestAssign_Success(t *testing.T) {
	svc, hub, m := setupComplaintServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(3)).Return(approvedStaff(3, 1, models.UserRoleEmployee), nil)
	pending := models.Complaint{ID: 10, CategoryID: 1, Status: models.ComplaintStatusPending}
	m.complaint.EXPECT().GetComplaintByID(uint(10)).Return(pending, nil)
	m.user.EXPECT().GetUserByID(uint(5)).Return(approvedStaff(5, 1, models.UserRoleSubEmployee), nil)
	m.complaint.EXPECT().AssignIfUnassigned(uint(10), uint(5)).Return(true, nil)

	claimed := pending
	claimed.Status = models.ComplaintStatusInProgress
	claimed.AssignedEmployeeID = ptrUint(5)
	m.complaint.EXPECT().GetComplaintByID(uint(10)).Return(claimed, nil)

	ch, cancel := hub.Subscribe(1)
	defer cancel()

	c, err := svc.Assign(3, assignInput())
	assert.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusInProgress, c.Status)
	assert.Equal(t, uint(5), *c.AssignedEmployeeID)

	select {
	case ev := <-ch:
		assert.Equal(t, events.EventComplaintAssigned, ev.Type)
	default:
		t.Fatal("expected an assigned event on the hub")
	}
}

func TestAssign_RaceLoserGetsConflict(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(3)).Return(approvedStaff(3, 1, models.UserRoleEmployee), nil)
	m.complaint.EXPECT().GetComplaintByID(uint(10)).Return(models.Complaint{ID: 10, CategoryID: 1, Status: models.ComplaintStatusPending}, nil)
	m.user.EXPECT().GetUserByID(uint(5)).Return(approvedStaff(5, 1, models.UserRoleSubEmployee), nil)
	// Another employee claimed the row between the read and the update.
	m.complaint.EXPECT().AssignIfUnassigned(uint(10), uint(5)).Return(false, nil)

	_, err := svc.Assign(3, assignInput())
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
}

func TestAssign_AlreadyAssigned(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(3)).Return(approvedStaff(3, 1, models.UserRoleEmployee), nil)
	taken := models.Complaint{ID: 10, CategoryID: 1, Status: models.ComplaintStatusInProgress, AssignedEmployeeID: ptrUint(9)}
	m.complaint.EXPECT().GetComplaintByID(uint(10)).Return(taken, nil)

	_, err := svc.Assign(3, assignInput())
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
}

func TestAssign_CrossCategoryForbidden(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(3)).Return(approvedStaff(3, 2, models.UserRoleEmployee), nil)
	m.complaint.EXPECT().GetComplaintByID(uint(10)).Return(models.Complaint{ID: 10, CategoryID: 1}, nil)

	_, err := svc.Assign(3, assignInput())
	assert.ErrorIs(t, err, ErrCategoryMismatch)
}

func TestAssign_SubEmployeeCannotAssign(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(5)).Return(approvedStaff(5, 1, models.UserRoleSubEmployee), nil)

	_, err := svc.Assign(5, assignInput())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAssign_TargetNotApproved(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(3)).Return(approvedStaff(3, 1, models.UserRoleEmployee), nil)
	m.complaint.EXPECT().GetComplaintByID(uint(10)).Return(models.Complaint{ID: 10, CategoryID: 1}, nil)
	target := approvedStaff(5, 1, models.UserRoleSubEmployee)
	target.ApprovalStatus = models.ApprovalPending
	m.user.EXPECT().GetUserByID(uint(5)).Return(target, nil)

	_, err := svc.Assign(3, assignInput())
	assert.ErrorIs(t, err, ErrNotApproved)
}

// --------------------- Resolve ---------------------
func TestResolve_ByAssignedSubEmployee(t *testing.T) {
	svc, hub, m := setupComplaintServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(5)).Return(approvedStaff(5, 1, models.UserRoleSubEmployee), nil)
	inProgress := models.Complaint{ID: 10, CategoryID: 1, Status: models.ComplaintStatusInProgress, AssignedEmployeeID: ptrUint(5)}
	m.complaint.EXPECT().GetComplaintByID(uint(10)).Return(inProgress, nil)
	m.complaint.EXPECT().ResolveIfUnresolved(uint(10)).Return(true, nil)

	resolved := inProgress
	resolved.Status = models.ComplaintStatusResolved
	m.complaint.EXPECT().GetComplaintByID(uint(10)).Return(resolved, nil)

	ch, cancel := hub.Subscribe(1)
	defer cancel()

	c, err := svc.Resolve(5, 10)
	assert.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusResolved, c.Status)

	select {
	case ev := <-ch:
		assert.Equal(t, events.EventComplaintResolved, ev.Type)
	default:
		t.Fatal("expected a resolved event on the hub")
	}
}

func TestResolve_SubEmployeeNotAssignee(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(5)).Return(approvedStaff(5, 1, models.UserRoleSubEmployee), nil)
	m.complaint.EXPECT().GetComplaintByID(uint(10)).Return(models.Complaint{
		ID: 10, CategoryID: 1, Status: models.ComplaintStatusInProgress, AssignedEmployeeID: ptrUint(9),
	}, nil)

	_, err := svc.Resolve(5, 10)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestResolve_SecondResolveConflicts(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(3)).Return(approvedStaff(3, 1, models.UserRoleEmployee), nil)
	m.complaint.EXPECT().GetComplaintByID(uint(10)).Return(models.Complaint{
		ID: 10, CategoryID: 1, Status: models.ComplaintStatusResolved,
	}, nil)

	_, err := svc.Resolve(3, 10)
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestResolve_RaceLoserGetsConflict(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(3)).Return(approvedStaff(3, 1, models.UserRoleEmployee), nil)
	m.complaint.EXPECT().GetComplaintByID(uint(10)).Return(models.Complaint{
		ID: 10, CategoryID: 1, Status: models.ComplaintStatusInProgress, AssignedEmployeeID: ptrUint(5),
	}, nil)
	m.complaint.EXPECT().ResolveIfUnresolved(uint(10)).Return(false, nil)

	_, err := svc.Resolve(3, 10)
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

// --------------------- Summary ---------------------
func TestSummary_Success(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(3)).Return(approvedStaff(3, 1, models.UserRoleEmployee), nil)
	m.complaint.EXPECT().CountByCategory(uint(1)).Return(models.ComplaintSummary{
		Total: 4, Pending: 1, InProgress: 2, Resolved: 1,
	}, nil)

	sum, err := svc.Summary(3)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), sum.Total)
	assert.Equal(t, int64(2), sum.InProgress)
}

func TestSummary_RepoError(t *testing.T) {
	svc, _, m := setupComplaintServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(3)).Return(approvedStaff(3, 1, models.UserRoleEmployee), nil)
	m.complaint.EXPECT().CountByCategory(uint(1)).Return(models.ComplaintSummary{}, errors.New("db down"))

	_, err := svc.Summary(3)
	assert.Error(t, err)
}

package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/improvemycity/portal-go/internal/repository"
	"github.com/improvemycity/portal-go/internal/repository/mock"
	"github.com/improvemycity/portal-go/models"
	"github.com/improvemycity/portal-go/pkg/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupStaffServiceMocks(t *testing.T) (*StaffService, *mock.MockUserRepo, *mock.MockCategoryRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	mockCategory := mock.NewMockCategoryRepo(ctrl)
	repos := &repository.Repos{
		User:     mockUser,
		Category: mockCategory,
		Audit:    mock.NewMockAuditRepo(ctrl),
	}

	oldAudit := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(uint, string, string, string, string, repository.AuditRepo) {}
	t.Cleanup(func() { utils.LogAuditWithConsole = oldAudit })

	return NewStaffService(repos), mockUser, mockCategory
}

func staffWith(id uint, role models.UserRole, status models.ApprovalStatus, categoryID *uint) models.User {
	return models.User{ID: id, Role: role, ApprovalStatus: status, SelectedCategoryID: categoryID}
}

// --------------------- ChooseCategory ---------------------
func TestChooseCategory_UnselectedToPending(t *testing.T) {
	svc, mockUser, mockCategory := setupStaffServiceMocks(t)

	usr := staffWith(3, models.UserRoleEmployee, models.ApprovalUnselected, nil)
	mockUser.EXPECT().GetUserByID(uint(3)).Return(usr, nil)
	mockCategory.EXPECT().GetCategoryByID(uint(1)).Return(models.Category{ID: 1}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, models.ApprovalPending, u.ApprovalStatus)
		assert.Equal(t, uint(1), *u.SelectedCategoryID)
		return nil
	})
	saved := staffWith(3, models.UserRoleEmployee, models.ApprovalPending, ptrUint(1))
	mockUser.EXPECT().GetUserByID(uint(3)).Return(saved, nil)

	result, err := svc.ChooseCategory(3, 1)
	assert.NoError(t, err)
	assert.Equal(t, models.ApprovalPending, result.ApprovalStatus)
}

func TestChooseCategory_RejectedMayReenter(t *testing.T) {
	svc, mockUser, mockCategory := setupStaffServiceMocks(t)

	usr := staffWith(3, models.UserRoleSubEmployee, models.ApprovalRejected, ptrUint(2))
	mockUser.EXPECT().GetUserByID(uint(3)).Return(usr, nil)
	mockCategory.EXPECT().GetCategoryByID(uint(1)).Return(models.Category{ID: 1}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)
	mockUser.EXPECT().GetUserByID(uint(3)).Return(staffWith(3, models.UserRoleSubEmployee, models.ApprovalPending, ptrUint(1)), nil)

	result, err := svc.ChooseCategory(3, 1)
	assert.NoError(t, err)
	assert.Equal(t, models.ApprovalPending, result.ApprovalStatus)
}

func TestChooseCategory_LockedWhileApproved(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	usr := staffWith(3, models.UserRoleEmployee, models.ApprovalApproved, ptrUint(1))
	mockUser.EXPECT().GetUserByID(uint(3)).Return(usr, nil)

	_, err := svc.ChooseCategory(3, 2)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestChooseCategory_CitizenRejected(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(3)).Return(models.User{ID: 3, Role: models.UserRoleCitizen}, nil)

	_, err := svc.ChooseCategory(3, 1)
	assert.ErrorIs(t, err, ErrValidation)
}

// --------------------- Admin transitions ---------------------
func TestApproveEmployee_PendingToApproved(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	usr := staffWith(3, models.UserRoleEmployee, models.ApprovalPending, ptrUint(1))
	mockUser.EXPECT().GetUserByID(uint(3)).Return(usr, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, models.ApprovalApproved, u.ApprovalStatus)
		return nil
	})

	result, err := svc.ApproveEmployee(1, 3)
	assert.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, result.ApprovalStatus)
}

func TestApproveEmployee_NotPendingConflicts(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	usr := staffWith(3, models.UserRoleEmployee, models.ApprovalUnselected, nil)
	mockUser.EXPECT().GetUserByID(uint(3)).Return(usr, nil)

	_, err := svc.ApproveEmployee(1, 3)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRejectEmployee_PendingToRejected(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	usr := staffWith(3, models.UserRoleEmployee, models.ApprovalPending, ptrUint(1))
	mockUser.EXPECT().GetUserByID(uint(3)).Return(usr, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		// record kept, category kept
		assert.Equal(t, models.ApprovalRejected, u.ApprovalStatus)
		assert.NotNil(t, u.SelectedCategoryID)
		return nil
	})

	result, err := svc.RejectEmployee(1, 3)
	assert.NoError(t, err)
	assert.Equal(t, models.ApprovalRejected, result.ApprovalStatus)
}

func TestRejectEmployee_ApprovedCannotBeRejected(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	usr := staffWith(3, models.UserRoleEmployee, models.ApprovalApproved, ptrUint(1))
	mockUser.EXPECT().GetUserByID(uint(3)).Return(usr, nil)

	_, err := svc.RejectEmployee(1, 3)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDisapproveEmployee_ApprovedToPendingKeepsCategory(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	usr := staffWith(3, models.UserRoleEmployee, models.ApprovalApproved, ptrUint(1))
	mockUser.EXPECT().GetUserByID(uint(3)).Return(usr, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, models.ApprovalPending, u.ApprovalStatus)
		assert.Equal(t, uint(1), *u.SelectedCategoryID)
		return nil
	})

	result, err := svc.DisapproveEmployee(1, 3)
	assert.NoError(t, err)
	assert.Equal(t, models.ApprovalPending, result.ApprovalStatus)
}

func TestDisapproveEmployee_PendingConflicts(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	usr := staffWith(3, models.UserRoleEmployee, models.ApprovalPending, ptrUint(1))
	mockUser.EXPECT().GetUserByID(uint(3)).Return(usr, nil)

	_, err := svc.DisapproveEmployee(1, 3)
	assert.ErrorIs(t, err, ErrConflict)
}

// --------------------- Sub-employee transitions ---------------------
func TestApproveSubEmployee_SameCategory(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	employee := staffWith(3, models.UserRoleEmployee, models.ApprovalApproved, ptrUint(1))
	sub := staffWith(5, models.UserRoleSubEmployee, models.ApprovalPending, ptrUint(1))
	mockUser.EXPECT().GetUserByID(uint(3)).Return(employee, nil)
	mockUser.EXPECT().GetUserByID(uint(5)).Return(sub, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	result, err := svc.ApproveSubEmployee(3, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, result.ApprovalStatus)
}

func TestApproveSubEmployee_CrossCategory(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	employee := staffWith(3, models.UserRoleEmployee, models.ApprovalApproved, ptrUint(1))
	sub := staffWith(5, models.UserRoleSubEmployee, models.ApprovalPending, ptrUint(2))
	mockUser.EXPECT().GetUserByID(uint(3)).Return(employee, nil)
	mockUser.EXPECT().GetUserByID(uint(5)).Return(sub, nil)

	_, err := svc.ApproveSubEmployee(3, 5)
	assert.ErrorIs(t, err, ErrCategoryMismatch)
}

func TestApproveSubEmployee_UnapprovedEmployee(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	employee := staffWith(3, models.UserRoleEmployee, models.ApprovalPending, ptrUint(1))
	mockUser.EXPECT().GetUserByID(uint(3)).Return(employee, nil)

	_, err := svc.ApproveSubEmployee(3, 5)
	assert.ErrorIs(t, err, ErrNotApproved)
}

func TestApproveSubEmployee_TargetIsEmployee(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	employee := staffWith(3, models.UserRoleEmployee, models.ApprovalApproved, ptrUint(1))
	other := staffWith(5, models.UserRoleEmployee, models.ApprovalPending, ptrUint(1))
	mockUser.EXPECT().GetUserByID(uint(3)).Return(employee, nil)
	mockUser.EXPECT().GetUserByID(uint(5)).Return(other, nil)

	_, err := svc.ApproveSubEmployee(3, 5)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListSubEmployees_Success(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	employee := staffWith(3, models.UserRoleEmployee, models.ApprovalApproved, ptrUint(1))
	mockUser.EXPECT().GetUserByID(uint(3)).Return(employee, nil)
	mockUser.EXPECT().ListStaffByCategory(uint(1), models.UserRoleSubEmployee).Return([]models.User{{ID: 5}}, nil)

	subs, err := svc.ListSubEmployees(3)
	assert.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestListSubEmployees_SubEmployeeForbidden(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	sub := staffWith(5, models.UserRoleSubEmployee, models.ApprovalApproved, ptrUint(1))
	mockUser.EXPECT().GetUserByID(uint(5)).Return(sub, nil)

	_, err := svc.ListSubEmployees(5)
	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- Misc ---------------------
func TestGetStaff_NotFound(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(99)).Return(models.User{}, gorm.ErrRecordNotFound)

	_, err := svc.ApproveEmployee(1, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListStaff_Success(t *testing.T) {
	svc, mockUser, _ := setupStaffServiceMocks(t)

	mockUser.EXPECT().ListUsersByRole(models.UserRoleEmployee, models.UserRoleSubEmployee).
		Return([]models.User{{ID: 3}, {ID: 5}}, nil)

	staff, err := svc.ListStaff()
	assert.NoError(t, err)
	assert.Len(t, staff, 2)
}

package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/improvemycity/portal-go/dto"
	"github.com/improvemycity/portal-go/internal/api/middleware"
	"github.com/improvemycity/portal-go/internal/otp"
	"github.com/improvemycity/portal-go/internal/repository"
	"github.com/improvemycity/portal-go/internal/repository/mock"
	"github.com/improvemycity/portal-go/models"
	"github.com/improvemycity/portal-go/pkg/utils"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// fakeOTPStore stands in for the redis-backed store.
type fakeOTPStore struct {
	code      string
	issueErr  error
	verifyErr error
	issued    int
}

func (f *fakeOTPStore) Issue(ctx context.Context, userID uint) (string, error) {
	f.issued++
	return f.code, f.issueErr
}

func (f *fakeOTPStore) Verify(ctx context.Context, userID uint, code string) error {
	if f.verifyErr != nil {
		return f.verifyErr
	}
	if code != f.code {
		return otp.ErrCodeMismatch
	}
	return nil
}

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo, *fakeOTPStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User:  mockUser,
		Audit: mock.NewMockAuditRepo(ctrl),
	}
	store := &fakeOTPStore{code: "123456"}

	oldAudit := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(uint, string, string, string, string, repository.AuditRepo) {}
	t.Cleanup(func() { utils.LogAuditWithConsole = oldAudit })

	return NewUserService(repos, store), mockUser, store
}

func ptrString(s string) *string { return &s }

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("alice@test.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, models.UserRoleCitizen, u.Role)
		assert.NotEqual(t, "123456", u.Password)
		u.ID = 2
		return nil
	})

	usr, err := svc.Register(dto.RegisterDTO{Name: "Alice", Email: "alice@test.com", Password: "123456"})
	assert.NoError(t, err)
	assert.Equal(t, uint(2), usr.ID)
}

func TestRegister_StaffStartsUnapproved(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("bob@test.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, models.UserRoleEmployee, u.Role)
		assert.Equal(t, models.ApprovalUnselected, u.ApprovalStatus)
		assert.Nil(t, u.SelectedCategoryID)
		return nil
	})

	_, err := svc.Register(dto.RegisterDTO{Name: "Bob", Email: "bob@test.com", Password: "123456", Role: models.UserRoleEmployee})
	assert.NoError(t, err)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("taken@test.com").Return(models.User{ID: 1}, nil)

	_, err := svc.Register(dto.RegisterDTO{Name: "X", Email: "taken@test.com", Password: "123456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("evil@test.com").Return(models.User{}, gorm.ErrRecordNotFound)

	_, err := svc.Register(dto.RegisterDTO{Name: "X", Email: "evil@test.com", Password: "123456", Role: models.UserRoleAdmin})
	assert.ErrorIs(t, err, ErrValidation)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := models.User{ID: 2, Name: "Alice", Email: "alice@test.com", Password: string(hashed), Role: models.UserRoleCitizen}
	mockUser.EXPECT().GetUserByEmail("alice@test.com").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, name string, role models.UserRole, expireDuration time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.Login("alice@test.com", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "token123", token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByEmail("alice@test.com").Return(models.User{Password: string(hashed)}, nil)

	_, _, err := svc.Login("alice@test.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("ghost@test.com").Return(models.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("ghost@test.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// --------------------- Profile ---------------------
func TestUpdateProfile_PhoneChangeResetsVerification(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	existing := models.User{ID: 2, Phone: "111", PhoneVerified: true}
	mockUser.EXPECT().GetUserByID(uint(2)).Return(existing, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.False(t, u.PhoneVerified)
		return nil
	})

	usr, err := svc.UpdateProfile(2, dto.UpdateProfileDTO{Phone: ptrString("222")})
	assert.NoError(t, err)
	assert.Equal(t, "222", usr.Phone)
	assert.False(t, usr.PhoneVerified)
}

func TestUpdateProfile_SamePhoneKeepsVerification(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	existing := models.User{ID: 2, Phone: "111", PhoneVerified: true}
	mockUser.EXPECT().GetUserByID(uint(2)).Return(existing, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	usr, err := svc.UpdateProfile(2, dto.UpdateProfileDTO{Name: ptrString("New Name"), Phone: ptrString("111")})
	assert.NoError(t, err)
	assert.True(t, usr.PhoneVerified)
	assert.Equal(t, "New Name", usr.Name)
}

// --------------------- OTP ---------------------
func TestSendOTP_Success(t *testing.T) {
	svc, mockUser, store := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(2)).Return(models.User{ID: 2, Phone: "111"}, nil)

	err := svc.SendOTP(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, 1, store.issued)
}

func TestSendOTP_NoPhone(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(2)).Return(models.User{ID: 2}, nil)

	err := svc.SendOTP(context.Background(), 2)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSendOTP_StoreDown(t *testing.T) {
	svc, mockUser, store := setupUserServiceMocks(t)

	store.issueErr = errors.New("redis unreachable")
	mockUser.EXPECT().GetUserByID(uint(2)).Return(models.User{ID: 2, Phone: "111"}, nil)

	err := svc.SendOTP(context.Background(), 2)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestVerifyOTP_SetsPhoneVerified(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(2)).Return(models.User{ID: 2, Phone: "111"}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.True(t, u.PhoneVerified)
		return nil
	})

	err := svc.VerifyOTP(context.Background(), 2, "123456")
	assert.NoError(t, err)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	svc, _, _ := setupUserServiceMocks(t)

	err := svc.VerifyOTP(context.Background(), 2, "000000")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVerifyOTP_Expired(t *testing.T) {
	svc, _, store := setupUserServiceMocks(t)

	store.verifyErr = otp.ErrCodeExpired
	err := svc.VerifyOTP(context.Background(), 2, "123456")
	assert.ErrorIs(t, err, ErrValidation)
}

// --------------------- RemoveUser ---------------------
func TestRemoveUser_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(2)).Return(models.User{ID: 2, Role: models.UserRoleCitizen}, nil)
	mockUser.EXPECT().DeleteUser(uint(2)).Return(nil)

	err := svc.RemoveUser(1, 2)
	assert.NoError(t, err)
}

func TestRemoveUser_AdminProtected(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(1)).Return(models.User{ID: 1, Role: models.UserRoleAdmin}, nil)

	err := svc.RemoveUser(1, 1)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRemoveUser_NotFound(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(99)).Return(models.User{}, gorm.ErrRecordNotFound)

	err := svc.RemoveUser(1, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

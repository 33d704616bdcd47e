package models

import "time"

type UserRole string

const (
	UserRoleCitizen     UserRole = "user"
	UserRoleAdmin       UserRole = "admin"
	UserRoleEmployee    UserRole = "employee"
	UserRoleSubEmployee UserRole = "subemployee"
)

// ApprovalStatus tracks a staff member's category-approval state.
// Citizens and admins stay at "unselected"; only employees and
// sub-employees move through the cycle.
type ApprovalStatus string

const (
	ApprovalUnselected ApprovalStatus = "unselected"
	ApprovalPending    ApprovalStatus = "pending"
	ApprovalApproved   ApprovalStatus = "approved"
	ApprovalRejected   ApprovalStatus = "rejected"
)

type User struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Name               string         `gorm:"size:100;not null" json:"name"`
	Email              string         `gorm:"size:100;not null;unique" json:"email"`
	Phone              string         `gorm:"size:20" json:"phone"`
	Password           string         `gorm:"size:255;not null" json:"-"`
	Role               UserRole       `gorm:"size:20;default:'user';not null" json:"role"`
	SelectedCategoryID *uint          `json:"selectedCategoryId"`
	SelectedCategory   *Category      `gorm:"foreignKey:SelectedCategoryID" json:"selectedCategory,omitempty"`
	ApprovalStatus     ApprovalStatus `gorm:"size:20;default:'unselected';not null" json:"approvalStatus"`
	PhoneVerified      bool           `gorm:"default:false" json:"phoneVerified"`
	ProfilePicURL      string         `gorm:"size:500" json:"profilePicUrl"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsStaff reports whether the user holds one of the category-scoped roles.
func (u *User) IsStaff() bool {
	return u.Role == UserRoleEmployee || u.Role == UserRoleSubEmployee
}

// IsApproved reports whether the user may act on complaints in their
// selected category. Re-checked on every scoped action, never cached
// in the token.
func (u *User) IsApproved() bool {
	return u.ApprovalStatus == ApprovalApproved && u.SelectedCategoryID != nil
}

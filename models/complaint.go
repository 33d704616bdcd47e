package models

import (
	"time"

	"gorm.io/datatypes"
)

type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "Pending"
	ComplaintStatusInProgress ComplaintStatus = "In Progress"
	ComplaintStatusResolved   ComplaintStatus = "Resolved"
)

// Complaint is a citizen-reported civic issue. The status machine is
// Pending -> In Progress (on assignment) -> Resolved (terminal), and
// AssignedEmployeeID is null exactly while the status is Pending.
//
// User, Category and SubCategory are nullable on read: the backend does
// not cascade deletes, so a complaint may outlive the entities it
// references. Readers get a null object instead of an error.
type Complaint struct {
	ID                 uint                        `gorm:"primaryKey" json:"id"`
	UserID             uint                        `gorm:"not null;index" json:"userId"`
	User               *User                       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CategoryID         uint                        `gorm:"not null;index" json:"categoryId"`
	Category           *Category                   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubCategoryID      uint                        `gorm:"not null" json:"subCategoryId"`
	SubCategory        *SubCategory                `gorm:"foreignKey:SubCategoryID" json:"subCategory,omitempty"`
	Problem            string                      `gorm:"size:255;not null" json:"problem"`
	Description        string                      `gorm:"type:text" json:"description"`
	Images             datatypes.JSONSlice[string] `gorm:"not null" json:"images"`
	Latitude           float64                     `gorm:"not null" json:"latitude"`
	Longitude          float64                     `gorm:"not null" json:"longitude"`
	Status             ComplaintStatus             `gorm:"size:20;default:'Pending';not null" json:"status"`
	AssignedEmployeeID *uint                       `json:"assignedEmployeeId"`
	AssignedEmployee   *User                       `gorm:"foreignKey:AssignedEmployeeID" json:"assignedEmployee,omitempty"`
	CreatedAt          time.Time                   `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt          time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ComplaintSummary holds per-status counts for one category.
type ComplaintSummary struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Resolved   int64 `json:"resolved"`
}

package dto

type CreateComplaintDTO struct {
	CategoryID    uint     `json:"categoryId" binding:"required"`
	SubCategoryID uint     `json:"subCategoryId" binding:"required"`
	Problem       string   `json:"problem" binding:"required"`
	Description   string   `json:"description"`
	Images        []string `json:"images" binding:"required"`
	Latitude      *float64 `json:"latitude" binding:"required"`
	Longitude     *float64 `json:"longitude" binding:"required"`
}

type AssignComplaintDTO struct {
	ComplaintID   uint `json:"complaintId" binding:"required"`
	SubEmployeeID uint `json:"subEmployeeId" binding:"required"`
}

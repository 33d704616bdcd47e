package dto

type CreateCategoryDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CreateSubCategoryDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateSubCategoryDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type ChooseCategoryDTO struct {
	CategoryID uint `json:"categoryId" binding:"required"`
}

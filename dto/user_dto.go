package dto

import "github.com/improvemycity/portal-go/models"

type RegisterDTO struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Phone    string          `json:"phone"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileDTO struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type VerifyOTPDTO struct {
	Code string `json:"code" binding:"required,len=6"`
}

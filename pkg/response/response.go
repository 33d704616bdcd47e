package response

import "github.com/improvemycity/portal-go/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token string          `json:"token"`
	UID   uint            `json:"user_id"`
	Name  string          `json:"name"`
	Role  models.UserRole `json:"role"`
}

type ComplaintResponse struct {
	Message   string           `json:"message"`
	Complaint models.Complaint `json:"complaint"`
}

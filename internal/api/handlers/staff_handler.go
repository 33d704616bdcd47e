package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/improvemycity/portal-go/dto"
	"github.com/improvemycity/portal-go/internal/application"
	"github.com/improvemycity/portal-go/pkg/response"
	"github.com/improvemycity/portal-go/pkg/utils"
)

type StaffHandler struct {
	service *application.StaffService
}

func NewStaffHandler(service *application.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

func (h *StaffHandler) ChooseCategory(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.ChooseCategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	usr, err := h.service.ChooseCategory(userID, input.CategoryID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": usr})
}

// ListStaff godoc
// @Summary List staff with category and approval state
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.User
// @Router /api/admin/employees [get]
func (h *StaffHandler) ListStaff(c *gin.Context) {
	staff, err := h.service.ListStaff()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) adminTransition(c *gin.Context, fn func(adminID, staffID uint) (interface{}, error)) {
	adminID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	staffID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid staff id"})
		return
	}

	usr, err := fn(adminID, staffID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": usr})
}

func (h *StaffHandler) ApproveEmployee(c *gin.Context) {
	h.adminTransition(c, func(adminID, staffID uint) (interface{}, error) {
		return h.service.ApproveEmployee(adminID, staffID)
	})
}

func (h *StaffHandler) RejectEmployee(c *gin.Context) {
	h.adminTransition(c, func(adminID, staffID uint) (interface{}, error) {
		return h.service.RejectEmployee(adminID, staffID)
	})
}

func (h *StaffHandler) ToggleEmployee(c *gin.Context) {
	h.adminTransition(c, func(adminID, staffID uint) (interface{}, error) {
		return h.service.DisapproveEmployee(adminID, staffID)
	})
}

func (h *StaffHandler) ListSubEmployees(c *gin.Context) {
	employeeID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	subs, err := h.service.ListSubEmployees(employeeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *StaffHandler) ApproveSubEmployee(c *gin.Context) {
	h.adminTransition(c, func(employeeID, subID uint) (interface{}, error) {
		return h.service.ApproveSubEmployee(employeeID, subID)
	})
}

func (h *StaffHandler) DisapproveSubEmployee(c *gin.Context) {
	h.adminTransition(c, func(employeeID, subID uint) (interface{}, error) {
		return h.service.DisapproveSubEmployee(employeeID, subID)
	})
}

func (h *StaffHandler) RejectSubEmployee(c *gin.Context) {
	h.adminTransition(c, func(employeeID, subID uint) (interface{}, error) {
		return h.service.RejectSubEmployee(employeeID, subID)
	})
}

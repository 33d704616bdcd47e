package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/improvemycity/portal-go/dto"
	"github.com/improvemycity/portal-go/internal/application"
	"github.com/improvemycity/portal-go/pkg/response"
	"github.com/improvemycity/portal-go/pkg/utils"
)

type ComplaintHandler struct {
	service *application.ComplaintService
}

func NewComplaintHandler(service *application.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

// Create godoc
// @Summary File a complaint
// @Tags complaints
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateComplaintDTO true "Complaint"
// @Success 201 {object} models.Complaint
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/complaints [post]
func (h *ComplaintHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateComplaintDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	complaint, err := h.service.Create(userID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, complaint)
}

func (h *ComplaintHandler) ListMine(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	complaints, err := h.service.ListMine(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// ListForCategory godoc
// @Summary List the complaint pool of the caller's approved category
// @Tags complaints
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Complaint
// @Failure 403 {object} response.ErrorResponse
// @Router /api/complaints/employee-category-complaints [get]
func (h *ComplaintHandler) ListForCategory(c *gin.Context) {
	staffID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	complaints, err := h.service.ListForStaff(staffID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

func (h *ComplaintHandler) Summary(c *gin.Context) {
	staffID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.service.Summary(staffID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Assign godoc
// @Summary Assign a complaint to a sub-employee
// @Tags complaints
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AssignComplaintDTO true "Assignment"
// @Success 200 {object} response.ComplaintResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/complaints/assign [post]
func (h *ComplaintHandler) Assign(c *gin.Context) {
	employeeID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.AssignComplaintDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	complaint, err := h.service.Assign(employeeID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ComplaintResponse{
		Message:   "Complaint assigned",
		Complaint: complaint,
	})
}

// Resolve godoc
// @Summary Mark a complaint resolved
// @Tags complaints
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Complaint ID"
// @Success 200 {object} response.ComplaintResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/complaints/{id}/resolve [put]
func (h *ComplaintHandler) Resolve(c *gin.Context) {
	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid complaint id"})
		return
	}

	complaint, err := h.service.Resolve(actorID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ComplaintResponse{
		Message:   "Complaint resolved",
		Complaint: complaint,
	})
}

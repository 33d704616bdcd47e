package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/improvemycity/portal-go/dto"
	"github.com/improvemycity/portal-go/internal/application"
	"github.com/improvemycity/portal-go/pkg/response"
	"github.com/improvemycity/portal-go/pkg/utils"
)

type CategoryHandler struct {
	service *application.CategoryService
}

func NewCategoryHandler(service *application.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	cats, err := h.service.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, cats)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryDTO true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} response.ErrorResponse
// @Router /api/admin/category [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	adminID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateCategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	cat, err := h.service.CreateCategory(adminID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	adminID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid category id"})
		return
	}

	var input dto.UpdateCategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	cat, err := h.service.UpdateCategory(adminID, id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// DeleteCategory godoc
// @Summary Delete an unreferenced category
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Category ID"
// @Success 200 {object} response.MessageResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/admin/category/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	adminID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid category id"})
		return
	}

	if err := h.service.DeleteCategory(adminID, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Category deleted"})
}

func (h *CategoryHandler) ListSubCategories(c *gin.Context) {
	categoryID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid category id"})
		return
	}

	subs, err := h.service.ListSubCategories(categoryID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *CategoryHandler) ListOwnSubCategories(c *gin.Context) {
	employeeID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	subs, err := h.service.ListOwnSubCategories(employeeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *CategoryHandler) CreateSubCategory(c *gin.Context) {
	employeeID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateSubCategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.service.CreateSubCategory(employeeID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *CategoryHandler) UpdateSubCategory(c *gin.Context) {
	employeeID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid subcategory id"})
		return
	}

	var input dto.UpdateSubCategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.service.UpdateSubCategory(employeeID, id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *CategoryHandler) DeleteSubCategory(c *gin.Context) {
	employeeID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid subcategory id"})
		return
	}

	if err := h.service.DeleteSubCategory(employeeID, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Subcategory deleted"})
}

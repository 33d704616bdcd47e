package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/improvemycity/portal-go/internal/application"
	"github.com/improvemycity/portal-go/internal/repository"
	"github.com/improvemycity/portal-go/pkg/response"
	"github.com/improvemycity/portal-go/pkg/utils"
)

type AuditHandler struct {
	service *application.AuditService
}

func NewAuditHandler(service *application.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

func parseTimeQuery(c *gin.Context, param string) (*time.Time, error) {
	s := c.Query(param)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetAuditLogs godoc
// @Summary      Query audit logs
// @Description  Retrieve audit logs filtered by user, resource type, action and time range, with pagination.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        user_id       query     uint     false  "Filter by acting user"
// @Param        resource_type query     string   false  "Resource type to filter" example("complaint")
// @Param        action        query     string   false  "Action type to filter" example("assign")
// @Param        start_time    query     string   false  "Start time in RFC3339 format"
// @Param        end_time      query     string   false  "End time in RFC3339 format"
// @Param        limit         query     int      false  "Max records to return (default 100, max 1000)"
// @Param        offset        query     int      false  "Pagination offset"
// @Success      200 {array}   object                   "List of audit logs"
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Failure      500 {object}  response.ErrorResponse "Internal server error"
// @Router       /api/admin/audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams
	var err error

	if uid, uidErr := utils.ParseQueryUintParam(c, "user_id"); uidErr == nil {
		params.UserID = &uid
	} else if !errors.Is(uidErr, utils.ErrEmptyParameter) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user_id"})
		return
	}

	if rt := c.Query("resource_type"); rt != "" {
		params.ResourceType = &rt
	}
	if act := c.Query("action"); act != "" {
		params.Action = &act
	}

	if params.StartTime, err = parseTimeQuery(c, "start_time"); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid start_time"})
		return
	}
	if params.EndTime, err = parseTimeQuery(c, "end_time"); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid end_time"})
		return
	}

	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if params.Limit > 1000 {
		params.Limit = 1000
	}
	params.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.service.QueryAuditLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

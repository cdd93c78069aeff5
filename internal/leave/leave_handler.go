package leave

import (
	"net/http"

	"hrms/internal/shared/apperror"
	"hrms/internal/shared/pagination"
	"hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateType(c *gin.Context) {
	var req CreateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateType(c.Request.Context(), c.GetString("organization_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetActiveTypes(c *gin.Context) {
	resp, err := h.service.GetActiveTypes(c.Request.Context(), c.GetString("organization_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateType(c *gin.Context) {
	var req UpdateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateType(c.Request.Context(), c.GetString("organization_id"), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateRequest(c *gin.Context) {
	var req CreateLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateRequest(
		c.Request.Context(),
		c.GetString("organization_id"),
		c.GetString("employee_id"),
		req,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAllRequests(c *gin.Context) {
	params := pagination.FromQuery(c)

	resp, total, err := h.service.GetAllRequests(c.Request.Context(), c.GetString("organization_id"), params)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, params.Page, params.Limit)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetMyRequests(c *gin.Context) {
	params := pagination.FromQuery(c)

	resp, total, err := h.service.GetMyRequests(
		c.Request.Context(),
		c.GetString("organization_id"),
		c.GetString("employee_id"),
		params,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, params.Page, params.Limit)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) DecideRequest(c *gin.Context) {
	var req DecideLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.DecideRequest(
		c.Request.Context(),
		c.GetString("organization_id"),
		c.Param("id"),
		c.GetString("user_id"),
		req,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CancelRequest(c *gin.Context) {
	resp, err := h.service.CancelRequest(
		c.Request.Context(),
		c.GetString("organization_id"),
		c.Param("id"),
		c.GetString("employee_id"),
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

package attendance

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

func (h *Handler) ClockIn(c *gin.Context) {
	var req ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ClockIn(
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

func (h *Handler) ClockOut(c *gin.Context) {
	var req ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ClockOut(
		c.Request.Context(),
		c.GetString("organization_id"),
		c.GetString("employee_id"),
		req,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TodayStatus(c *gin.Context) {
	resp, err := h.service.TodayStatus(c.Request.Context(), c.GetString("organization_id"), c.GetString("employee_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	params := pagination.FromQuery(c)

	resp, total, err := h.service.GetAll(
		c.Request.Context(),
		c.GetString("organization_id"),
		c.Query("date"),
		params,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, params.Page, params.Limit)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetMine(c *gin.Context) {
	params := pagination.FromQuery(c)

	resp, total, err := h.service.GetMine(
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

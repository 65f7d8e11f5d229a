package timesheet

import (
	"net/http"
	"strconv"
	"time"

	"bancohoras/internal/shared/apperror"
	"bancohoras/internal/shared/response"

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

func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ClassifyAndPersist(c.Request.Context(), req.EmployeeID, req.Date, req.Punches)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Edit(c *gin.Context) {
	id := c.Param("id")

	var req EditRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.EditRecord(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetRange(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		writeServiceError(c, apperror.InvalidField("start_date"))
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		writeServiceError(c, apperror.InvalidField("end_date"))
		return
	}

	q := RangeQuery{
		EmployeeID: c.Query("employee_id"),
		LeaderID:   c.Query("leader_id"),
		Start:      start,
		End:        end,
	}

	resp, err := h.service.GetRange(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "31"))
	if pageSize < 1 {
		pageSize = 31
	}

	total := int64(len(resp))
	startIdx := (page - 1) * pageSize
	endIdx := startIdx + pageSize
	if startIdx > len(resp) {
		startIdx = len(resp)
	}
	if endIdx > len(resp) {
		endIdx = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[startIdx:endIdx], &meta)
}

func (h *Handler) GetMonthlyBalance(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		writeServiceError(c, apperror.RequiredField("employee_id"))
		return
	}

	yearStr := c.DefaultQuery("year", strconv.Itoa(time.Now().Year()))
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		writeServiceError(c, apperror.InvalidField("year"))
		return
	}

	resp, err := h.service.GetMonthlyBalance(c.Request.Context(), employeeID, year)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

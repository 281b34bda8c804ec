package payroll

import (
	"fmt"
	"net/http"
	"strconv"

	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func viewerFromContext(c *gin.Context) Viewer {
	return Viewer{
		Email: c.GetString("email"),
		Role:  c.GetString("role"),
	}
}

func parsePeriodParams(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h := apperror.ToHTTP(payrollerrors.ErrInvalidPeriod)
		response.Error(c, h.Status, h.Code, h.Message, nil)
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		h := apperror.ToHTTP(payrollerrors.ErrInvalidPeriod)
		response.Error(c, h.Status, h.Code, h.Message, nil)
		return 0, 0, false
	}
	return year, month, true
}

func (h *Handler) Run(c *gin.Context) {
	var req RunPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Run(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetPeriods(c *gin.Context) {
	resp, err := h.service.GetPeriods(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPeriod(c *gin.Context) {
	year, month, ok := parsePeriodParams(c)
	if !ok {
		return
	}

	resp, err := h.service.GetPeriod(c.Request.Context(), year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPayslips(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		h.writeServiceError(c, payrollerrors.ErrInvalidPeriod)
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		h.writeServiceError(c, payrollerrors.ErrInvalidPeriod)
		return
	}

	resp, err := h.service.GetPayslips(c.Request.Context(), year, month, viewerFromContext(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPayslipById(c *gin.Context) {
	resp, err := h.service.GetPayslipByID(c.Request.Context(), c.Param("id"), viewerFromContext(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportCSV(c *gin.Context) {
	year, month, ok := parsePeriodParams(c)
	if !ok {
		return
	}

	data, err := h.service.ExportCSV(c.Request.Context(), year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("payroll-%04d-%02d.csv", year, month)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *Handler) ExportXLSX(c *gin.Context) {
	year, month, ok := parsePeriodParams(c)
	if !ok {
		return
	}

	data, err := h.service.ExportXLSX(c.Request.Context(), year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("payroll-%04d-%02d.xlsx", year, month)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *Handler) ExportPayslipPDF(c *gin.Context) {
	data, err := h.service.ExportPayslipPDF(c.Request.Context(), c.Param("id"), viewerFromContext(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=payslip-"+c.Param("id")+".pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

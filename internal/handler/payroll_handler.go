package handler

import (
	"fmt"
	"net/http"

	"personnel/internal/i18n"
	"personnel/internal/middleware"
	"personnel/internal/model"
	"personnel/internal/service"
	"personnel/pkg/pagination"
	"personnel/pkg/response"

	"github.com/gin-gonic/gin"
)

type PayrollHandler struct {
	payrollService service.PayrollService
	exportService  service.ExportService
	auth           *middleware.Authenticator
	tr             *i18n.Translator
}

func NewPayrollHandler(payrollService service.PayrollService, exportService service.ExportService, auth *middleware.Authenticator, tr *i18n.Translator) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService, exportService: exportService, auth: auth, tr: tr}
}

func (h *PayrollHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/payroll")
	{
		group.POST("/convert", h.auth.RequirePermission(model.PermPayrollCalculate), h.Convert)
		group.POST("/convert/batch", h.auth.RequirePermission(model.PermPayrollCalculate), h.ConvertBatch)
		group.POST("/calculations", h.auth.RequirePermission(model.PermPayrollWrite), h.CreateCalculation)
		group.GET("/calculations", h.auth.RequirePermission(model.PermPayrollRead), h.ListCalculations)
		group.GET("/calculations/export", h.auth.RequirePermission(model.PermPayrollRead), h.ExportCalculations)
		group.GET("/calculations/:id", h.auth.RequirePermission(model.PermPayrollRead), h.GetCalculation)
	}
}

// Convert computes net from gross or gross from net at the rate effective on the given date
// @Summary      Convert gross/net
// @Description  Resolves the withholding rule version effective on date and converts amount in the requested direction
// @Tags         payroll
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ConvertRequest  true  "Conversion input"
// @Success      200      {object}  response.Response{data=service.ConvertResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/payroll/convert [post]
func (h *PayrollHandler) Convert(c *gin.Context) {
	var req service.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.tr, err)
		return
	}

	res, err := h.payrollService.Convert(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ConvertBatch converts several lines against one rule snapshot
// @Summary      Convert a batch of gross/net lines
// @Tags         payroll
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ConvertBatchRequest  true  "Batch input"
// @Success      200      {object}  response.Response{data=service.ConvertBatchResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/payroll/convert/batch [post]
func (h *PayrollHandler) ConvertBatch(c *gin.Context) {
	var req service.ConvertBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.tr, err)
		return
	}

	res, err := h.payrollService.ConvertBatch(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// CreateCalculation computes and stores a numbered payroll calculation
// @Summary      Record a payroll calculation
// @Tags         payroll
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateCalculationRequest  true  "Calculation input"
// @Success      201      {object}  response.Response{data=service.CalculationResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/payroll/calculations [post]
func (h *PayrollHandler) CreateCalculation(c *gin.Context) {
	var req service.CreateCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.tr, err)
		return
	}

	calc, err := h.payrollService.CreateCalculation(c.Request.Context(), req, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, calc))
}

// ListCalculations returns stored calculations, newest first
// @Summary      List payroll calculations
// @Tags         payroll
// @Security     BearerAuth
// @Produce      json
// @Param        employee_id  query     string  false  "Employee UUID"
// @Param        from         query     string  false  "Period from (YYYY-MM-DD)"
// @Param        to           query     string  false  "Period to (YYYY-MM-DD)"
// @Param        page         query     int     false  "Page number (default 1)"
// @Param        limit        query     int     false  "Items per page (default 20)"
// @Success      200          {object}  response.Response{data=object}
// @Router       /api/payroll/calculations [get]
func (h *PayrollHandler) ListCalculations(c *gin.Context) {
	p := pagination.Parse(c)

	calcs, total, err := h.payrollService.ListCalculations(c.Request.Context(), calculationQuery(c), p.Page, p.Limit)
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, p.Envelope("calculations", calcs, total)))
}

// GetCalculation returns one stored calculation
// @Summary      Get payroll calculation
// @Tags         payroll
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Calculation UUID"
// @Success      200  {object}  response.Response{data=service.CalculationResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/payroll/calculations/{id} [get]
func (h *PayrollHandler) GetCalculation(c *gin.Context) {
	calc, err := h.payrollService.GetCalculation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, calc))
}

// ExportCalculations builds an XLSX report. With object storage configured the response carries
// a download link, otherwise the file itself.
// @Summary      Export payroll calculations to XLSX
// @Tags         payroll
// @Security     BearerAuth
// @Produce      json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        employee_id  query     string  false  "Employee UUID"
// @Param        from         query     string  false  "Period from (YYYY-MM-DD)"
// @Param        to           query     string  false  "Period to (YYYY-MM-DD)"
// @Success      200          {object}  response.Response{data=service.ExportResult}
// @Failure      400          {object}  response.Response
// @Router       /api/payroll/calculations/export [get]
func (h *PayrollHandler) ExportCalculations(c *gin.Context) {
	res, err := h.exportService.ExportCalculations(c.Request.Context(), calculationQuery(c), middleware.Locale(c), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	if res.URL != "" {
		c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, res.FileName))
	c.Data(http.StatusOK, res.ContentType, res.Data)
}

func calculationQuery(c *gin.Context) service.CalculationQuery {
	return service.CalculationQuery{
		EmployeeID: c.Query("employee_id"),
		From:       c.Query("from"),
		To:         c.Query("to"),
	}
}

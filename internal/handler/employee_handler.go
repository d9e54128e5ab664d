package handler

import (
	"net/http"

	"personnel/internal/i18n"
	"personnel/internal/middleware"
	"personnel/internal/model"
	"personnel/internal/service"
	"personnel/pkg/pagination"
	"personnel/pkg/response"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
	auth            *middleware.Authenticator
	tr              *i18n.Translator
}

func NewEmployeeHandler(employeeService service.EmployeeService, auth *middleware.Authenticator, tr *i18n.Translator) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService, auth: auth, tr: tr}
}

func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/employees")
	{
		group.GET("", h.auth.RequirePermission(model.PermEmployeesRead), h.ListEmployees)
		group.GET("/:id", h.auth.RequirePermission(model.PermEmployeesRead), h.GetEmployee)
		group.POST("", h.auth.RequirePermission(model.PermEmployeesWrite), h.CreateEmployee)
		group.PUT("/:id", h.auth.RequirePermission(model.PermEmployeesWrite), h.UpdateEmployee)
	}
}

// @Summary      List employees
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        search  query     string  false  "Matches name, personnel number or email"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Items per page (default 20)"
// @Success      200     {object}  response.Response{data=object}
// @Router       /api/employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	p := pagination.Parse(c)

	employees, total, err := h.employeeService.ListEmployees(c.Request.Context(), c.Query("search"), p.Page, p.Limit)
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, p.Envelope("employees", employees, total)))
}

// @Summary      Get employee
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Employee UUID"
// @Success      200  {object}  response.Response{data=service.EmployeeResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, err := h.employeeService.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, employee))
}

// CreateEmployee registers an employee and issues a personnel number
// @Summary      Create employee
// @Tags         employees
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.EmployeeRequest  true  "Employee"
// @Success      201      {object}  response.Response{data=service.EmployeeResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.tr, err)
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, employee))
}

// @Summary      Update employee
// @Tags         employees
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Employee UUID"
// @Param        payload  body      service.EmployeeRequest  true  "Employee"
// @Success      200      {object}  response.Response{data=service.EmployeeResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req service.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.tr, err)
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), c.Param("id"), req, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, employee))
}

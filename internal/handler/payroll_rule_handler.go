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

type PayrollRuleHandler struct {
	ruleService service.PayrollRuleService
	auth        *middleware.Authenticator
	tr          *i18n.Translator
}

func NewPayrollRuleHandler(ruleService service.PayrollRuleService, auth *middleware.Authenticator, tr *i18n.Translator) *PayrollRuleHandler {
	return &PayrollRuleHandler{ruleService: ruleService, auth: auth, tr: tr}
}

func (h *PayrollRuleHandler) RegisterRoutes(router *gin.RouterGroup) {
	rules := router.Group("/api/payroll-rules")
	{
		rules.GET("", h.auth.RequirePermission(model.PermPayrollRulesRead), h.ListRules)
		rules.GET("/active", h.auth.RequirePermission(model.PermPayrollRulesRead), h.GetActiveRule)
		rules.GET("/:id", h.auth.RequirePermission(model.PermPayrollRulesRead), h.GetRule)
		rules.POST("", h.auth.RequirePermission(model.PermPayrollRulesWrite), h.CreateRule)
		rules.PUT("/:id", h.auth.RequirePermission(model.PermPayrollRulesWrite), h.UpdateRule)
		rules.DELETE("/:id", h.auth.RequirePermission(model.PermPayrollRulesWrite), h.DeleteRule)
	}
}

// ListRules returns rule versions, latest effective date first
// @Summary      List withholding rule versions
// @Tags         payroll-rules
// @Security     BearerAuth
// @Produce      json
// @Param        jurisdiction  query     string  false  "Jurisdiction code, all when empty"
// @Param        page          query     int     false  "Page number (default 1)"
// @Param        limit         query     int     false  "Items per page (default 20)"
// @Success      200           {object}  response.Response{data=object}
// @Router       /api/payroll-rules [get]
func (h *PayrollRuleHandler) ListRules(c *gin.Context) {
	p := pagination.Parse(c)

	rules, total, err := h.ruleService.ListRules(c.Request.Context(), c.Query("jurisdiction"), p.Page, p.Limit)
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, p.Envelope("rules", rules, total)))
}

// GetActiveRule resolves the version in force on a date
// @Summary      Get the rule version effective on a date
// @Tags         payroll-rules
// @Security     BearerAuth
// @Produce      json
// @Param        date          query     string  false  "YYYY-MM-DD, today when empty"
// @Param        jurisdiction  query     string  false  "Jurisdiction code"
// @Success      200           {object}  response.Response{data=service.ActiveRuleResponse}
// @Failure      404           {object}  response.Response
// @Router       /api/payroll-rules/active [get]
func (h *PayrollRuleHandler) GetActiveRule(c *gin.Context) {
	rule, err := h.ruleService.ActiveRule(c.Request.Context(), c.Query("jurisdiction"), c.Query("date"))
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rule))
}

// @Summary      Get a rule version
// @Tags         payroll-rules
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Rule version UUID"
// @Success      200  {object}  response.Response{data=service.PayrollRuleResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/payroll-rules/{id} [get]
func (h *PayrollRuleHandler) GetRule(c *gin.Context) {
	rule, err := h.ruleService.GetRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rule))
}

// CreateRule adds a version effective from a new date
// @Summary      Create a rule version
// @Tags         payroll-rules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.PayrollRuleRequest  true  "Rule version"
// @Success      201      {object}  response.Response{data=service.PayrollRuleResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/payroll-rules [post]
func (h *PayrollRuleHandler) CreateRule(c *gin.Context) {
	var req service.PayrollRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.tr, err)
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), req, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, rule))
}

// UpdateRule edits a version that no calculation references yet
// @Summary      Update a rule version
// @Tags         payroll-rules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Rule version UUID"
// @Param        payload  body      service.PayrollRuleRequest  true  "Rule version"
// @Success      200      {object}  response.Response{data=service.PayrollRuleResponse}
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/payroll-rules/{id} [put]
func (h *PayrollRuleHandler) UpdateRule(c *gin.Context) {
	var req service.PayrollRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.tr, err)
		return
	}

	rule, err := h.ruleService.UpdateRule(c.Request.Context(), c.Param("id"), req, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rule))
}

// @Summary      Delete a rule version
// @Tags         payroll-rules
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Rule version UUID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/payroll-rules/{id} [delete]
func (h *PayrollRuleHandler) DeleteRule(c *gin.Context) {
	if err := h.ruleService.DeleteRule(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil))
}

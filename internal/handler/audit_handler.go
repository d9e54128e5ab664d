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

type AuditHandler struct {
	auditService service.AuditService
	auth         *middleware.Authenticator
	tr           *i18n.Translator
}

func NewAuditHandler(auditService service.AuditService, auth *middleware.Authenticator, tr *i18n.Translator) *AuditHandler {
	return &AuditHandler{auditService: auditService, auth: auth, tr: tr}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/audit-logs")
	group.Use(h.auth.RequirePermission(model.PermAuditRead))
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs retrieves paginated records with the acting user preloaded
// @Summary      Get audit logs
// @Description  Retrieves audit entries with old and new values, newest first
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        entity  query     string  false  "Entity name, e.g. payroll_rule_version"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=object}
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	p := pagination.Parse(c)

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), c.Query("entity"), p.Page, p.Limit)
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, p.Envelope("logs", logs, total)))
}

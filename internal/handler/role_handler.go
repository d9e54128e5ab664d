package handler

import (
	"net/http"

	"personnel/internal/i18n"
	"personnel/internal/middleware"
	"personnel/internal/model"
	"personnel/internal/service"
	"personnel/pkg/response"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService service.RoleService
	auth        *middleware.Authenticator
	tr          *i18n.Translator
}

func NewRoleHandler(roleService service.RoleService, auth *middleware.Authenticator, tr *i18n.Translator) *RoleHandler {
	return &RoleHandler{roleService: roleService, auth: auth, tr: tr}
}

func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api")
	group.Use(h.auth.RequirePermission(model.PermRolesManage))
	{
		group.GET("/roles", h.ListRoles)
		group.GET("/permissions", h.ListPermissions)
		group.PUT("/roles/:id/permissions", h.UpdateRolePermissions)
	}
}

// @Summary      List roles
// @Tags         roles
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.RoleResponse}
// @Router       /api/roles [get]
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roleService.ListRoles(c.Request.Context())
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, roles))
}

// @Summary      List permissions
// @Tags         roles
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.PermissionResponse}
// @Router       /api/permissions [get]
func (h *RoleHandler) ListPermissions(c *gin.Context) {
	perms, err := h.roleService.ListPermissions(c.Request.Context())
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, perms))
}

// UpdateRolePermissions replaces the permission set of a role
// @Summary      Replace role permissions
// @Tags         roles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                                true  "Role UUID"
// @Param        payload  body      service.UpdateRolePermissionsRequest  true  "Permission ids"
// @Success      200      {object}  response.Response{data=service.RoleResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/roles/{id}/permissions [put]
func (h *RoleHandler) UpdateRolePermissions(c *gin.Context) {
	var req service.UpdateRolePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.tr, err)
		return
	}

	role, err := h.roleService.UpdateRolePermissions(c.Request.Context(), c.Param("id"), req, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.tr, err)
		return
	}

	h.auth.ClearPermissionCache(role.Name)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, role))
}

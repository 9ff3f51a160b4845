package admin

import (
	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/middleware"
	"kentkonut/internal/service"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// UserAdminHandler panel accounts, admin only
type UserAdminHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserAdminHandler creates the user admin handler
func NewUserAdminHandler(userService service.UserService, logger *logger.Logger) *UserAdminHandler {
	return &UserAdminHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers paginated accounts
// @Summary List users
// @Tags admin-users
// @Param page query int false "page"
// @Param pageSize query int false "page size"
// @Router /api/admin/users [get]
func (h *UserAdminHandler) ListUsers(c *gin.Context) {
	var p types.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BindError(c, err)
		return
	}
	page, err := h.userService.List(c.Request.Context(), p)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Page(c, page)
}

// GetUser one account
// @Router /api/admin/users/{id} [get]
func (h *UserAdminHandler) GetUser(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, user)
}

// CreateUser new panel account
// @Router /api/admin/users [post]
func (h *UserAdminHandler) CreateUser(c *gin.Context) {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	user, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	h.logger.Info("user created", "id", user.ID, "role", user.Role, "by", middleware.CurrentUser(c).ID)
	response.Created(c, user)
}

// UpdateUser partial update, nil fields are kept
// @Router /api/admin/users/{id} [put]
func (h *UserAdminHandler) UpdateUser(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	user, err := h.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, user)
}

// DeleteUser removes an account. The caller and the last admin cannot be removed.
// @Router /api/admin/users/{id} [delete]
func (h *UserAdminHandler) DeleteUser(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	actor := middleware.CurrentUser(c)
	if err := h.userService.Delete(c.Request.Context(), actor.ID, id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	h.logger.Info("user deleted", "id", id, "by", actor.ID)
	response.Deleted(c)
}

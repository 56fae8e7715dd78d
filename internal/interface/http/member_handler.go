package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rahadian/member-portal/internal/application"
	"github.com/rahadian/member-portal/internal/domain/entity"
	"github.com/rahadian/member-portal/internal/domain/repository"
	"github.com/rahadian/member-portal/internal/interface/middleware"
	"github.com/rahadian/member-portal/internal/interface/view"
	"github.com/rahadian/member-portal/pkg/validation"
)

// MemberHandler serves the guarded pages and the role-mutation endpoints.
type MemberHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewMemberHandler(svc *application.Service, logger *logrus.Logger) *MemberHandler {
	return &MemberHandler{Svc: svc, Logger: logger}
}

type roleChangeRequest struct {
	Name string `form:"name" binding:"required"`
}

// Members greets the logged-in user by name.
func (h *MemberHandler) Members(c *gin.Context) {
	view.Page(c, http.StatusOK, "members.tmpl", gin.H{
		"Name": c.GetString(middleware.CtxUserNameKey),
	})
}

// Admin lists every user with promote/demote controls.
func (h *MemberHandler) Admin(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("user list failed")
		view.ErrorPage(c, http.StatusInternalServerError, "Something went wrong, please try again", "/members", "Back to Members")
		return
	}
	view.Page(c, http.StatusOK, "admin.tmpl", gin.H{"Users": users})
}

// PromoteToAdmin handles POST /promoteToAdmin.
func (h *MemberHandler) PromoteToAdmin(c *gin.Context) {
	h.setRole(c, entity.RoleAdmin)
}

// DemoteToUser handles POST /demoteToUser.
func (h *MemberHandler) DemoteToUser(c *gin.Context) {
	h.setRole(c, entity.RoleUser)
}

func (h *MemberHandler) setRole(c *gin.Context, role entity.Role) {
	var req roleChangeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("role change rejected")
		view.ErrorPage(c, http.StatusBadRequest, "Please provide a user name", "/admin", "Back to Admin")
		return
	}
	if err := h.Svc.SetRole(c.Request.Context(), req.Name, role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			view.ErrorPage(c, http.StatusNotFound, "User "+req.Name+" not found", "/admin", "Back to Admin")
			return
		}
		h.Logger.WithError(err).Error("role update failed")
		view.ErrorPage(c, http.StatusInternalServerError, "Something went wrong, please try again", "/admin", "Back to Admin")
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// NotFound is the catch-all.
func NotFound(c *gin.Context) {
	view.Page(c, http.StatusNotFound, "not_found.tmpl", gin.H{})
}

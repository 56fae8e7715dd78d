package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rahadian/member-portal/internal/application"
	"github.com/rahadian/member-portal/internal/interface/view"
	"github.com/rahadian/member-portal/pkg/helpers"
	"github.com/rahadian/member-portal/pkg/validation"
)

// AuthHandler serves the signup and login forms and their submissions.
type AuthHandler struct {
	Svc     *application.Service
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger, cookies *helpers.CookieManager) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: cookies}
}

// signupRequest mirrors the legacy validation schema, including the
// max-20 limit on email. That limit rejects plenty of legitimate
// addresses; it is kept for parity, not because it is a good idea.
type signupRequest struct {
	Name     string `form:"name" binding:"required,alphanum,max=20"`
	Email    string `form:"email" binding:"required,email,max=20"`
	Password string `form:"password" binding:"required,alphanum,max=20"`
}

type loginRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password"`
}

func (h *AuthHandler) Home(c *gin.Context) {
	view.Page(c, http.StatusOK, "home.tmpl", gin.H{})
}

func (h *AuthHandler) SignupPage(c *gin.Context) {
	view.Page(c, http.StatusOK, "signup.tmpl", gin.H{})
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	view.Page(c, http.StatusOK, "login.tmpl", gin.H{})
}

// SubmitUser handles POST /submitUser. Validation failure never touches
// the store; the response names the offending fields.
func (h *AuthHandler) SubmitUser(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		fields := validation.FailedFields(err)
		msg := "Please provide a correct value for: " + strings.Join(fields, ", ")
		if len(fields) == 0 {
			msg = "Please fill in name, email and password"
		}
		view.ErrorPage(c, http.StatusBadRequest, msg, "/signup", "Back to Signup")
		return
	}

	sid, err := h.Svc.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrDuplicateUser) {
			view.ErrorPage(c, http.StatusBadRequest, "User with email "+req.Email+" already exists", "/signup", "Back to Signup")
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		view.ErrorPage(c, http.StatusInternalServerError, "Something went wrong, please try again", "/signup", "Back to Signup")
		return
	}

	h.Cookies.SetSession(c, sid, h.Svc.SessionTTL)
	c.Redirect(http.StatusSeeOther, "/members")
}

// LoggingIn handles POST /loggingin. Only the email shape is checked
// before the lookup; unknown email and wrong password produce the same
// response.
func (h *AuthHandler) LoggingIn(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		view.ErrorPage(c, http.StatusBadRequest, "That email is invalid", "/login", "Back to Login")
		return
	}

	sid, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrAuthenticationFailed) {
			view.ErrorPage(c, http.StatusUnauthorized, "That email/password combination is incorrect", "/login", "Back to Login")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		view.ErrorPage(c, http.StatusInternalServerError, "Something went wrong, please try again", "/login", "Back to Login")
		return
	}

	h.Cookies.SetSession(c, sid, h.Svc.SessionTTL)
	c.Redirect(http.StatusSeeOther, "/members")
}

// Logout destroys the server-side session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sid := h.Cookies.SessionID(c); sid != "" {
		if err := h.Svc.Logout(c.Request.Context(), sid); err != nil {
			h.Logger.WithError(err).Warn("session delete failed")
		}
	}
	h.Cookies.Clear(c)
	c.Redirect(http.StatusSeeOther, "/")
}

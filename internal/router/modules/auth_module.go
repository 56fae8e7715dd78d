package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rahadian/member-portal/internal/interface/http"
)

// AuthModule wires the public pages and the signup/login/logout endpoints.
// Public: GET /, GET /signup, GET /login, POST /submitUser,
// POST /loggingin, GET /logout.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Home)
	rg.GET("/signup", m.Handler.SignupPage)
	rg.GET("/login", m.Handler.LoginPage)
	rg.POST("/submitUser", m.Handler.SubmitUser)
	rg.POST("/loggingin", m.Handler.LoggingIn)
	rg.GET("/logout", m.Handler.Logout)
}

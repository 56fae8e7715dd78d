package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahadian/member-portal/internal/domain/entity"
	"github.com/rahadian/member-portal/internal/interface/view"
	"github.com/rahadian/member-portal/internal/session"
	"github.com/rahadian/member-portal/pkg/helpers"
)

// Context keys shared with handlers.
const (
	CtxSessionIDKey = "sessionID"
	CtxSessionKey   = "session"
	CtxUserNameKey  = "userName"
)

// RequireLogin resolves the session referenced by the cookie and lets the
// request through only if the record carries a user identity. Any other
// outcome, cookie missing, record expired or identity empty, gets the
// same "please log in" view; a guarded route never reveals which case it
// was.
func RequireLogin(store session.Store, cookies *helpers.CookieManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := cookies.SessionID(c)
		if sid == "" {
			view.LoginRequired(c)
			c.Abort()
			return
		}
		rec, err := store.Get(c.Request.Context(), sid)
		if err != nil || !rec.HasIdentity() {
			view.LoginRequired(c)
			c.Abort()
			return
		}
		c.Set(CtxSessionIDKey, sid)
		c.Set(CtxSessionKey, rec)
		c.Set(CtxUserNameKey, rec.Name)
		c.Next()
	}
}

// RequireAdmin composes after RequireLogin. Two independent checks: the
// session must be authenticated (password verified at login, not merely
// created at signup), then the role must be admin. The second failure is
// an authorization error, distinct from the authentication one.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		rec := SessionRecord(c)
		if rec == nil || !rec.Authenticated {
			view.LoginRequired(c)
			c.Abort()
			return
		}
		if rec.Role != entity.RoleAdmin {
			view.ErrorPage(c, http.StatusForbidden, "You are not authorized to view this page", "/members", "Back to Members")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionRecord returns the session record placed in the context by
// RequireLogin, nil when absent.
func SessionRecord(c *gin.Context) *session.Record {
	v, ok := c.Get(CtxSessionKey)
	if !ok {
		return nil
	}
	rec, _ := v.(*session.Record)
	return rec
}

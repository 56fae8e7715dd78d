package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rahadian/member-portal/internal/interface/http"
	"github.com/rahadian/member-portal/internal/interface/middleware"
	"github.com/rahadian/member-portal/internal/session"
	"github.com/rahadian/member-portal/pkg/helpers"
)

// MemberModule wires the guarded routes.
// Session guard: GET /members.
// Session guard + role guard: GET /admin.
// POST /promoteToAdmin and /demoteToUser sit behind the same guards when
// GuardMutations is true; with it false they are registered unguarded,
// reproducing the legacy variant that shipped without the check.
type MemberModule struct {
	Handler        *handlers.MemberHandler
	Sessions       session.Store
	Cookies        *helpers.CookieManager
	GuardMutations bool
}

func NewMemberModule(h *handlers.MemberHandler, sessions session.Store, cookies *helpers.CookieManager, guardMutations bool) *MemberModule {
	return &MemberModule{Handler: h, Sessions: sessions, Cookies: cookies, GuardMutations: guardMutations}
}

func (m *MemberModule) Register(rg *gin.RouterGroup) {
	requireLogin := middleware.RequireLogin(m.Sessions, m.Cookies)
	requireAdmin := middleware.RequireAdmin()

	rg.GET("/members", requireLogin, m.Handler.Members)
	rg.GET("/admin", requireLogin, requireAdmin, m.Handler.Admin)

	if m.GuardMutations {
		rg.POST("/promoteToAdmin", requireLogin, requireAdmin, m.Handler.PromoteToAdmin)
		rg.POST("/demoteToUser", requireLogin, requireAdmin, m.Handler.DemoteToUser)
	} else {
		rg.POST("/promoteToAdmin", m.Handler.PromoteToAdmin)
		rg.POST("/demoteToUser", m.Handler.DemoteToUser)
	}
}

package router

import (
	"github.com/rahadian/member-portal/internal/application"
	"github.com/rahadian/member-portal/internal/container"
	handlers "github.com/rahadian/member-portal/internal/interface/http"
	"github.com/rahadian/member-portal/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup after the container has
// been populated.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	svc := application.NewService(
		container.GetUserRepository(),
		container.GetSessionStore(),
		container.GetLogger(),
		cfg.SessionTTL,
	)

	authHandler := handlers.NewAuthHandler(svc, container.GetLogger(), container.GetCookies())
	memberHandler := handlers.NewMemberHandler(svc, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewMemberModule(memberHandler, container.GetSessionStore(), container.GetCookies(), cfg.GuardRoleMutations))

	r.Engine.NoRoute(handlers.NotFound)
}

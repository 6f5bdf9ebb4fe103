package setup

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/viper"

	"github.com/Badsnus/club-directory/cmd/server"
	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/admin"
	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/auth"
	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/directory"
	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/middlewares"
	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/portal"
)

func Setup(s *server.Server) {
	// Pre-setup and global middlewares
	middle := middlewares.New(s)
	directoryHandler := directory.New(s)
	authHandler := auth.New(s)
	portalHandler := portal.New(s)
	adminHandler := admin.New(s)

	r := s.Router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CORS(viper.GetStringSlice("server.cors-origins")))
	r.Use(middle.CSRF(
		[]byte(viper.GetString("server.session-secret")),
		viper.GetStringSlice("server.trusted-origins"),
	))
	r.Use(s.Sessions.LoadAndSave)
	r.Use(middle.LoadUser)
	r.Use(middle.Logger)

	// Public:
	directoryHandler.Setup(r)
	authHandler.Setup(r, middlewares.RateLimit(
		viper.GetFloat64("server.rate-limit.rps"),
		viper.GetInt("server.rate-limit.burst"),
	))

	// Signed in:
	r.Group(func(r chi.Router) {
		r.Use(middle.Authorized)
		portalHandler.Setup(r)
	})

	// Admin:
	r.Group(func(r chi.Router) {
		r.Use(middle.Admin)
		adminHandler.Setup(r)
	})
}

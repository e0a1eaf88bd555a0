package main

import (
	"net/http"

	"github.com/endorsa/endorsa-api/internal/api"
	apiMiddleware "github.com/endorsa/endorsa-api/internal/api/middleware"
	"github.com/endorsa/endorsa-api/internal/service/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.CORS)

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	profileHandler := api.NewProfileHandler(app.profileService, app.logger)
	skillHandler := api.NewSkillHandler(app.skillService, app.logger)
	endorsementHandler := api.NewEndorsementHandler(app.endorsementService, app.logger)
	perms := apiMiddleware.NewPermissionMiddleware(app.jwtService)

	r.Get("/", api.Welcome)
	r.Get("/health", api.Health)

	r.Route("/users", func(r chi.Router) {
		r.With(perms.RequirePermission(auth.PermReadUser)).Get("/", profileHandler.ListProfiles)
		r.With(perms.RequirePermission(auth.PermEditUser)).Post("/", profileHandler.CreateProfile)
		r.With(perms.RequirePermission(auth.PermEditUser)).Delete("/", profileHandler.DeleteAllProfiles)
		r.With(perms.RequirePermission(auth.PermReadUser)).Get("/{id}", profileHandler.GetProfile)
		r.With(perms.RequirePermission(auth.PermEditUser)).Patch("/{id}", profileHandler.UpdateProfile)
		r.With(perms.RequirePermission(auth.PermEditUser)).Delete("/{id}", profileHandler.DeleteProfile)
	})

	r.Route("/skills", func(r chi.Router) {
		r.With(perms.RequirePermission(auth.PermReadSkill)).Get("/", skillHandler.ListSkills)
		r.With(perms.RequirePermission(auth.PermEditSkill)).Post("/", skillHandler.CreateSkill)
		r.With(perms.RequirePermission(auth.PermEditSkill)).Delete("/", skillHandler.DeleteAllSkills)
		r.With(perms.RequirePermission(auth.PermReadSkill)).Get("/{id}", skillHandler.GetSkill)
		r.With(perms.RequirePermission(auth.PermEditSkill)).Patch("/{id}", skillHandler.UpdateSkill)
		r.With(perms.RequirePermission(auth.PermEditSkill)).Delete("/{id}", skillHandler.DeleteSkill)
	})

	r.Route("/endorsements", func(r chi.Router) {
		r.With(perms.RequirePermission(auth.PermReadEndorsement)).Get("/", endorsementHandler.ListEndorsements)
		r.With(perms.RequirePermission(auth.PermEditEndorsement)).Post("/", endorsementHandler.CreateEndorsement)
		r.With(perms.RequirePermission(auth.PermEditEndorsement)).Delete("/", endorsementHandler.DeleteAllEndorsements)
		r.With(perms.RequirePermission(auth.PermReadEndorsement)).Get("/{id}", endorsementHandler.GetEndorsement)
		r.With(perms.RequirePermission(auth.PermEditEndorsement)).Delete("/{id}", endorsementHandler.DeleteEndorsement)
	})

	return r
}

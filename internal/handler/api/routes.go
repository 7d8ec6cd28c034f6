// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/wolvhq/wolv-site/internal/middleware"
)

// Routes builds the /api/v1 router. Auth endpoints sit behind the rate
// limiter; admin endpoints additionally require the admin role.
func (h *Handler) Routes(auth *middleware.SessionAuth, limiter *middleware.GlobalRateLimiter) chi.Router {
	r := chi.NewRouter()

	r.Get("/status", h.Status)

	// Public content reads. Never blocked on the remote store.
	r.Get("/events", h.ListEvents)
	r.Get("/events/featured", h.FeaturedEvents)
	r.Get("/events/{id}", h.GetEvent)
	r.Get("/gallery", h.ListGallery)
	r.Get("/aftermovies", h.ListAftermovies)
	r.Get("/settings", h.GetSettings)
	r.Get("/about", h.GetAbout)

	r.Route("/auth", func(r chi.Router) {
		r.Use(limiter.Middleware())
		r.Post("/signin", h.SignIn)
		r.Post("/signup", h.SignUp)
		r.Post("/signout", h.SignOut)
		r.Post("/reset-password", h.ResetPassword)
		r.With(auth.RequireUser).Get("/session", h.Session)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(auth.RequireAdmin)

		r.Post("/events", h.CreateEvent)
		r.Put("/events/{id}", h.UpdateEvent)
		r.Delete("/events/{id}", h.DeleteEvent)

		r.Post("/gallery", h.CreateGalleryPhoto)
		r.Put("/gallery/{id}", h.UpdateGalleryPhoto)
		r.Delete("/gallery/{id}", h.DeleteGalleryPhoto)

		r.Post("/aftermovies", h.CreateAftermovie)
		r.Put("/aftermovies/{id}", h.UpdateAftermovie)
		r.Delete("/aftermovies/{id}", h.DeleteAftermovie)

		r.Put("/settings", h.UpdateSettings)
		r.Put("/about", h.UpdateAbout)

		r.Post("/invite", h.Invite)
		r.Get("/users", h.ListUsers)
		r.Put("/users/{id}", h.UpdateUser)
		r.Delete("/users/{id}", h.DeleteUser)

		r.Post("/uploads", h.Upload)
	})

	return r
}

package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// setupAPIRoutes mounts the REST surface under /api
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, ownerID uuid.UUID) {
	r.Route("/api", func(r chi.Router) {
		r.Use(RequestLoggingMiddleware)
		r.Use(principalMiddleware(ownerID))

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", handlers.blogPostHandler.listPublished())
			r.Get("/all", handlers.blogPostHandler.listAll())
			r.Get("/search", handlers.blogPostHandler.search())
			r.Get("/slug/{slug}", handlers.blogPostHandler.getBySlug())
			r.Get("/tag/{tagSlug}", handlers.blogPostHandler.listByTag())
			r.Get("/{postID}", handlers.blogPostHandler.getByID())
			r.Post("/", handlers.blogPostHandler.create())
			r.Put("/{postID}", handlers.blogPostHandler.update())
			r.Delete("/{postID}", handlers.blogPostHandler.delete())
			r.Patch("/{postID}/toggle-publish", handlers.blogPostHandler.togglePublish())
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/post/{postID}", handlers.commentHandler.listByPost())
			r.Get("/post/{postID}/count", handlers.commentHandler.countByPost())
			r.Post("/", handlers.commentHandler.create())
			r.Delete("/{commentID}", handlers.commentHandler.delete())
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", handlers.tagHandler.list())
			r.Get("/slug/{slug}", handlers.tagHandler.getBySlug())
			r.Get("/{tagID}", handlers.tagHandler.getByID())
			r.Post("/", handlers.tagHandler.create())
			r.Put("/{tagID}", handlers.tagHandler.update())
			r.Delete("/{tagID}", handlers.tagHandler.delete())
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", handlers.projectHandler.list())
			r.Get("/featured", handlers.projectHandler.listFeatured())
			r.Get("/slug/{slug}", handlers.projectHandler.getBySlug())
			r.Get("/{projectID}", handlers.projectHandler.getByID())
			r.Post("/", handlers.projectHandler.create())
			r.Put("/{projectID}", handlers.projectHandler.update())
			r.Delete("/{projectID}", handlers.projectHandler.delete())
			r.Patch("/{projectID}/toggle-featured", handlers.projectHandler.toggleFeatured())
			r.Patch("/{projectID}/display-order", handlers.projectHandler.setDisplayOrder())
		})

		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", handlers.galleryHandler.list())
			r.Get("/{imageID}", handlers.galleryHandler.getByID())
			r.Post("/", handlers.galleryHandler.upload())
			r.Patch("/{imageID}/caption", handlers.galleryHandler.updateCaption())
			r.Patch("/{imageID}/display-order", handlers.galleryHandler.setDisplayOrder())
			r.Put("/reorder", handlers.galleryHandler.reorder())
			r.Delete("/{imageID}", handlers.galleryHandler.delete())
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/username/{username}", handlers.userHandler.getByUsername())
			r.Get("/check/username/{username}", handlers.userHandler.checkUsername())
			r.Get("/check/email/{email}", handlers.userHandler.checkEmail())
			r.Get("/{userID}", handlers.userHandler.getByID())
			r.Put("/{userID}", handlers.userHandler.update())
			r.Post("/login", handlers.userHandler.login())
		})
	})
}

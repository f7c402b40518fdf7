package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/logout", h.logout)

		r.Get("/users", h.listUsers)
		r.Get("/users/me", h.me)

		r.Get("/notes", h.listNotes)
		r.Get("/notes/all", h.listAllNotes)
		r.Post("/notes", h.createNote)
		r.Get("/notes/{slug}", h.getNoteBySlug)
		r.Put("/notes/{id}", h.updateNote)
		r.Delete("/notes/{id}", h.deleteNote)
		r.Post("/notes/{id}/restore", h.restoreNote)

		r.Get("/categories", h.listCategories)
		r.Get("/categories/deleted", h.listDeletedCategories)
		r.Post("/categories", h.createCategory)
		r.Get("/categories/{id}", h.getCategory)
		r.Put("/categories/{id}", h.updateCategory)
		r.Delete("/categories/{id}", h.deleteCategory)
		r.Post("/categories/{id}/restore", h.restoreCategory)
		r.Delete("/categories/{id}/permanent-delete", h.permanentDeleteCategory)
		r.Delete("/bulk-delete/categories", h.bulkDeleteCategories)

		r.Get("/folders", h.listFolders)
		r.Post("/folders", h.createFolder)
		r.Get("/folders/{id}", h.getFolder)
		r.Put("/folders/{id}", h.updateFolder)
		r.Delete("/folders/{id}", h.deleteFolder)
		r.Post("/folders/{id}/restore", h.restoreFolder)

		r.Get("/friends", h.friendsOverview)
		r.Post("/friends/{id}", h.sendFriendRequest)
		r.Post("/friends/{id}/accept", h.acceptFriendRequest)
		r.Post("/friends/{id}/reject", h.rejectFriendRequest)
		r.Post("/friends/{id}/cancel", h.cancelFriendRequest)
		r.Delete("/friends/{id}", h.unfriend)
	})

	return router
}

package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	agentMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("agent"))
	adminMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Auth
	mux.Post("/api/auth/register", standardMiddleware.ThenFunc(app.userHandler.Register))
	mux.Post("/api/auth/login", standardMiddleware.ThenFunc(app.userHandler.Login))
	mux.Post("/api/auth/refresh", standardMiddleware.ThenFunc(app.userHandler.RefreshToken))
	mux.Post("/api/auth/logout", authMiddleware.ThenFunc(app.userHandler.Logout))
	mux.Post("/api/auth/forgot-password", standardMiddleware.ThenFunc(app.userHandler.ForgotPassword))
	mux.Post("/api/auth/reset-password", standardMiddleware.ThenFunc(app.userHandler.ResetPassword))
	mux.Post("/api/notifications/token", authMiddleware.ThenFunc(app.userHandler.RegisterDeviceToken))

	// Properties
	mux.Get("/api/properties", standardMiddleware.ThenFunc(app.propertyHandler.GetProperties))
	mux.Post("/api/properties", agentMiddleware.ThenFunc(app.propertyHandler.CreateProperty))
	mux.Get("/api/properties/category/:id", standardMiddleware.ThenFunc(app.propertyHandler.GetPropertiesByCategory))
	mux.Get("/api/properties/:id", standardMiddleware.ThenFunc(app.propertyHandler.GetPropertyByID))
	mux.Put("/api/properties/:id", agentMiddleware.ThenFunc(app.propertyHandler.UpdateProperty))
	mux.Del("/api/properties/:id", agentMiddleware.ThenFunc(app.propertyHandler.DeleteProperty))

	// Categories
	mux.Get("/api/categories", standardMiddleware.ThenFunc(app.categoryHandler.GetCategories))
	mux.Post("/api/categories", adminMiddleware.ThenFunc(app.categoryHandler.CreateCategory))
	mux.Get("/api/categories/:id", standardMiddleware.ThenFunc(app.categoryHandler.GetCategoryByID))
	mux.Put("/api/categories/:id", adminMiddleware.ThenFunc(app.categoryHandler.UpdateCategory))
	mux.Del("/api/categories/:id", adminMiddleware.ThenFunc(app.categoryHandler.DeleteCategory))

	// Types
	mux.Get("/api/types", standardMiddleware.ThenFunc(app.typeHandler.GetTypes))
	mux.Post("/api/types", adminMiddleware.ThenFunc(app.typeHandler.CreateType))
	mux.Get("/api/types/:id", standardMiddleware.ThenFunc(app.typeHandler.GetTypeByID))
	mux.Put("/api/types/:id", adminMiddleware.ThenFunc(app.typeHandler.UpdateType))
	mux.Del("/api/types/:id", adminMiddleware.ThenFunc(app.typeHandler.DeleteType))

	// Contacts
	mux.Post("/api/contacts", standardMiddleware.Append(app.rateLimit).ThenFunc(app.contactHandler.CreateContact))
	mux.Get("/api/contacts", agentMiddleware.ThenFunc(app.contactHandler.GetContacts))
	mux.Get("/api/contacts/:id", agentMiddleware.ThenFunc(app.contactHandler.GetContactByID))
	mux.Add("PATCH", "/api/contacts", agentMiddleware.ThenFunc(app.contactHandler.UpdateContactStatus))
	mux.Del("/api/contacts/:id", agentMiddleware.ThenFunc(app.contactHandler.DeleteContact))

	// Favorites
	mux.Get("/api/favorites", authMiddleware.ThenFunc(app.favoriteHandler.GetFavorites))
	mux.Get("/api/favorites/:id/check", authMiddleware.ThenFunc(app.favoriteHandler.IsFavorite))
	mux.Post("/api/favorites/:id", authMiddleware.ThenFunc(app.favoriteHandler.AddFavorite))
	mux.Del("/api/favorites/:id", authMiddleware.ThenFunc(app.favoriteHandler.RemoveFavorite))

	// Users
	mux.Get("/api/users", adminMiddleware.ThenFunc(app.userHandler.GetUsers))
	mux.Post("/api/users", adminMiddleware.ThenFunc(app.userHandler.CreateUser))
	mux.Get("/api/users/:id", adminMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/api/users/:id", adminMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Del("/api/users/:id", adminMiddleware.ThenFunc(app.userHandler.DeleteUser))

	// Uploads
	mux.Post("/api/upload", agentMiddleware.ThenFunc(app.uploadHandler.UploadImage))
	mux.Post("/api/upload/delete", agentMiddleware.ThenFunc(app.uploadHandler.DeleteImage))

	// Live contact feed for the back office
	mux.Get("/ws/contacts", standardMiddleware.ThenFunc(app.ContactFeedHandler))

	return standardMiddleware.Then(mux)
}

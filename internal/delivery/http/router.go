package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"groupnest/internal/delivery/http/controllers"
	"groupnest/internal/delivery/http/middleware"
	"groupnest/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, authController *controllers.AuthController, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Group events
	mux.HandleFunc("POST /events/group/{groupID}", requireAuth(eventController.CreateEvent))
	mux.HandleFunc("GET /events/group/{groupID}", requireAuth(eventController.ListGroupEvents))

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

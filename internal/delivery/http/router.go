package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Viraj-FG/Techcentral-sub004/internal/delivery/http/controllers"
	"github.com/Viraj-FG/Techcentral-sub004/internal/delivery/http/middleware"
	"github.com/Viraj-FG/Techcentral-sub004/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	inviteController *controllers.InviteController,
	householdController *controllers.HouseholdController,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Invites
	mux.HandleFunc("POST /create-invite-link", requireAuth(inviteController.CreateInviteLink))
	mux.HandleFunc("POST /verify-invite", inviteController.VerifyInvite)

	// Households
	mux.HandleFunc("POST /households", requireAuth(householdController.Create))
	mux.HandleFunc("POST /join", requireAuth(householdController.Join))
	mux.HandleFunc("GET /households/me", requireAuth(householdController.GetMine))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

package main

import (
	"database/sql"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	"github.com/Viraj-FG/Techcentral-sub004/config"
	_ "github.com/Viraj-FG/Techcentral-sub004/docs"
	authadapter "github.com/Viraj-FG/Techcentral-sub004/internal/adapters/auth"
	emailadapter "github.com/Viraj-FG/Techcentral-sub004/internal/adapters/email"
	"github.com/Viraj-FG/Techcentral-sub004/internal/adapters/invitetoken"
	httpdelivery "github.com/Viraj-FG/Techcentral-sub004/internal/delivery/http"
	"github.com/Viraj-FG/Techcentral-sub004/internal/delivery/http/controllers"
	"github.com/Viraj-FG/Techcentral-sub004/internal/delivery/http/middleware"
	"github.com/Viraj-FG/Techcentral-sub004/internal/repository/postgres"
	"github.com/Viraj-FG/Techcentral-sub004/internal/services"
)

const bcryptCost = 10

// @title Household Invite API
// @version 1.0
// @description Household membership backend: signed invite links, join, and auth.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	householdRepo := postgres.NewHouseholdRepository(db)
	memberRepo := postgres.NewHouseholdMemberRepository(db)

	// Adapters
	hasher := authadapter.NewBcryptHasher(bcryptCost)
	tokenIssuer := authadapter.NewJWTIssuer(cfg.SessionJWTSecret)
	tokenVerifier := authadapter.NewJWTVerifier(cfg.SessionJWTSecret)
	inviteCodec := invitetoken.NewCodec(cfg.InviteSecret)

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	// Services
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	userService := services.NewUserService(userRepo, hasher, tokenIssuer)
	inviteService := services.NewInviteService(memberRepo, householdRepo, userRepo, inviteCodec, emailService, cfg.AppOrigin)
	householdService := services.NewHouseholdService(householdRepo, memberRepo, inviteService)

	// Controllers
	authController := controllers.NewAuthController(logger, userService)
	inviteController := controllers.NewInviteController(logger, inviteService)
	householdController := controllers.NewHouseholdController(logger, householdService)

	mux := httpdelivery.NewRouter(logger, tokenVerifier, authController, inviteController, householdController)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("server listening", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

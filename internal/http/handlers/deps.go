package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"userbase/internal/config"
	"userbase/internal/repos"
	"userbase/internal/services"
	"userbase/internal/token"
)

type Deps struct {
	AuthHandler *AuthHandler
	UserHandler *UserHandler
	RequireAuth fiber.Handler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	signer := token.NewSigner(cfg.JWTSecret, cfg.TokenTTL)

	authSvc := &services.AuthService{Users: userRepo, Tokens: signer}
	userSvc := &services.UserService{Users: userRepo}

	return &Deps{
		AuthHandler: &AuthHandler{Auth: authSvc},
		UserHandler: &UserHandler{Users: userSvc},
		RequireAuth: RequireAuth(signer, userRepo),
	}
}

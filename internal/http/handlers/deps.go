package handlers

import (
	"membergate/internal/config"
	"membergate/internal/repos"
	"membergate/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Auth        *services.AuthService
	AuthHandler *AuthHandler
	Pages       *PagesHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	sessRepo := repos.NewSessionRepo(db)
	sessSvc := &services.SessionService{Sessions: sessRepo}
	authSvc := &services.AuthService{Users: userRepo, Hasher: services.NewHasher(), Sessions: sessSvc}

	return &Deps{
		Auth:        authSvc,
		AuthHandler: &AuthHandler{Auth: authSvc},
		Pages:       &PagesHandler{Cfg: cfg},
	}
}

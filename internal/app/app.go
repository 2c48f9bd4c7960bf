package app

import (
	"fmt"

	"github.com/JamesKha/micro-credentials-platform-back/internal/config"
	"github.com/JamesKha/micro-credentials-platform-back/internal/db"
	"github.com/JamesKha/micro-credentials-platform-back/internal/repository"
	"github.com/JamesKha/micro-credentials-platform-back/internal/service"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg         *config.Config
	DB          *sqlx.DB
	AuthService *service.AuthService
	UserService *service.UserService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)

	// Services
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepository)

	return &App{
		Cfg:         cfg,
		DB:          database,
		AuthService: authService,
		UserService: userService,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}

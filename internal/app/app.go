package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/upliftapp/uplift/internal/config"
	"github.com/upliftapp/uplift/internal/db"
	"github.com/upliftapp/uplift/internal/repository"
	"github.com/upliftapp/uplift/internal/service"
)

// App holds the explicitly constructed dependency graph. Nothing here is a
// package-level singleton; its lifecycle is scoped to process start/stop.
type App struct {
	Cfg                   *config.Config
	DB                    *sqlx.DB
	AuthService           *service.AuthService
	UserService           *service.UserService
	SessionService        *service.SessionService
	GoalService           *service.GoalService
	AffirmationService    *service.AffirmationService
	AccomplishmentService *service.AccomplishmentService
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
	sessionRepository := repository.NewSessionRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	affirmationRepository := repository.NewAffirmationRepository(database)
	accomplishmentRepository := repository.NewAccomplishmentRepository(database)

	// Services
	authService := service.NewAuthService(userRepository)
	userService := service.NewUserService(userRepository)
	sessionService := service.NewSessionService(sessionRepository, cfg.IsProduction())
	goalService := service.NewGoalService(goalRepository)
	affirmationService := service.NewAffirmationService(affirmationRepository)
	accomplishmentService := service.NewAccomplishmentService(accomplishmentRepository)

	return &App{
		Cfg:                   cfg,
		DB:                    database,
		AuthService:           authService,
		UserService:           userService,
		SessionService:        sessionService,
		GoalService:           goalService,
		AffirmationService:    affirmationService,
		AccomplishmentService: accomplishmentService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

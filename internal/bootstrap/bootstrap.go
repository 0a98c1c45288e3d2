package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/yigit/contribtrack/internal/app/auth"
	appControllers "github.com/yigit/contribtrack/internal/app/controllers"
	appMigrations "github.com/yigit/contribtrack/internal/app/migrations"
	appRepos "github.com/yigit/contribtrack/internal/app/repositories"
	inmemdb "github.com/yigit/contribtrack/internal/app/repositories/inmem"
	appRoutes "github.com/yigit/contribtrack/internal/app/routes"
	appServices "github.com/yigit/contribtrack/internal/app/services"
	"github.com/yigit/contribtrack/internal/config"
	"github.com/yigit/contribtrack/internal/db"
	appMiddleware "github.com/yigit/contribtrack/internal/middleware"
	pkgAuth "github.com/yigit/contribtrack/internal/pkg/auth"
	"github.com/yigit/contribtrack/internal/pkg/logger"
	"github.com/yigit/contribtrack/internal/seed"
)

// DefaultConfigPath is where LoadConfigAndSetupLogger looks for the YAML file
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Storage is the selected persistence backend. Postgres is nil for the
// memory driver.
type Storage struct {
	Repos    *appRepos.Repositories
	Postgres *db.PostgresDB
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s != nil {
		s.Postgres.Close()
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	DepartmentService   *appServices.DepartmentService
	EmployeeService     *appServices.EmployeeService
	ContributionService *appServices.ContributionService
	ExportService       *appServices.ExportService

	AuthController         *appControllers.AuthController
	DepartmentController   *appControllers.DepartmentController
	EmployeeController     *appControllers.EmployeeController
	ContributionController *appControllers.ContributionController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Format: logger.Format(strings.ToLower(cfg.Logging.Format)),
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured backend, applies migrations for
// PostgreSQL and seeds default data when enabled.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Storage, error) {
	storage := &Storage{}

	switch cfg.Database.Driver {
	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory storage, data is lost on restart")
		storage.Repos = inmemdb.NewRepositories(inmemdb.Open())

	default:
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		migrationsDir := cfg.Database.MigrationsDir
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			database.Close()
			lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
			return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
		}

		lgr.Info().Msg("Running database migrations...")
		migrator := appMigrations.NewMigrator(database.Pool, lgr)
		if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
			database.Close()
			lgr.Error().Err(err).Msg("Database migration error")
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		storage.Postgres = database
		storage.Repos = appRepos.NewRepositories(database)
	}

	if cfg.Seed.Enabled {
		err := seed.CreateDefaultData(ctx, storage.Repos, seed.Options{
			AdminName:     cfg.Seed.AdminName,
			AdminEmail:    cfg.Seed.AdminEmail,
			AdminPassword: cfg.Seed.AdminPassword,
			BcryptCost:    cfg.Auth.BcryptCost,
		}, lgr)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return storage, nil
}

// BuildDependencies initializes services, controllers and middleware on top
// of the given repositories.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	deps.AuthzService = appAuth.NewAuthorizationService()
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:  cfg.JWT.Secret,
		Expiration: cfg.JWTExpiration(),
		Issuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		repos.UserRepository,
		repos.DepartmentRepository,
		deps.JWTService,
		cfg.Auth.BcryptCost,
		lgr,
	)
	deps.DepartmentService = appServices.NewDepartmentService(repos.DepartmentRepository, repos.UserRepository, deps.AuthzService, lgr)
	deps.EmployeeService = appServices.NewEmployeeService(repos.EmployeeRepository, repos.DepartmentRepository, deps.AuthzService, lgr)
	deps.ContributionService = appServices.NewContributionService(repos.ContributionRepository, repos.DepartmentRepository, deps.AuthzService, lgr)
	deps.ExportService = appServices.NewExportService(repos.ContributionRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.AuthzService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.EmployeeController = appControllers.NewEmployeeController(deps.EmployeeService, lgr)
	deps.ContributionController = appControllers.NewContributionController(deps.ContributionService, deps.ExportService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.CORS(cfg.AllowedOrigins()),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, appRoutes.Controllers{
		Auth:         deps.AuthController,
		Department:   deps.DepartmentController,
		Employee:     deps.EmployeeController,
		Contribution: deps.ContributionController,
	}, deps.AuthMiddleware)

	return router
}

package bootstrap

import (
	"database/sql"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/velandev/website/docs" // generated swagger docs
	appControllers "github.com/velandev/website/internal/app/controllers"
	appRepos "github.com/velandev/website/internal/app/repositories"
	appRoutes "github.com/velandev/website/internal/app/routes"
	appServices "github.com/velandev/website/internal/app/services"
	"github.com/velandev/website/internal/config"
	"github.com/velandev/website/internal/db"
	appMiddleware "github.com/velandev/website/internal/middleware"
	"github.com/velandev/website/internal/pkg/auth"
	"github.com/velandev/website/internal/pkg/email"
	"github.com/velandev/website/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CareerService     appServices.CareerService
	ContactService    appServices.ContactService
	ChatService       appServices.ChatService
	ContentService    appServices.ContentService
	CareerController  *appControllers.CareerController
	AdminController   *appControllers.AdminController
	ContactController *appControllers.ContactController
	ChatController    *appControllers.ChatController
	ContentController *appControllers.ContentController
	AdminMiddleware   *appMiddleware.AdminMiddleware
	Repos             *appRepos.Repositories
	SessionGate       *auth.SessionGate
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the SQLite database and applies the schema.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*sql.DB, error) {
	lgr.Info().Str("path", cfg.Database.Path).Msg("Opening database...")
	database, err := db.NewSQLiteDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open database")
		return nil, err
	}

	lgr.Info().Msg("Database ready.")
	return database.DB, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *sql.DB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.SessionGate = auth.NewSessionGate(auth.SessionConfig{
		Password:     cfg.Admin.Password,
		SessionToken: cfg.Admin.SessionToken,
		MaxAge:       cfg.SessionMaxAge(),
	})
	if !deps.SessionGate.Configured() {
		lgr.Warn().Msg("Admin password or session token missing; admin endpoints will refuse access")
	} else {
		// The token is one shared secret for the process lifetime, so a
		// leaked cookie cannot be revoked short of rotating the secret.
		lgr.Warn().Msg("Admin sessions use a single shared token with no per-session revocation")
	}

	contactMailer := email.NewSMTPMailer(email.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		FromName: cfg.SMTP.FromName,
		To:       cfg.SMTP.ContactTo,
		UseTLS:   cfg.SMTP.UseTLS,
	}, lgr)

	careersTo := cfg.SMTP.CareersTo
	if careersTo == "" {
		careersTo = cfg.SMTP.ContactTo
	}
	careersMailer := email.NewSMTPMailer(email.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		FromName: cfg.SMTP.FromName + " Careers",
		To:       careersTo,
		UseTLS:   cfg.SMTP.UseTLS,
	}, lgr)

	deps.CareerService = appServices.NewCareerService(
		deps.Repos.JobRepository,
		deps.Repos.ApplicationRepository,
		careersMailer,
		lgr,
	)
	deps.ContactService = appServices.NewContactService(contactMailer, lgr)
	deps.ChatService = appServices.NewChatService()
	deps.ContentService = appServices.NewContentService()

	deps.AdminMiddleware = appMiddleware.NewAdminMiddleware(deps.SessionGate)

	secureCookie := strings.ToLower(cfg.Server.Mode) == "production"
	deps.CareerController = appControllers.NewCareerController(deps.CareerService)
	deps.AdminController = appControllers.NewAdminController(deps.SessionGate, secureCookie)
	deps.ContactController = appControllers.NewContactController(deps.ContactService)
	deps.ChatController = appControllers.NewChatController(deps.ChatService)
	deps.ContentController = appControllers.NewContentController(deps.ContentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.RequestID())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.CareerController,
		deps.AdminController,
		deps.ContactController,
		deps.ChatController,
		deps.ContentController,
		deps.AdminMiddleware,
	)

	return router
}

package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resumegen/internal/ats"
	"resumegen/internal/generations"
	"resumegen/internal/shared/config"
	"resumegen/internal/shared/server"
	"resumegen/internal/shared/storage/db"
	"resumegen/internal/shared/storage/object"
	localstore "resumegen/internal/shared/storage/object/local"
	s3store "resumegen/internal/shared/storage/object/s3"
	"resumegen/internal/webform"
)

// App holds the shared dependencies behind the HTTP surface and the CLI.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	GenerationsRepo    generations.Repo
	GenerationsService *generations.Service
	GenerationsHandler *generations.Handler
	WebFormHandler     *webform.Handler
	ATSHandler         *ats.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		GenerationsHandler: app.GenerationsHandler,
		WebFormHandler:     app.WebFormHandler,
		ATSHandler:         app.ATSHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: DATABASE_URL empty; using in-memory generation index")
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory generation index: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) {
	var repo generations.Repo
	if app.DB != nil {
		repo = &generations.PGRepo{DB: app.DB}
	} else {
		repo = generations.NewMemoryRepo()
	}

	svc := &generations.Service{Repo: repo, Store: app.Store}

	app.GenerationsRepo = repo
	app.GenerationsService = svc
	app.GenerationsHandler = generations.NewHandler(svc)
	app.WebFormHandler = webform.NewHandler(svc)
	app.ATSHandler = ats.NewHandler()
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

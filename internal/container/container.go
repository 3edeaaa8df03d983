package container

import (
	"context"
	"fmt"
	"log"

	"showcase/adapters/memory"
	"showcase/adapters/postgres"
	"showcase/adapters/sentiment"
	"showcase/app"
	"showcase/internal/config"
	"showcase/internal/errors"
	"showcase/internal/migration"
	"showcase/ports"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure; nil when the activity log lives in memory
	DB *sqlx.DB

	// Repositories (data access layer)
	ActivityRepo ports.ActivityRepository

	// Services
	Showcase *app.ShowcaseService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{
		Config: cfg,
	}

	return c, nil
}

// Init opens the activity log, PostgreSQL when DATABASE_URL is set and an
// in-memory ring otherwise, then builds the services
func (c *Container) Init(ctx context.Context) error {
	if c.Config.Database.URL != "" {
		if err := c.initDatabase(ctx); err != nil {
			return err
		}
		c.ActivityRepo = postgres.NewActivityRepository(c.DB)
	} else {
		log.Printf("[Container] No DATABASE_URL configured, keeping the last %d activity entries in memory",
			c.Config.Activity.Capacity)
		repo, err := memory.NewActivityRepository(c.Config.Activity.Capacity)
		if err != nil {
			return errors.Wrap(err, "failed to create activity log")
		}
		c.ActivityRepo = repo
	}

	c.Showcase = app.NewShowcaseService(c.Config, sentiment.NewAnalyzer(), c.ActivityRepo)
	return nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	db, err := sqlx.ConnectContext(ctx, "postgres", c.Config.Database.URL)
	if err != nil {
		return errors.Wrap(errors.DatabaseError(err.Error()), "failed to connect to database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(ctx, db); err != nil {
		db.Close()
		return errors.Wrap(err, "database migration failed")
	}

	log.Printf("[Container] ✅ Database ready (schema %s)", migrator.Version())
	c.DB = db
	return nil
}

// Shutdown releases resources held by the container
func (c *Container) Shutdown(ctx context.Context) error {
	// Close database connection
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

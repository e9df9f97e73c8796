// Package bootstrap establishes process-level runtime dependencies.
package bootstrap

import (
	"fmt"

	"quill/internal/cache"
	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemoData populates the database with generated demo content.
	// Intended for development environments only.
	SeedDemoData bool
	NumUsers     int
	NumPosts     int
}

// InitRuntime connects to the database and Redis and optionally seeds demo
// data. The Redis client is nil when the server is unreachable; callers must
// treat it as optional.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData {
		if err := seed.Seed(db, seed.Options{
			NumUsers:    opts.NumUsers,
			NumPosts:    opts.NumPosts,
			ShouldClean: false,
		}); err != nil {
			return nil, nil, fmt.Errorf("demo data seeding failed: %w", err)
		}
	}

	return db, r, nil
}

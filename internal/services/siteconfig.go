package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"omufusion/internal/models"
)

// siteConfigTTL bounds how stale a cached site configuration may be served.
const siteConfigTTL = 5 * time.Minute

// SiteConfigService reads and upserts the singleton site configuration
// document, serving reads through a fixed-TTL cache.
type SiteConfigService struct {
	db *mongo.Database

	mu        sync.Mutex
	cached    *models.SiteConfig
	expiresAt time.Time
}

func NewSiteConfigService(db *mongo.Database) *SiteConfigService {
	return &SiteConfigService{db: db}
}

func (s *SiteConfigService) col() *mongo.Collection {
	return s.db.Collection("site_config")
}

// Get returns the site configuration, from cache when fresh. A missing
// document yields the zero config with defaults rather than an error.
func (s *SiteConfigService) Get(ctx context.Context) (models.SiteConfig, error) {
	s.mu.Lock()
	if s.cached != nil && time.Now().Before(s.expiresAt) {
		cfg := *s.cached
		s.mu.Unlock()
		return cfg, nil
	}
	s.mu.Unlock()

	var cfg models.SiteConfig
	err := s.col().FindOne(ctx, bson.M{"_id": models.SiteConfigID}).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		cfg = models.SiteConfig{ID: models.SiteConfigID, SiteName: "OMU Fusion"}
		err = nil
	}
	if err != nil {
		logPersistenceError("SITECONFIG", err)
		if fallbackToEmpty(err) {
			return models.SiteConfig{ID: models.SiteConfigID}, nil
		}
		return models.SiteConfig{}, fmt.Errorf("site config could not be loaded: %w", err)
	}

	s.mu.Lock()
	s.cached = &cfg
	s.expiresAt = time.Now().Add(siteConfigTTL)
	s.mu.Unlock()

	return cfg, nil
}

// Upsert replaces the singleton document whole and drops the cache so the
// next read sees the new values immediately.
func (s *SiteConfigService) Upsert(ctx context.Context, cfg models.SiteConfig) error {
	cfg.ID = models.SiteConfigID
	cfg.SiteName = strings.TrimSpace(cfg.SiteName)
	if cfg.SiteName == "" {
		return fmt.Errorf("siteName is required")
	}
	cfg.UpdatedAt = time.Now()

	_, err := s.col().ReplaceOne(ctx,
		bson.M{"_id": models.SiteConfigID},
		cfg,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		logPersistenceError("SITECONFIG", err)
		return fmt.Errorf("site config could not be saved: %w", err)
	}

	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
	return nil
}

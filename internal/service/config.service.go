package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"reviewhub/internal/cache"
	"reviewhub/internal/domain"
)

type CategoryStore interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	SaveCategories(ctx context.Context, cats []domain.Category, version string) error
}

// ConfigService serves the review category configuration with a Redis
// cache in front of the store. Missing config is seeded from the
// compiled-in defaults so a fresh deployment works without an admin
// step.
type ConfigService struct {
	store CategoryStore
	cache *cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

const (
	configNamespace = "config"
	categoriesKey   = "categories"
	configVersion   = "1.0"
)

func NewConfigService(store CategoryStore, c *cache.Cache, ttl time.Duration, log *zap.Logger) *ConfigService {
	return &ConfigService{store: store, cache: c, ttl: ttl, log: log}
}

func (s *ConfigService) Categories(ctx context.Context) ([]domain.Category, error) {
	if raw, err := s.cache.Get(ctx, configNamespace, categoriesKey); err == nil && raw != "" {
		var cats []domain.Category
		if err := json.Unmarshal([]byte(raw), &cats); err == nil {
			return cats, nil
		}
	}

	cats, err := s.store.GetCategories(ctx)
	if err != nil {
		s.log.Warn("category config load failed, serving defaults", zap.Error(err))
		return DefaultCategories(), nil
	}
	if cats == nil {
		cats = DefaultCategories()
		if err := s.store.SaveCategories(ctx, cats, configVersion); err != nil {
			s.log.Warn("category config seed failed", zap.Error(err))
		}
	}

	for i := range cats {
		cats[i].Label = displayLabel(cats[i])
	}

	if raw, err := json.Marshal(cats); err == nil {
		if err := s.cache.Set(ctx, configNamespace, categoriesKey, raw, s.ttl); err != nil {
			s.log.Warn("category config cache write failed", zap.Error(err))
		}
	}
	return cats, nil
}

// displayLabel falls back to a title-cased form of the id when a
// stored category carries no label.
func displayLabel(c domain.Category) string {
	if c.Label != "" {
		return c.Label
	}
	return cases.Title(language.English).String(strings.ReplaceAll(c.ID, "_", " "))
}

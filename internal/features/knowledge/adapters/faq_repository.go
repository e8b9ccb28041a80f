package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bowlingnoi/line-chatbot/internal/core/cache"
	"github.com/bowlingnoi/line-chatbot/internal/core/logger"

	"go.uber.org/zap"
)

// faqCacheKey is the shared-cache key for the FAQ document.
const faqCacheKey = "faq:content"

// faqCacheTTL bounds how stale the shared cache may get.
const faqCacheTTL = 5 * time.Minute

// FAQRepository loads the FAQ markdown document from disk, caching it
// through the cache port. A nil cache disables sharing and every call
// reads the file. The last successful read is kept in-process and served
// when the file becomes unreadable.
type FAQRepository struct {
	path   string
	cache  cache.Cache
	logger *zap.Logger

	mu       sync.RWMutex
	lastGood string
}

// NewFAQRepository creates a repository for the given document path.
func NewFAQRepository(path string, c cache.Cache) *FAQRepository {
	return &FAQRepository{
		path:   path,
		cache:  c,
		logger: logger.Get(),
	}
}

// Content returns the FAQ document text, preferring the shared cache.
func (r *FAQRepository) Content(ctx context.Context) (string, error) {
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, faqCacheKey)
		if err == nil {
			return string(cached), nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Warn("FAQ cache read failed", zap.Error(err))
		}
	}

	content, err := os.ReadFile(r.path)
	if err != nil {
		r.mu.RLock()
		stale := r.lastGood
		r.mu.RUnlock()
		if stale != "" {
			r.logger.Warn("Serving stale FAQ content after read failure",
				zap.String("path", r.path),
				zap.Error(err),
			)
			return stale, nil
		}
		return "", fmt.Errorf("failed to load FAQ document: %w", err)
	}

	r.mu.Lock()
	r.lastGood = string(content)
	r.mu.Unlock()

	if r.cache != nil {
		if err := r.cache.Set(ctx, faqCacheKey, content, faqCacheTTL); err != nil {
			r.logger.Warn("FAQ cache write failed", zap.Error(err))
		}
	}

	r.logger.Debug("FAQ document loaded",
		zap.String("path", r.path),
		zap.Int("bytes", len(content)),
	)
	return string(content), nil
}

// Invalidate drops the shared cache entry, forcing a fresh read.
func (r *FAQRepository) Invalidate(ctx context.Context) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.Delete(ctx, faqCacheKey)
}

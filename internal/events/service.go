package events

import (
	"context"
	"fmt"
	"githubActivity/internal/logger"
	"githubActivity/internal/model"
	"io"
	"time"

	"go.uber.org/zap"
)

// Recorder persists the summaries printed for a lookup.
type Recorder interface {
	Save(username string, summaries []model.Summary, at time.Time) error
}

type Service interface {
	Lookup(ctx context.Context, w io.Writer, username string) error
}

type service struct {
	fetcher  Fetcher
	cache    Cache
	cacheTTL time.Duration
	recorder Recorder
	now      func() time.Time
}

type Option func(*service)

// WithCache serves repeated lookups of the same user from c for ttl.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *service) { s.recorder = r }
}

func NewService(f Fetcher, opts ...Option) Service {
	s := &service{fetcher: f, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup runs fetch, classify and format for one username and writes the
// resulting lines to w.
func (s *service) Lookup(ctx context.Context, w io.Writer, username string) error {
	body, cached := s.cached(ctx, username)
	if !cached {
		res, err := s.fetcher.Fetch(ctx, username)
		if err != nil {
			return err
		}
		class, err := Classify(res.StatusCode)
		if err != nil {
			return err
		}
		if class == ClassWarning {
			fmt.Fprintf(w, "Warning: Received HTTP %d\n", res.StatusCode)
			return nil
		}
		body = res.Body
	}

	summaries, err := Format(w, username, body)
	if err != nil {
		return err
	}

	if !cached && s.cache != nil {
		if err := s.cache.Set(ctx, username, body, s.cacheTTL); err != nil {
			logger.Lg.Warn("warn: cache store failed", zap.String("username", username), zap.Error(err))
		}
	}
	if s.recorder != nil && len(summaries) > 0 {
		if err := s.recorder.Save(username, summaries, s.now()); err != nil {
			logger.Lg.Warn("warn: history store failed", zap.String("username", username), zap.Error(err))
		}
	}
	return nil
}

func (s *service) cached(ctx context.Context, username string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	body, hit, err := s.cache.Get(ctx, username)
	if err != nil {
		logger.Lg.Warn("warn: cache lookup failed", zap.String("username", username), zap.Error(err))
		return nil, false
	}
	if hit {
		logger.Lg.Debug("cache_hit", zap.String("username", username))
	}
	return body, hit
}

package settingsservice

import (
	"context"
	"errors"
	"sync"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings *domain.Settings) error
}

// Service keeps the singleton settings row behind an in-memory cache with
// explicit invalidation on write.
type Service struct {
	repo Repo

	mu     sync.RWMutex
	cached *domain.Settings
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var ErrNoAPITokens = errors.New("no api tokens configured")

func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		zap.L().Error("failed to get settings", zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	s.cached = settings
	s.mu.Unlock()
	return settings, nil
}

func (s *Service) Update(ctx context.Context, settings *domain.Settings) error {
	if err := s.repo.Update(ctx, settings); err != nil {
		zap.L().Error("failed to update settings", zap.Error(err))
		return err
	}
	s.Invalidate()
	return nil
}

func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// TakeToken picks the least-used FX API token and persists the bumped
// usage counter.
func (s *Service) TakeToken(ctx context.Context) (string, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	if len(settings.APITokens) == 0 {
		return "", ErrNoAPITokens
	}

	least := 0
	for i, token := range settings.APITokens {
		if token.Uses < settings.APITokens[least].Uses {
			least = i
		}
	}

	// The cached settings are shared with concurrent Get callers, so bump
	// the counter on a private copy.
	updated := *settings
	updated.APITokens = make([]domain.APIToken, len(settings.APITokens))
	copy(updated.APITokens, settings.APITokens)
	updated.APITokens[least].Uses++

	if err := s.repo.Update(ctx, &updated); err != nil {
		zap.L().Error("failed to persist token usage", zap.Error(err))
		return "", err
	}
	s.Invalidate()
	return updated.APITokens[least].Token, nil
}

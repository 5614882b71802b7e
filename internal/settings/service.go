package settings

import (
	"context"
	"sync"

	"github.com/versepath/scripture-companion/internal/host"
)

// Service is the settings facade. UpdateSettings is a read-merge-write:
// fetch the full current snapshot, overlay the provided fields, persist
// the merged whole. It is not transactionally isolated; two overlapping
// updates race and the last write wins, which is acceptable for a
// single-user desktop context.
type Service interface {
	GetSettings(ctx context.Context) (Settings, error)
	UpdateSettings(ctx context.Context, update Update) error
}

type remoteService struct {
	channel host.Channel
}

func NewRemoteService(channel host.Channel) Service {
	return &remoteService{channel: channel}
}

func (s *remoteService) GetSettings(ctx context.Context) (Settings, error) {
	var current Settings
	if err := s.channel.Invoke(ctx, "get_settings", nil, &current); err != nil {
		return Settings{}, err
	}
	return current, nil
}

func (s *remoteService) UpdateSettings(ctx context.Context, update Update) error {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return err
	}
	merged := update.Apply(current)
	return s.channel.Invoke(ctx, "update_settings", map[string]any{"settings": merged}, nil)
}

// mockService keeps an in-memory snapshot seeded with defaults.
type mockService struct {
	mu       sync.Mutex
	snapshot Settings
}

func NewMockService() Service {
	return &mockService{snapshot: DefaultSettings()}
}

func (s *mockService) GetSettings(ctx context.Context) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot, nil
}

func (s *mockService) UpdateSettings(ctx context.Context, update Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = update.Apply(s.snapshot)
	return nil
}

// dispatchService re-selects live or mock on every call.
type dispatchService struct {
	live   Service
	mock   Service
	detect func() bool
}

func NewService(live, mock Service, detect func() bool) Service {
	if detect == nil {
		detect = host.Available
	}
	return &dispatchService{live: live, mock: mock, detect: detect}
}

func (s *dispatchService) backend() Service {
	if s.detect() && s.live != nil {
		return s.live
	}
	return s.mock
}

func (s *dispatchService) GetSettings(ctx context.Context) (Settings, error) {
	return s.backend().GetSettings(ctx)
}

func (s *dispatchService) UpdateSettings(ctx context.Context, update Update) error {
	return s.backend().UpdateSettings(ctx, update)
}

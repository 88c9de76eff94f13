package external

import (
	"fmt"

	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type SessionStoreFactory struct{}

func NewSessionStoreFactory() *SessionStoreFactory {
	return &SessionStoreFactory{}
}

func (f *SessionStoreFactory) CreateSessionStore(cfg *config.SessionConfig) (ports.SessionStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("session config cannot be nil", nil)
	}

	switch cfg.Store {
	case config.SessionStoreTypeMemory:
		return NewMemorySessionStore(), nil
	case config.SessionStoreTypeRedis:
		store, err := NewRedisSessionStore(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported session store: %s", cfg.Store.String()), nil)
	}
}

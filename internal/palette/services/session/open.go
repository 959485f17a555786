package session

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"nathanbeddoewebdev/hue/internal/config"
	"nathanbeddoewebdev/hue/internal/palette/engine"
	"nathanbeddoewebdev/hue/internal/palette/storage"
)

// OpenDefault builds and initializes a session using the configured storage
// backend in the default data directory.
func OpenDefault(logger *slog.Logger) (*Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("session: failed to load config: %w", err)
	}

	dir, err := storage.DefaultDir()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	slot, err := storage.Open(cfg.Backend(), dir)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	seed := uint64(time.Now().UnixNano())
	eng := engine.New(engine.WithRand(rand.New(rand.NewPCG(seed, seed>>1|1))))

	s := New(eng, storage.NewStore(slot), logger)
	s.Init()
	return s, nil
}

// WithDefault opens the default session, runs fn, and closes the session
// afterwards. A close failure is returned only when fn succeeded.
func WithDefault(logger *slog.Logger, fn func(s *Session) error) (err error) {
	s, err := OpenDefault(logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("session: failed to close storage: %w", cerr)
		}
	}()
	return fn(s)
}

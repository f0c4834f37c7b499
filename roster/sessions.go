package roster

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/simplelru"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/config"
	"github.com/tidepool-org/roster/errors"
	"github.com/tidepool-org/roster/patients"
)

var ErrSessionNotFound = fmt.Errorf("session %w", errors.NotFound)

const DefaultSessionCacheSize = 1000

// Sessions keeps the most recently used sessions. The least recently used
// session is dropped once the cache is full.
type Sessions struct {
	catalog *catalog.Catalog
	repo    patients.Repository
	logger  *zap.SugaredLogger

	mu  *sync.Mutex
	lru *simplelru.LRU
}

type SessionsParams struct {
	fx.In

	Config     *config.Config
	Catalog    *catalog.Catalog
	Repository patients.Repository
	Logger     *zap.SugaredLogger
}

func NewSessions(p SessionsParams) (*Sessions, error) {
	size := DefaultSessionCacheSize
	if p.Config != nil && p.Config.SessionCacheSize > 0 {
		size = p.Config.SessionCacheSize
	}

	logger := p.Logger
	onEvict := func(key interface{}, _ interface{}) {
		logger.Debugw("evicted session", "sessionId", key)
	}
	lru, err := simplelru.NewLRU(size, onEvict)
	if err != nil {
		return nil, err
	}

	return &Sessions{
		catalog: p.Catalog,
		repo:    p.Repository,
		logger:  logger,
		mu:      &sync.Mutex{},
		lru:     lru,
	}, nil
}

// Create starts a session over the current contents of the repository.
func (s *Sessions) Create(ctx context.Context) (*Session, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load patients: %w", err)
	}

	session := NewSession(uuid.NewString(), list, s.catalog, s.repo, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lru.Add(session.Id(), session)

	s.logger.Infow("created session", "sessionId", session.Id(), "patients", len(list))
	return session, nil
}

func (s *Sessions) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.lru.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return value.(*Session), nil
}

func (s *Sessions) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lru.Remove(id)
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lru.Len()
}

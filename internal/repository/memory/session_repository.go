package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// PracticeSession tracks which questions a client has already been
// served, so random draws avoid repeats until the pool is exhausted.
type PracticeSession struct {
	ID       string
	AskedIDs []string
}

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions idle for an hour are forgotten; expired items are purged
	// every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *PracticeSession) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*PracticeSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*PracticeSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

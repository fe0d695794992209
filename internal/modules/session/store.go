package session

import (
	"time"

	"github.com/reusedev/tutor-voice/internal/modules/cache"
)

// Store keeps sessions in memory; an idle session expires after ttl.
type Store struct {
	sessions *cache.Manager[*Session]
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: cache.NewManager[*Session](ttl),
	}
}

func (s *Store) Put(session *Session) error {
	return s.sessions.Set(session.ID, session)
}

// Get refreshes the expiration of the session it returns. A nil session means none.
func (s *Store) Get(id string) (*Session, error) {
	session, err := s.sessions.GetValue(id)
	if err != nil || session == nil {
		return nil, err
	}
	return session, s.sessions.Set(id, session)
}

func (s *Store) Delete(id string) error {
	return s.sessions.Delete(id)
}

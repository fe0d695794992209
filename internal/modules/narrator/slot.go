package narrator

import (
	"sync"

	"github.com/reusedev/tutor-voice/internal/modules/audio"
)

// Slot holds the current audio handle. Set overwrites unconditionally, so
// with concurrent speech requests the last one to complete wins.
type Slot struct {
	mu       sync.RWMutex
	clip     *audio.Clip
	speaking bool
}

func (s *Slot) Set(clip *audio.Clip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clip = clip
	s.speaking = clip != nil
}

func (s *Slot) Current() *audio.Clip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clip
}

func (s *Slot) Speaking() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.speaking
}

// Stop clears the slot. A request still in flight will refill it when it completes.
func (s *Slot) Stop() {
	s.Set(nil)
}

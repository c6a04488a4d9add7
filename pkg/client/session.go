package client

import "sync"

// Session holds the client-local auth context: token, business id and
// business type. It is written only after a successful login, registration or
// onboarding call and cleared on logout.
type Session interface {
	SetAuth(token string, businessID int64, businessType string)
	Token() string
	BusinessID() int64
	BusinessType() string
	Clear()
}

// MemorySession is the default in-process Session.
type MemorySession struct {
	mu           sync.RWMutex
	token        string
	businessID   int64
	businessType string
}

// NewMemorySession creates an empty in-memory session.
func NewMemorySession() *MemorySession { return &MemorySession{} }

func (s *MemorySession) SetAuth(token string, businessID int64, businessType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.businessID = businessID
	s.businessType = businessType
}

func (s *MemorySession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemorySession) BusinessID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.businessID
}

func (s *MemorySession) BusinessType() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.businessType
}

func (s *MemorySession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.businessID = 0
	s.businessType = ""
}

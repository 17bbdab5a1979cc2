package services

import (
	"errors"
	"sync"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Draft is the ephemeral working copy of an add-or-edit interaction. LineID 0
// means a new-item draft; otherwise the draft edits that committed line.
type Draft struct {
	Item       entity.MenuItem
	LineID     uint
	Qty        int
	Note       string
	Selections entity.SelectionSet
}

// Session is one POS terminal interaction: a cart, at most one draft, and the
// scalar settings the operator picked. Each session has its own lock so its
// operations run one at a time even though handlers are concurrent.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Cart  *repository.CartRepository `json:"-"`
	Draft *Draft                     `json:"-"`

	ServiceMode     entity.ServiceMode `json:"serviceMode"`
	Discount        int64              `json:"discount"`
	TableID         uint               `json:"tableId"`
	PaymentMethodID uint               `json:"paymentMethodId"`

	mu sync.Mutex
}

// SessionManager owns every live session. OnChange, when set, is invoked
// after a mutation so the totals feed can push an update.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	OnChange func(sessionID string)
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

func (m *SessionManager) Create() *Session {
	s := &Session{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now(),
		Cart:        repository.NewCartRepository(),
		ServiceMode: entity.ServiceDineIn,
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

func (m *SessionManager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// With runs fn with the session locked. Errors from fn pass through.
func (m *SessionManager) With(id string, fn func(*Session) error) error {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// Changed signals listeners that a session's cart or settings moved. Called
// after With returns so the session lock is already released.
func (m *SessionManager) Changed(id string) {
	if m.OnChange != nil {
		m.OnChange(id)
	}
}

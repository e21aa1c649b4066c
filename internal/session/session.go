package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/2beens/fitcoach/internal/fitness"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("session not found")

// LastPlan references the most recently generated plan of a session.
type LastPlan struct {
	Goal     string
	Metrics  string
	Text     string
	ReportID string
	Failed   bool
}

type Session struct {
	ID        string
	CreatedAt time.Time
	Store     *fitness.Store

	mutex    sync.Mutex
	lastSeen time.Time
	lastPlan *LastPlan
}

func (s *Session) LastSeen() time.Time {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mutex.Lock()
	s.lastSeen = now
	s.mutex.Unlock()
}

func (s *Session) SetLastPlan(p LastPlan) {
	s.mutex.Lock()
	s.lastPlan = &p
	s.mutex.Unlock()
}

func (s *Session) LastPlan() (LastPlan, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.lastPlan == nil {
		return LastPlan{}, false
	}
	return *s.lastPlan, true
}

// Manager owns all live sessions. Sessions idle for longer than ttl are discarded
// by ScanAndClean, which Run calls periodically.
type Manager struct {
	mutex    sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time

	metricsManager *metrics.Manager
}

func NewManager(ttl time.Duration, metricsManager *metrics.Manager) *Manager {
	return &Manager{
		sessions:       make(map[string]*Session),
		ttl:            ttl,
		now:            time.Now,
		metricsManager: metricsManager,
	}
}

func (m *Manager) Start() *Session {
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Store:     fitness.NewStore(),
		lastSeen:  now,
	}

	m.mutex.Lock()
	m.sessions[s.ID] = s
	count := len(m.sessions)
	m.mutex.Unlock()

	m.setGauge(count)
	log.Debugf("session [%s] started", s.ID)
	return s
}

// Get returns a live session and refreshes its idle timer.
func (m *Manager) Get(id string) (*Session, error) {
	m.mutex.RLock()
	s, ok := m.sessions[id]
	m.mutex.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	now := m.now()
	if now.Sub(s.LastSeen()) > m.ttl {
		m.End(id)
		return nil, ErrNotFound
	}

	s.touch(now)
	return s, nil
}

// End discards the session together with its metrics store. Reports whether it existed.
func (m *Manager) End(id string) bool {
	m.mutex.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	count := len(m.sessions)
	m.mutex.Unlock()

	if ok {
		m.setGauge(count)
		log.Debugf("session [%s] ended", id)
	}
	return ok
}

func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.sessions)
}

// ScanAndClean removes the sessions idle since before now - ttl and returns how many were removed.
func (m *Manager) ScanAndClean(now time.Time) int {
	m.mutex.Lock()
	removed := 0
	for id, s := range m.sessions {
		if now.Sub(s.LastSeen()) > m.ttl {
			delete(m.sessions, id)
			removed++
		}
	}
	count := len(m.sessions)
	m.mutex.Unlock()

	m.setGauge(count)
	return removed
}

// Run cleans idle sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugln("session cleanup loop stopped")
			return
		case <-ticker.C:
			if removed := m.ScanAndClean(m.now()); removed > 0 {
				log.Debugf("session cleanup: removed %d idle sessions", removed)
			}
		}
	}
}

func (m *Manager) setGauge(count int) {
	if m.metricsManager != nil {
		m.metricsManager.GaugeActiveSessions.Set(float64(count))
	}
}

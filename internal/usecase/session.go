package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"little-lemon/internal/domain/availability"
	"little-lemon/internal/domain/booking"
	"little-lemon/internal/navigation"
	"little-lemon/internal/pkg/clock"
	"little-lemon/internal/pkg/config"
	"little-lemon/internal/pkg/errs"

	"github.com/google/uuid"
)

// Session is everything one visitor owns: where they are, which times they
// are being offered and the booking they are filling in.
type Session struct {
	ID     uuid.UUID
	Router *navigation.Router
	Times  *booking.Times
	Form   *booking.Form

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(s.LastSeen()) > ttl
}

// SessionStore keeps visitor sessions in memory. Idle sessions are dropped by Sweep.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	provider  availability.Provider
	submitter booking.Submitter
	clock     clock.Clock
	logger    *slog.Logger

	ttl                 time.Duration
	location            *time.Location
	submitTimeout       time.Duration
	availabilityTimeout time.Duration
}

func NewSessionStore(cfg config.Config, provider availability.Provider, submitter booking.Submitter, clk clock.Clock, logger *slog.Logger) *SessionStore {
	location, err := cfg.Booking.LoadLocation()
	if err != nil {
		logger.Warn("booking time zone not found, using UTC", slog.String("error", err.Error()))
	}
	return &SessionStore{
		sessions:            make(map[uuid.UUID]*Session),
		provider:            provider,
		submitter:           submitter,
		clock:               clk,
		logger:              logger,
		ttl:                 cfg.Session.TTL,
		location:            location,
		submitTimeout:       cfg.Booking.SubmitTimeout,
		availabilityTimeout: cfg.Booking.AvailabilityTimeout,
	}
}

// Get returns a live session and refreshes its idle timer.
func (s *SessionStore) Get(id uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	now := s.clock.Now()
	if sess.expired(now, s.ttl) {
		s.remove(id)
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

// Create starts a session on the home page with today's times already loaded.
func (s *SessionStore) Create(ctx context.Context) (*Session, error) {
	router := navigation.NewRouter(navigation.RouteHome)

	times, err := booking.NewTimes(ctx, s.provider, clock.Today(s.clock, s.location),
		booking.WithFetchTimeout(s.availabilityTimeout))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create session"), errs.ErrSessionUnavailable)
	}

	sess := &Session{
		ID:       uuid.New(),
		Router:   router,
		Times:    times,
		Form:     booking.NewForm(times, s.submitter, router, booking.WithSubmitTimeout(s.submitTimeout)),
		lastSeen: s.clock.Now(),
	}

	sessionID := sess.ID.String()
	router.Subscribe(func(path string) {
		s.logger.Debug("route changed", slog.String("session_id", sessionID), slog.String("path", path))
	})

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Debug("session created", slog.String("session_id", sess.ID.String()))
	return sess, nil
}

// GetOrCreate resolves the visitor's session, starting a fresh one when the id
// is unknown or expired. created reports whether a new cookie must be issued.
func (s *SessionStore) GetOrCreate(ctx context.Context, id uuid.UUID, known bool) (sess *Session, created bool, err error) {
	if known {
		if sess, ok := s.Get(id); ok {
			return sess, false, nil
		}
	}
	sess, err = s.Create(ctx)
	if err != nil {
		return nil, false, err
	}
	return sess, true, nil
}

// Sweep drops idle sessions and reports how many were removed.
func (s *SessionStore) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.expired(now, s.ttl) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// RunJanitor sweeps every interval until ctx is done.
func (s *SessionStore) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Info("expired sessions removed", slog.Int("removed", n), slog.Int("active", s.Len()))
			}
		}
	}
}

func (s *SessionStore) remove(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

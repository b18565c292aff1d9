package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/upliftapp/uplift/internal/model"
	"github.com/upliftapp/uplift/internal/repository"
)

const sessionCookieName = "session_id"

// SessionService maps the opaque session cookie to server-side session rows.
// Cookies carry nothing but the session id; user binding and flash notices
// live in the store.
type SessionService struct {
	sessionRepository repository.SessionRepository
	isProduction      bool
}

func NewSessionService(sessionRepository repository.SessionRepository, isProduction bool) *SessionService {
	return &SessionService{
		sessionRepository: sessionRepository,
		isProduction:      isProduction,
	}
}

// Current resolves the request's session cookie to its session row. Returns
// nil without error when there is no cookie or the row is gone.
func (s *SessionService) Current(r *http.Request) (*model.Session, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	session, err := s.sessionRepository.ByID(cookie.Value)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return session, nil
}

// Start returns the request's session, creating an anonymous one if needed.
func (s *SessionService) Start(w http.ResponseWriter, r *http.Request) (*model.Session, error) {
	session, err := s.Current(r)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	session = &model.Session{
		ID:        uuid.New().String(),
		Flashes:   "[]",
		CreatedAt: time.Now(),
	}
	err = s.sessionRepository.Create(session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.setCookie(w, session.ID)
	return session, nil
}

// Renew discards any prior session state and issues a fresh session bound to
// userID. A new id is minted on every renewal, so a pre-login session id is
// never promoted to an authenticated one.
func (s *SessionService) Renew(w http.ResponseWriter, r *http.Request, userID string) (*model.Session, error) {
	err := s.Clear(w, r)
	if err != nil {
		return nil, err
	}

	session := &model.Session{
		ID:        uuid.New().String(),
		UserID:    &userID,
		Flashes:   "[]",
		CreatedAt: time.Now(),
	}
	err = s.sessionRepository.Create(session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.setCookie(w, session.ID)
	return session, nil
}

// Clear deletes the session row and expires the cookie. Idempotent: clearing
// an absent session succeeds.
func (s *SessionService) Clear(w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(sessionCookieName)
	if err == nil && cookie.Value != "" {
		err = s.sessionRepository.Delete(cookie.Value)
		if err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Flash appends a notice to the session for display on the next rendered page.
func (s *SessionService) Flash(session *model.Session, message string) error {
	if session == nil {
		return nil
	}

	flashes, err := decodeFlashes(session.Flashes)
	if err != nil {
		flashes = nil
	}
	flashes = append(flashes, message)

	encoded, err := json.Marshal(flashes)
	if err != nil {
		return fmt.Errorf("failed to encode flashes: %w", err)
	}

	session.Flashes = string(encoded)
	return s.sessionRepository.SetFlashes(session.ID, session.Flashes)
}

// PopFlashes drains and returns the session's pending notices.
func (s *SessionService) PopFlashes(session *model.Session) ([]string, error) {
	if session == nil {
		return nil, nil
	}

	flashes, err := decodeFlashes(session.Flashes)
	if err != nil {
		return nil, fmt.Errorf("failed to decode flashes: %w", err)
	}
	if len(flashes) == 0 {
		return nil, nil
	}

	session.Flashes = "[]"
	err = s.sessionRepository.SetFlashes(session.ID, session.Flashes)
	if err != nil {
		return nil, err
	}

	return flashes, nil
}

func decodeFlashes(encoded string) ([]string, error) {
	if encoded == "" {
		return nil, nil
	}
	var flashes []string
	err := json.Unmarshal([]byte(encoded), &flashes)
	return flashes, err
}

// Session cookie carries no Max-Age so it expires with the browser session.
func (s *SessionService) setCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

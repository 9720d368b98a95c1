package main

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionCookie = "campuspoint_session"
	sessionTTL    = 24 * time.Hour
)

// operatorAuth guards the admin actions of this server with a shared
// passcode. Controller.Perform still checks the contract owner behind it.
// With no passcode configured every request passes.
type operatorAuth struct {
	hash []byte
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]time.Time
}

func newOperatorAuth(passcodeHash string) (*operatorAuth, error) {
	a := &operatorAuth{now: time.Now, sessions: make(map[string]time.Time)}
	if passcodeHash == "" {
		return a, nil
	}
	if _, err := bcrypt.Cost([]byte(passcodeHash)); err != nil {
		return nil, fmt.Errorf("passcode_hash: %w", err)
	}
	a.hash = []byte(passcodeHash)
	return a, nil
}

func (a *operatorAuth) enabled() bool {
	return len(a.hash) > 0
}

// login checks passcode and opens a session, returning its token.
func (a *operatorAuth) login(passcode string) (string, bool) {
	if !a.enabled() {
		return "", false
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(passcode)); err != nil {
		return "", false
	}
	token := uuid.NewString()
	a.mu.Lock()
	a.sessions[token] = a.now().Add(sessionTTL)
	a.mu.Unlock()
	return token, true
}

func (a *operatorAuth) logout(token string) {
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()
}

func (a *operatorAuth) allowed(r *http.Request) bool {
	if !a.enabled() {
		return true
	}
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	expires, ok := a.sessions[cookie.Value]
	if !ok {
		return false
	}
	if a.now().After(expires) {
		delete(a.sessions, cookie.Value)
		return false
	}
	return true
}

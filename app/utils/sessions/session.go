// Package sessions wraps the gorilla cookie store: it tracks the signed-in
// user and carries the anonymous visitor's cart payload until sign-in promotes
// it to the remote store.
package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "foodhub-session"

	userIDSessionKey = "userID"
	cartSessionKey   = "cart"
)

type SessionStore interface {
	GetUserID(r *http.Request) string
	SetUserID(w http.ResponseWriter, r *http.Request, userID string) error
	ClearUserID(w http.ResponseWriter, r *http.Request) error

	CartStore(w http.ResponseWriter, r *http.Request) *LocalCartStore
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		// A stale or tampered cookie decodes to a fresh session.
		log.Printf("CookieSessionStore.getSession: %v", err)
	}
	return session
}

func (c *CookieSessionStore) GetUserID(r *http.Request) string {
	session := c.getSession(r)
	userID, ok := session.Values[userIDSessionKey].(string)
	if !ok {
		return ""
	}
	return userID
}

func (c *CookieSessionStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	session := c.getSession(r)
	session.Values[userIDSessionKey] = userID
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearUserID(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	delete(session.Values, userIDSessionKey)
	return session.Save(r, w)
}

// CartStore adapts this request's session into the cart service's local store.
func (c *CookieSessionStore) CartStore(w http.ResponseWriter, r *http.Request) *LocalCartStore {
	return &LocalCartStore{store: c, w: w, r: r}
}

// LocalCartStore keeps the anonymous cart's encoded lines in the session
// cookie, the counterpart of the signed-in user's cart record row.
type LocalCartStore struct {
	store *CookieSessionStore
	w     http.ResponseWriter
	r     *http.Request
}

func (l *LocalCartStore) Load() ([]byte, error) {
	session := l.store.getSession(l.r)
	data, ok := session.Values[cartSessionKey].([]byte)
	if !ok {
		return nil, nil
	}
	return data, nil
}

func (l *LocalCartStore) Save(data []byte) error {
	session := l.store.getSession(l.r)
	session.Values[cartSessionKey] = data
	return session.Save(l.r, l.w)
}

func (l *LocalCartStore) Clear() error {
	session := l.store.getSession(l.r)
	if _, ok := session.Values[cartSessionKey]; !ok {
		return nil
	}
	delete(session.Values, cartSessionKey)
	return session.Save(l.r, l.w)
}

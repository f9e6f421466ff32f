package session

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/utils"
	"context"
	"sync"
	"time"
)

// Holder is the authentication state of one browser session. The in-memory
// flag mirrors the presence of the session record in the store.
type Holder struct {
	mu            sync.RWMutex
	id            string
	authenticated bool
	username      string
	token         string
	observers     []*observer

	store  contracts.SessionStore
	sealer *utils.TokenSealer
	ttl    time.Duration
}

type observer struct {
	notify func(authenticated bool)
}

func newHolder(id string, store contracts.SessionStore, sealer *utils.TokenSealer, ttl time.Duration) *Holder {
	return &Holder{
		id:     id,
		store:  store,
		sealer: sealer,
		ttl:    ttl,
	}
}

func (h *Holder) ID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.id
}

func (h *Holder) IsAuthenticated() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.authenticated
}

func (h *Holder) Username() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.username
}

// BasicToken is empty unless the session is authenticated.
func (h *Holder) BasicToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// MarkAuthenticated moves the session to a fresh id, so a cookie issued before
// the login never becomes an authenticated one. The new record is written
// first and a failed write leaves the holder unauthenticated under its old id.
// Callers must reissue the session cookie afterwards.
func (h *Holder) MarkAuthenticated(ctx context.Context, username, token string) error {
	sealedToken, err := h.sealer.Seal(token)
	if err != nil {
		return err
	}

	previousID := h.ID()
	rotatedID := utils.GenerateSessionID()
	record := &models.Session{
		SessionID:       rotatedID,
		Username:        username,
		SealedToken:     sealedToken,
		AuthenticatedAt: time.Now().UTC(),
	}
	err = h.store.Save(ctx, record, h.ttl)
	if err != nil {
		return err
	}

	err = h.store.Delete(ctx, previousID)
	if err != nil {
		h.store.Delete(ctx, rotatedID)
		return err
	}

	h.mu.Lock()
	h.id = rotatedID
	h.mu.Unlock()

	h.set(true, username, token)
	return nil
}

// MarkUnauthenticated always clears the in-memory state, even when the store
// delete fails; the failure is still returned.
func (h *Holder) MarkUnauthenticated(ctx context.Context) error {
	err := h.store.Delete(ctx, h.ID())
	h.set(false, "", "")
	return err
}

// Subscribe registers fn to run after every change of the authenticated flag.
// Observers run in subscription order, outside the holder lock.
func (h *Holder) Subscribe(fn func(authenticated bool)) (unsubscribe func()) {
	obs := &observer{notify: fn}

	h.mu.Lock()
	h.observers = append(h.observers, obs)
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, registered := range h.observers {
			if registered == obs {
				h.observers = append(h.observers[:i], h.observers[i+1:]...)
				return
			}
		}
	}
}

func (h *Holder) set(authenticated bool, username, token string) {
	h.mu.Lock()
	changed := h.authenticated != authenticated
	h.authenticated = authenticated
	h.username = username
	h.token = token
	observers := make([]*observer, len(h.observers))
	copy(observers, h.observers)
	h.mu.Unlock()

	if !changed {
		return
	}
	for _, obs := range observers {
		obs.notify(authenticated)
	}
}

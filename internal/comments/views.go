package comments

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrUnknownView = errors.New("unknown or expired view")

type view struct {
	slug    string
	thread  *Thread
	expires time.Time
}

// Views maps page-view tokens to the comment thread of one article. A
// view expires after ttl without use.
type Views struct {
	mu    sync.RWMutex
	views map[string]*view
	ttl   time.Duration
	now   func() time.Time
}

func NewViews(ttl time.Duration) *Views {
	return &Views{
		views: make(map[string]*view),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Open starts a fresh thread for the article slug and returns its token.
func (v *Views) Open(slug string) (string, *Thread) {
	token := uuid.NewString()
	t := NewThread()
	t.now = v.now

	v.mu.Lock()
	v.views[token] = &view{slug: slug, thread: t, expires: v.now().Add(v.ttl)}
	v.mu.Unlock()

	return token, t
}

// Thread returns the thread for token and extends its lifetime. A token
// opened for another article is reported as unknown.
func (v *Views) Thread(token, slug string) (*Thread, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, ErrUnknownView
	}

	v.mu.RLock()
	entry, exists := v.views[token]
	v.mu.RUnlock()

	if !exists || entry.slug != slug {
		return nil, ErrUnknownView
	}

	now := v.now()
	v.mu.Lock()
	defer v.mu.Unlock()
	if now.After(entry.expires) {
		delete(v.views, token)
		return nil, ErrUnknownView
	}
	entry.expires = now.Add(v.ttl)
	return entry.thread, nil
}

func (v *Views) Close(token string) {
	v.mu.Lock()
	delete(v.views, token)
	v.mu.Unlock()
}

// Sweep drops every expired view and reports how many were removed.
func (v *Views) Sweep() int {
	now := v.now()
	v.mu.Lock()
	defer v.mu.Unlock()

	removed := 0
	for token, entry := range v.views {
		if now.After(entry.expires) {
			delete(v.views, token)
			removed++
		}
	}
	return removed
}

func (v *Views) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.views)
}

// Run sweeps expired views every interval until ctx is done.
func (v *Views) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.Sweep()
		}
	}
}

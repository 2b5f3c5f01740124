package doclist

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"docstatus/internal/logger"
)

// Registry keeps live views by ID. Views idle for longer than the TTL are
// evicted and closed.
type Registry struct {
	views *cache.Cache
	log   logrus.FieldLogger
}

// NewRegistry creates a registry whose views expire after ttl without access.
func NewRegistry(ttl, cleanupInterval time.Duration, log logrus.FieldLogger) *Registry {
	if log == nil {
		log = logger.Discard()
	}
	r := &Registry{
		views: cache.New(ttl, cleanupInterval),
		log:   log,
	}
	r.views.OnEvicted(func(id string, v interface{}) {
		if view, ok := v.(*View); ok {
			view.Close()
		}
		r.log.WithFields(logrus.Fields{"component": "doclist", "view_id": id}).Debug("view closed")
	})
	return r
}

// Add stores v and returns its new ID.
func (r *Registry) Add(v *View) string {
	id := uuid.NewString()
	r.views.SetDefault(id, v)
	return id
}

// Get returns the view with the given ID and extends its lifetime.
func (r *Registry) Get(id string) (*View, bool) {
	x, ok := r.views.Get(id)
	if !ok {
		return nil, false
	}
	v := x.(*View)
	if v.Closed() {
		r.views.Delete(id)
		return nil, false
	}
	r.views.SetDefault(id, v)
	return v, true
}

// Remove closes and forgets the view. It reports whether the view existed.
func (r *Registry) Remove(id string) bool {
	if _, ok := r.views.Get(id); !ok {
		return false
	}
	r.views.Delete(id)
	return true
}

// Len returns the number of live views, expired ones included until cleanup.
func (r *Registry) Len() int {
	return r.views.ItemCount()
}
